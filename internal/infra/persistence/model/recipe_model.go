package model

import "time"

// RecipeModel mirrors the 'recipes' table. AggregatedRating and ReviewCount
// are derived columns; only the aggregate refresh (and the bulk loader) write
// them.
type RecipeModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(500);not null"`
	AuthorID      int64  `gorm:"not null;index"`
	CookTime      string `gorm:"type:varchar(50)"`
	PrepTime      string `gorm:"type:varchar(50)"`
	TotalTime     string `gorm:"type:varchar(50)"`
	DatePublished time.Time
	Description   string `gorm:"type:text"`
	Category      string `gorm:"type:varchar(255);index"`

	AggregatedRating *float64 `gorm:"type:numeric(3,2);check:aggregated_rating >= 0 AND aggregated_rating <= 5"`
	ReviewCount      int      `gorm:"not null;default:0;check:review_count >= 0"`

	Calories     *float64 `gorm:"type:numeric(10,2)"`
	Fat          *float64 `gorm:"type:numeric(10,2)"`
	SaturatedFat *float64 `gorm:"type:numeric(10,2)"`
	Cholesterol  *float64 `gorm:"type:numeric(10,2)"`
	Sodium       *float64 `gorm:"type:numeric(10,2)"`
	Carbohydrate *float64 `gorm:"type:numeric(10,2)"`
	Fiber        *float64 `gorm:"type:numeric(10,2)"`
	Sugar        *float64 `gorm:"type:numeric(10,2)"`
	Protein      *float64 `gorm:"type:numeric(10,2)"`

	Servings int    `gorm:"default:0"`
	Yield    string `gorm:"type:varchar(100)"`

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel mirrors the 'recipe_ingredients' table. The composite
// primary key makes each recipe's ingredient set duplicate-free.
type RecipeIngredientModel struct {
	RecipeID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Ingredient string `gorm:"primaryKey;type:varchar(500)"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}
