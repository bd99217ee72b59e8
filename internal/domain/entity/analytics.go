package entity

// CaloriePoint is the (recipe, calories) projection used by the
// nearest-calorie-pair scan. Points are consumed sorted by (calories, id).
type CaloriePoint struct {
	RecipeID int64
	Calories float64
}

// CaloriePair is the pair of distinct recipes whose calorie values are
// closest. RecipeA always carries the lower identifier.
type CaloriePair struct {
	RecipeA    int64   `json:"recipe_a"`
	RecipeB    int64   `json:"recipe_b"`
	CaloriesA  float64 `json:"calories_a"`
	CaloriesB  float64 `json:"calories_b"`
	Difference float64 `json:"difference"`
}

// RecipeComplexity ranks a recipe by the cardinality of its ingredient set.
type RecipeComplexity struct {
	RecipeID        int64  `json:"recipe_id"`
	Name            string `json:"name"`
	IngredientCount int    `json:"ingredient_count"`
}

// FollowRatio is the followers/following ratio of a user with at least one
// outgoing follow edge.
type FollowRatio struct {
	UserID int64   `json:"user_id"`
	Name   string  `json:"name"`
	Ratio  float64 `json:"ratio"`
}
