package entity

import "time"

// Nutrition groups the optional per-recipe nutritional values. A nil field
// means the value is unknown for that recipe.
type Nutrition struct {
	Calories     *float64
	Fat          *float64
	SaturatedFat *float64
	Cholesterol  *float64
	Sodium       *float64
	Carbohydrate *float64
	Fiber        *float64
	Sugar        *float64
	Protein      *float64
}

// Recipe is a published recipe together with its derived aggregates.
//
// AggregatedRating and ReviewCount are owned exclusively by the aggregate
// refresh logic: they always equal round(avg(rating), 2) and count over the
// recipe's live reviews, with a nil rating when no reviews exist.
type Recipe struct {
	ID          int64
	AuthorID    int64 // Immutable after creation.
	AuthorName  string
	Name        string
	Description string
	Category    string

	// Cook/prep/total times as ISO-8601 duration strings (e.g. "PT1H30M").
	// TotalTime is recomputed whenever both components are known.
	CookTime  string
	PrepTime  string
	TotalTime string

	DatePublished time.Time

	AggregatedRating *float64
	ReviewCount      int

	Nutrition

	Servings int
	Yield    string

	// Ingredients is the recipe's ingredient set: unique strings, order not
	// significant (returned sorted for stable output).
	Ingredients []string
}

// FeedItem is the reduced recipe projection returned by the follower feed.
type FeedItem struct {
	RecipeID         int64
	Name             string
	AuthorID         int64
	AuthorName       string
	DatePublished    time.Time
	AggregatedRating *float64
	ReviewCount      int
}
