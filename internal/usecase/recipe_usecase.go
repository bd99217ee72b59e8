package usecase

import (
	"context"
	"time"

	"tastebook/internal/domain/entity"
)

// --- Input DTOs ---

// CreateRecipeInput defines the data required to publish a new recipe. The
// derived aggregate fields are not part of the input; they start at zero.
type CreateRecipeInput struct {
	AuthorID    int64
	Name        string
	Description string
	Category    string

	// CookTime and PrepTime are ISO-8601 duration strings; either may be
	// empty. The total time is derived, never accepted from the caller.
	CookTime string
	PrepTime string

	DatePublished time.Time

	Nutrition entity.Nutrition

	Servings    int
	Yield       string
	Ingredients []string
}

// UpdateRecipeTimesInput carries a time update for an owned recipe. A nil
// field keeps the current value.
type UpdateRecipeTimesInput struct {
	RecipeID int64
	UserID   int64
	CookTime *string
	PrepTime *string
}

// SearchRecipesInput defines the recipe search predicate and window.
type SearchRecipesInput struct {
	Keyword   string
	Category  string
	MinRating *float64
	Page      int
	Size      int
	Sort      string
}

// FeedInput defines the follower-feed window.
type FeedInput struct {
	UserID   int64
	Category string
	Page     int
	Size     int
}

// RecipeUsecase defines the interface for recipe-related business operations.
type RecipeUsecase interface {
	CreateRecipe(ctx context.Context, input CreateRecipeInput) (*entity.Recipe, error)

	// GetRecipe returns the full projection: author name, derived aggregates
	// and the sorted ingredient set.
	GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error)

	SearchRecipes(ctx context.Context, input SearchRecipesInput) (*entity.Page[*entity.Recipe], error)

	// Feed lists recipes authored by the users the caller follows, newest
	// first.
	Feed(ctx context.Context, input FeedInput) (*entity.Page[*entity.FeedItem], error)

	// UpdateTimes updates cook/prep times and recomputes the total, owner
	// only.
	UpdateTimes(ctx context.Context, input UpdateRecipeTimesInput) (*entity.Recipe, error)

	// DeleteRecipe removes an owned recipe with its reviews, their like sets
	// and the ingredient set.
	DeleteRecipe(ctx context.Context, recipeID, userID int64) error

	// ClosestCaloriePair returns the two distinct recipes with the nearest
	// calorie values, or nil when fewer than two recipes declare calories.
	ClosestCaloriePair(ctx context.Context) (*entity.CaloriePair, error)

	// MostComplexRecipes returns the top recipes by ingredient-set size.
	MostComplexRecipes(ctx context.Context) ([]entity.RecipeComplexity, error)
}
