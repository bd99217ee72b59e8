package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe row is absent.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeSearchFilter carries the search predicate and pagination window.
// Total match counts are computed over the same predicate, independent of the
// window.
type RecipeSearchFilter struct {
	Keyword   string // Case-insensitive substring over name and description.
	Category  string // Exact category match when non-empty.
	MinRating *float64
	Page      int // 1-based.
	Size      int
	Sort      entity.RecipeSort
}

// RecipeRepository defines persistence operations for recipes and their
// ingredient sets.
type RecipeRepository interface {
	// Create persists a recipe row plus its ingredient set and assigns the
	// generated identifier.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a full recipe projection including author name and
	// the sorted ingredient set.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// AuthorOf returns the owning user of a recipe.
	AuthorOf(ctx context.Context, id int64) (int64, error)

	// UpdateTimes persists new cook/prep/total time strings.
	UpdateTimes(ctx context.Context, id int64, cookTime, prepTime, totalTime string) error

	// Delete removes the recipe with its reviews, review likes and
	// ingredient set.
	Delete(ctx context.Context, id int64) error

	// Search returns one page of recipes matching the filter plus the total
	// match count. Ingredient sets for the page are fetched in a single
	// batched query, never one query per recipe.
	Search(ctx context.Context, filter RecipeSearchFilter) ([]*entity.Recipe, int64, error)

	// Feed returns recipes authored by users the follower follows, ordered by
	// publish date desc then id desc, optionally filtered by category.
	Feed(ctx context.Context, followerID int64, category string, page, size int) ([]*entity.FeedItem, int64, error)

	// UpdateAggregate writes the derived rating/count pair. Only the
	// aggregate refresh logic may call this. Returns ErrRecipeNotFound when
	// the recipe row no longer exists; no write happens in that case.
	UpdateAggregate(ctx context.Context, id int64, rating *float64, reviewCount int) error

	// ListCaloriePoints returns (recipe, calories) points for every recipe
	// with a non-null calorie value, sorted by (calories, id).
	ListCaloriePoints(ctx context.Context) ([]entity.CaloriePoint, error)

	// MostComplex returns up to limit recipes ranked by ingredient-set
	// cardinality desc, ties broken by ascending id.
	MostComplex(ctx context.Context, limit int) ([]entity.RecipeComplexity, error)

	// ImportRecipes upserts recipe rows with explicit identifiers together
	// with their ingredient sets (bulk load).
	ImportRecipes(ctx context.Context, recipes []*entity.Recipe) error

	// AdvanceIDSequence advances the recipes identity sequence past the
	// current maximum id.
	AdvanceIDSequence(ctx context.Context) error
}
