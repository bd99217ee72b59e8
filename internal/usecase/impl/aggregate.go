package impl

import (
	"context"
	"math"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/errors"
)

// refreshRecipeAggregate recomputes a recipe's derived rating and review
// count from its live reviews and persists both, returning the refreshed
// projection. It must run inside the same transaction as the review mutation
// that triggered it; beyond that it is idempotent, so re-running it never
// changes the outcome.
func refreshRecipeAggregate(ctx context.Context, repos repository.RepositoryFactory, recipeID int64) (*entity.Recipe, error) {
	ratings, err := repos.ReviewRepo().ListRatings(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read ratings for aggregate refresh")
	}

	rating := averageRating(ratings)

	if err := repos.RecipeRepo().UpdateAggregate(ctx, recipeID, rating, len(ratings)); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to persist recipe aggregate")
	}

	recipe, err := repos.RecipeRepo().FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload recipe after aggregate refresh")
	}

	return recipe, nil
}

// averageRating returns the mean rating rounded to two decimals, or nil for
// an empty rating set.
func averageRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}

	avg := math.Round(float64(sum)/float64(len(ratings))*100) / 100

	return &avg
}
