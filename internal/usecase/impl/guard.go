// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/errors"
)

// requireActiveUser loads the caller and rejects absent or soft-deleted
// accounts. Every mutating operation passes through here before any write.
func requireActiveUser(ctx context.Context, userRepo repository.UserRepository, userID int64) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown account")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load caller")
	}
	if user.Deleted {
		return nil, domainerrors.ErrAccountDeleted
	}

	return user, nil
}

// requireRecipeOwner resolves the recipe's author and rejects callers that do
// not own it. An absent recipe surfaces as NotFound, never Forbidden, so the
// two cases stay distinguishable.
func requireRecipeOwner(ctx context.Context, recipeRepo repository.RecipeRepository, recipeID, userID int64) error {
	authorID, err := recipeRepo.AuthorOf(ctx, recipeID)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return domainerrors.ErrRecipeNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to resolve recipe owner")
	}
	if authorID != userID {
		return domainerrors.ErrNotRecipeOwner
	}

	return nil
}

// requireReviewAuthor loads a review and rejects callers that did not write
// it.
func requireReviewAuthor(ctx context.Context, reviewRepo repository.ReviewRepository, reviewID, userID int64) (*entity.Review, error) {
	review, err := reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review")
	}
	if review.AuthorID != userID {
		return nil, domainerrors.ErrNotReviewAuthor
	}

	return review, nil
}
