package usecase

import (
	"context"

	"tastebook/internal/domain/entity"
)

// --- Input DTOs ---

// AddReviewInput defines the data required to attach a review to a recipe.
type AddReviewInput struct {
	RecipeID int64
	AuthorID int64
	Rating   int
	Body     string
}

// EditReviewInput carries a rating/body update for an authored review.
type EditReviewInput struct {
	ReviewID int64
	AuthorID int64
	Rating   int
	Body     string
}

// ListReviewsInput defines the review listing window for one recipe.
type ListReviewsInput struct {
	RecipeID int64
	Page     int
	Size     int
	Sort     string
}

// --- Output DTOs ---

// ReviewMutationOutput returns the written review together with the recipe
// projection refreshed in the same transaction, so callers always observe an
// aggregate consistent with the mutation.
type ReviewMutationOutput struct {
	Review *entity.Review
	Recipe *entity.Recipe
}

// ReviewUsecase defines the interface for review and like operations.
type ReviewUsecase interface {
	AddReview(ctx context.Context, input AddReviewInput) (*ReviewMutationOutput, error)
	EditReview(ctx context.Context, input EditReviewInput) (*ReviewMutationOutput, error)

	// DeleteReview removes an authored review and returns the recipe with its
	// aggregate refreshed in the same transaction.
	DeleteReview(ctx context.Context, reviewID, authorID int64) (*entity.Recipe, error)

	ListReviews(ctx context.Context, input ListReviewsInput) (*entity.Page[*entity.Review], error)

	// Like records the caller's like on a review and returns the live like
	// count. Liking twice converges to one like; liking an own review fails.
	Like(ctx context.Context, reviewID, userID int64) (int64, error)

	// Unlike removes the caller's like if present and returns the live count.
	Unlike(ctx context.Context, reviewID, userID int64) (int64, error)
}
