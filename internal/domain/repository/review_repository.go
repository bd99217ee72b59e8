package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"
)

// ErrReviewNotFound is a domain-specific error returned when a review row is absent.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence operations for reviews and their like
// sets.
type ReviewRepository interface {
	// Create persists a new review and assigns the next sequence-generated
	// identifier.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves the base review row. The like set is not populated.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// Update persists a new rating, body and modification time.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review and cascades to its like set.
	Delete(ctx context.Context, id int64) error

	// ListRatings returns the ratings of all live reviews of a recipe. This
	// is the read side of the aggregate refresh.
	ListRatings(ctx context.Context, recipeID int64) ([]int, error)

	// ListByRecipe returns one page of a recipe's reviews plus the total
	// count. Every returned review carries its full like-id set and live
	// like count; like sets for the page are fetched in one batched query.
	ListByRecipe(ctx context.Context, recipeID int64, page, size int, sort entity.ReviewSort) ([]*entity.Review, int64, error)

	// AddLike inserts a like row, relying on unique-constraint semantics so
	// concurrent likes from the same user converge to exactly one row.
	AddLike(ctx context.Context, reviewID, userID int64) error

	// RemoveLike deletes a like row; removing an absent like is a no-op.
	RemoveLike(ctx context.Context, reviewID, userID int64) error

	// CountLikes returns the live like count of a review.
	CountLikes(ctx context.Context, reviewID int64) (int64, error)

	// ImportReviews upserts review rows with explicit identifiers together
	// with their like sets (bulk load).
	ImportReviews(ctx context.Context, reviews []*entity.Review) error

	// AdvanceIDSequence advances the reviews identity sequence past the
	// current maximum id, so sequence-generated inserts never collide with
	// imported explicit ids.
	AdvanceIDSequence(ctx context.Context) error
}
