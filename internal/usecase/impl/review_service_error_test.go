package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_AddReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := fx.service.AddReview(ctx, usecase.AddReviewInput{
			RecipeID: 3,
			AuthorID: 7,
			Rating:   rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestReviewService_AddReview_RecipeNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(404)).
		Return(int64(0), repository.ErrRecipeNotFound)

	_, err := fx.service.AddReview(ctx, usecase.AddReviewInput{
		RecipeID: 404,
		AuthorID: 7,
		Rating:   5,
	})
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestReviewService_AddReview_UnknownCaller(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.AddReview(ctx, usecase.AddReviewInput{
		RecipeID: 3,
		AuthorID: 7,
		Rating:   5,
	})
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestReviewService_AddReview_DeletedCaller(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Deleted: true}, nil)

	_, err := fx.service.AddReview(ctx, usecase.AddReviewInput{
		RecipeID: 3,
		AuthorID: 7,
		Rating:   5,
	})
	require.ErrorIs(t, err, domainerrors.ErrAccountDeleted)
}

func TestReviewService_EditReview_NotAuthor(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Review{ID: 11, RecipeID: 3, AuthorID: 2, Rating: 5}, nil)

	_, err := fx.service.EditReview(ctx, usecase.EditReviewInput{
		ReviewID: 11,
		AuthorID: 7,
		Rating:   1,
	})
	require.ErrorIs(t, err, domainerrors.ErrNotReviewAuthor)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.DeleteReview(ctx, 404, 7)
	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteReview_AggregateWriteError(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Review{ID: 11, RecipeID: 3, AuthorID: 7, Rating: 4}, nil)

	fx.reviewRepo.EXPECT().
		Delete(ctx, int64(11)).
		Return(nil)

	fx.reviewRepo.EXPECT().
		ListRatings(ctx, int64(3)).
		Return(nil, errors.New("database error"))

	_, err := fx.service.DeleteReview(ctx, 11, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read ratings")
}

func TestReviewService_Like_SelfLike(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Review{ID: 11, RecipeID: 3, AuthorID: 7, Rating: 5}, nil)

	_, err := fx.service.Like(ctx, 11, 7)
	require.ErrorIs(t, err, domainerrors.ErrSelfLike)
}

func TestReviewService_Like_ReviewNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.Like(ctx, 404, 7)
	require.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_ListReviews_InvalidPagination(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	_, err := fx.service.ListReviews(ctx, usecase.ListReviewsInput{RecipeID: 3, Page: 0, Size: 20})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)

	_, err = fx.service.ListReviews(ctx, usecase.ListReviewsInput{RecipeID: 3, Page: 1, Size: 0})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)

	// The fixture config caps page size at 100.
	_, err = fx.service.ListReviews(ctx, usecase.ListReviewsInput{RecipeID: 3, Page: 1, Size: 101})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)
}

func TestReviewService_ListReviews_RecipeNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(404)).
		Return(int64(0), repository.ErrRecipeNotFound)

	_, err := fx.service.ListReviews(ctx, usecase.ListReviewsInput{RecipeID: 404, Page: 1, Size: 20})
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}
