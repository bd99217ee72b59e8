package impl

import (
	"context"
	"testing"
	"time"

	"tastebook/internal/domain/entity"
	mockRepo "tastebook/internal/mocks/repository"
	"tastebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	userRepo   *mockRepo.MockUserRepository
	recipeRepo *mockRepo.MockRecipeRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().RecipeRepo().Return(recipeRepo).Maybe()
	factory.EXPECT().ReviewRepo().Return(reviewRepo).Maybe()

	service := NewReviewService(ReviewServiceParams{
		TxManager:  newPassthroughTx(t, factory),
		ReviewRepo: reviewRepo,
		RecipeRepo: recipeRepo,
		UserRepo:   userRepo,
		Config:     newTestConfig(100),
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		reviewRepo: reviewRepo,
	}
}

func activeUser(id int64) *entity.User {
	return &entity.User{ID: id, Name: "user", Gender: entity.GenderFemale, Age: 30}
}

func TestReviewService_AddReview_RefreshesAggregate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(2), nil)

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, review *entity.Review) {
			review.ID = 11
		}).
		Return(nil)

	// The freshly created review participates in the recompute.
	fx.reviewRepo.EXPECT().
		ListRatings(ctx, int64(3)).
		Return([]int{5, 4, 4}, nil)

	fx.recipeRepo.EXPECT().
		UpdateAggregate(ctx, int64(3), floatPtr(4.33), 3).
		Return(nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AuthorID: 2, AggregatedRating: floatPtr(4.33), ReviewCount: 3}, nil)

	out, err := fx.service.AddReview(ctx, usecase.AddReviewInput{
		RecipeID: 3,
		AuthorID: 7,
		Rating:   5,
		Body:     "great with extra garlic",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(11), out.Review.ID)
	assert.Equal(t, int64(3), out.Review.RecipeID)
	assert.Equal(t, int64(7), out.Review.AuthorID)
	assert.Equal(t, 5, out.Review.Rating)
	assert.Equal(t, out.Review.DateSubmitted, out.Review.DateModified)

	require.NotNil(t, out.Recipe.AggregatedRating)
	assert.InDelta(t, 4.33, *out.Recipe.AggregatedRating, 0.0001)
	assert.Equal(t, 3, out.Recipe.ReviewCount)
}

func TestReviewService_EditReview_RefreshesAggregate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	submitted := time.Now().Add(-48 * time.Hour)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Review{
			ID:            11,
			RecipeID:      3,
			AuthorID:      7,
			Rating:        2,
			Body:          "too salty",
			DateSubmitted: submitted,
			DateModified:  submitted,
		}, nil)

	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	fx.reviewRepo.EXPECT().
		ListRatings(ctx, int64(3)).
		Return([]int{4}, nil)

	fx.recipeRepo.EXPECT().
		UpdateAggregate(ctx, int64(3), floatPtr(4), 1).
		Return(nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AggregatedRating: floatPtr(4), ReviewCount: 1}, nil)

	out, err := fx.service.EditReview(ctx, usecase.EditReviewInput{
		ReviewID: 11,
		AuthorID: 7,
		Rating:   4,
		Body:     "better on a second try",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Review.Rating)
	assert.Equal(t, "better on a second try", out.Review.Body)
	assert.Equal(t, submitted, out.Review.DateSubmitted)
	assert.True(t, out.Review.DateModified.After(submitted))
	assert.Equal(t, 1, out.Recipe.ReviewCount)
}

func TestReviewService_DeleteReview_LastReviewClearsAggregate(t *testing.T) {
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
		Return([]int{}, nil)

	// No remaining reviews: the rating resets to unrated, not zero.
	fx.recipeRepo.EXPECT().
		UpdateAggregate(ctx, int64(3), (*float64)(nil), 0).
		Return(nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AggregatedRating: nil, ReviewCount: 0}, nil)

	recipe, err := fx.service.DeleteReview(ctx, 11, 7)
	require.NoError(t, err)

	assert.Nil(t, recipe.AggregatedRating)
	assert.Equal(t, 0, recipe.ReviewCount)
}

func TestReviewService_ListReviews_UnknownSortFallsBack(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviews := []*entity.Review{
		{ID: 12, RecipeID: 3, Rating: 5, LikedBy: []int64{2, 9}, LikeCount: 2},
		{ID: 11, RecipeID: 3, Rating: 4, LikedBy: []int64{}, LikeCount: 0},
	}

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(2), nil)

	fx.reviewRepo.EXPECT().
		ListByRecipe(ctx, int64(3), 1, 20, entity.ReviewSortDateDesc).
		Return(reviews, int64(2), nil)

	page, err := fx.service.ListReviews(ctx, usecase.ListReviewsInput{
		RecipeID: 3,
		Page:     1,
		Size:     20,
		Sort:     "hotness", // unknown keys fall back to date_desc
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Items[0].LikeCount)
}

func TestReviewService_ListReviews_LikesSort(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(2), nil)

	fx.reviewRepo.EXPECT().
		ListByRecipe(ctx, int64(3), 2, 10, entity.ReviewSortLikesDesc).
		Return([]*entity.Review{}, int64(13), nil)

	page, err := fx.service.ListReviews(ctx, usecase.ListReviewsInput{
		RecipeID: 3,
		Page:     2,
		Size:     10,
		Sort:     "likes_desc",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(13), page.Total)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Page)
}

func TestReviewService_Like(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Review{ID: 11, RecipeID: 3, AuthorID: 2, Rating: 5}, nil)

	fx.reviewRepo.EXPECT().
		AddLike(ctx, int64(11), int64(7)).
		Return(nil)

	fx.reviewRepo.EXPECT().
		CountLikes(ctx, int64(11)).
		Return(int64(5), nil)

	count, err := fx.service.Like(ctx, 11, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestReviewService_Unlike_AbsentLikeIsNoOp(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Review{ID: 11, RecipeID: 3, AuthorID: 2, Rating: 5}, nil)

	fx.reviewRepo.EXPECT().
		RemoveLike(ctx, int64(11), int64(7)).
		Return(nil)

	fx.reviewRepo.EXPECT().
		CountLikes(ctx, int64(11)).
		Return(int64(4), nil)

	count, err := fx.service.Unlike(ctx, 11, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
