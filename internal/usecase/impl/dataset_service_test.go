package impl

import (
	"context"
	"testing"

	"tastebook/config"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	mockRepo "tastebook/internal/mocks/repository"
	"tastebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type datasetServiceFixtures struct {
	service    usecase.DatasetUsecase
	userRepo   *mockRepo.MockUserRepository
	recipeRepo *mockRepo.MockRecipeRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestDatasetService(t *testing.T, enabled bool) datasetServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().RecipeRepo().Return(recipeRepo).Maybe()
	factory.EXPECT().ReviewRepo().Return(reviewRepo).Maybe()

	cfg := newTestConfig(100)
	cfg.Dataset = &config.DatasetConfig{ImportEnabled: enabled}

	service := NewDatasetService(DatasetServiceParams{
		TxManager: newPassthroughTx(t, factory),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return datasetServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		reviewRepo: reviewRepo,
	}
}

func TestDatasetService_ImportDataset(t *testing.T) {
	fx := createTestDatasetService(t, true)

	ctx := context.Background()

	users := []*entity.User{
		// Self-follow and the duplicate edge get dropped.
		{ID: 1, Name: "alice", FollowingIDs: []int64{2, 1, 2}},
		{ID: 2, Name: "bob"},
	}
	recipes := []*entity.Recipe{
		{ID: 3, AuthorID: 1, Name: "Apple Pie", Ingredients: []string{"flour"}},
	}
	reviews := []*entity.Review{
		// The author's own like gets filtered out of the like set.
		{ID: 11, RecipeID: 3, AuthorID: 2, Rating: 5, LikedBy: []int64{2, 1}},
	}

	fx.userRepo.EXPECT().
		ImportUsers(ctx, users).
		Return(nil)

	fx.userRepo.EXPECT().
		ImportFollowEdges(ctx, [][2]int64{{1, 2}}).
		Return(nil)

	fx.recipeRepo.EXPECT().
		ImportRecipes(ctx, recipes).
		Return(nil)

	var imported []*entity.Review
	fx.reviewRepo.EXPECT().
		ImportReviews(ctx, mock.AnythingOfType("[]*entity.Review")).
		Run(func(_ context.Context, reviews []*entity.Review) {
			imported = reviews
		}).
		Return(nil)

	fx.userRepo.EXPECT().AdvanceIDSequence(ctx).Return(nil)
	fx.recipeRepo.EXPECT().AdvanceIDSequence(ctx).Return(nil)
	fx.reviewRepo.EXPECT().AdvanceIDSequence(ctx).Return(nil)

	out, err := fx.service.ImportDataset(ctx, usecase.ImportDatasetInput{
		Users:   users,
		Recipes: recipes,
		Reviews: reviews,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Users)
	assert.Equal(t, 1, out.FollowEdges)
	assert.Equal(t, 1, out.Recipes)
	assert.Equal(t, 1, out.Reviews)
	assert.Equal(t, 1, out.Likes)

	require.Len(t, imported, 1)
	assert.Equal(t, []int64{1}, imported[0].LikedBy)
	// The input review is left untouched.
	assert.Equal(t, []int64{2, 1}, reviews[0].LikedBy)
}

func TestDatasetService_ImportDataset_Disabled(t *testing.T) {
	fx := createTestDatasetService(t, false)

	ctx := context.Background()

	assert.False(t, fx.service.Enabled())

	_, err := fx.service.ImportDataset(ctx, usecase.ImportDatasetInput{})
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestDatasetService_ImportDataset_RejectsMissingIDs(t *testing.T) {
	fx := createTestDatasetService(t, true)

	ctx := context.Background()

	_, err := fx.service.ImportDataset(ctx, usecase.ImportDatasetInput{
		Users: []*entity.User{{Name: "alice"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.ImportDataset(ctx, usecase.ImportDatasetInput{
		Recipes: []*entity.Recipe{{Name: "Apple Pie"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.ImportDataset(ctx, usecase.ImportDatasetInput{
		Reviews: []*entity.Review{{RecipeID: 3, AuthorID: 2, Rating: 5}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestDatasetService_ImportDataset_RejectsInvalidRating(t *testing.T) {
	fx := createTestDatasetService(t, true)

	ctx := context.Background()

	_, err := fx.service.ImportDataset(ctx, usecase.ImportDatasetInput{
		Reviews: []*entity.Review{{ID: 11, RecipeID: 3, AuthorID: 2, Rating: 9}},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}

func TestCollectFollowEdges(t *testing.T) {
	edges := collectFollowEdges([]*entity.User{
		{ID: 1, FollowingIDs: []int64{2, 3, 1, 2}},
		{ID: 2, FollowingIDs: []int64{1}},
	})

	assert.Equal(t, [][2]int64{{1, 2}, {1, 3}, {2, 1}}, edges)
}

func TestDropSelfLikes(t *testing.T) {
	assert.Equal(t, []int64{1, 3}, dropSelfLikes(2, []int64{1, 2, 3, 1}))
	assert.Empty(t, dropSelfLikes(2, []int64{2, 2}))
}
