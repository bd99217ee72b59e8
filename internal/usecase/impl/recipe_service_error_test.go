package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeService_CreateRecipe_EmptyName(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	_, err := fx.service.CreateRecipe(ctx, usecase.CreateRecipeInput{
		AuthorID: 7,
		Name:     "   ",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestRecipeService_CreateRecipe_MalformedDuration(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	_, err := fx.service.CreateRecipe(ctx, usecase.CreateRecipeInput{
		AuthorID: 7,
		Name:     "Apple Pie",
		CookTime: "90 minutes",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ISO-8601")
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.GetRecipe(ctx, 404)
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_UpdateTimes_NotOwner(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	cook := "PT45M"

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(2), nil)

	_, err := fx.service.UpdateTimes(ctx, usecase.UpdateRecipeTimesInput{
		RecipeID: 3,
		UserID:   7,
		CookTime: &cook,
	})
	require.ErrorIs(t, err, domainerrors.ErrNotRecipeOwner)
}

func TestRecipeService_UpdateTimes_RecipeNotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	cook := "PT45M"

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	// An absent recipe surfaces as NotFound, never Forbidden.
	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(404)).
		Return(int64(0), repository.ErrRecipeNotFound)

	_, err := fx.service.UpdateTimes(ctx, usecase.UpdateRecipeTimesInput{
		RecipeID: 404,
		UserID:   7,
		CookTime: &cook,
	})
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_UpdateTimes_MalformedDuration(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	cook := "an hour or so"

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(7), nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AuthorID: 7, PrepTime: "PT30M"}, nil)

	_, err := fx.service.UpdateTimes(ctx, usecase.UpdateRecipeTimesInput{
		RecipeID: 3,
		UserID:   7,
		CookTime: &cook,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestRecipeService_DeleteRecipe_NotOwner(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(2), nil)

	err := fx.service.DeleteRecipe(ctx, 3, 7)
	require.ErrorIs(t, err, domainerrors.ErrNotRecipeOwner)
}

func TestRecipeService_SearchRecipes_InvalidPagination(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	_, err := fx.service.SearchRecipes(ctx, usecase.SearchRecipesInput{Page: 0, Size: 20})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)

	_, err = fx.service.SearchRecipes(ctx, usecase.SearchRecipesInput{Page: 1, Size: 500})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)
}

func TestRecipeService_Feed_DeletedCaller(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.User{ID: 7, Deleted: true}, nil)

	_, err := fx.service.Feed(ctx, usecase.FeedInput{UserID: 7, Page: 1, Size: 20})
	require.ErrorIs(t, err, domainerrors.ErrAccountDeleted)
}
