package impl

import (
	"context"
	"testing"

	"tastebook/internal/domain/entity"
	"tastebook/internal/domain/repository"
	mockRepo "tastebook/internal/mocks/repository"
	"tastebook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	userRepo   *mockRepo.MockUserRepository
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().RecipeRepo().Return(recipeRepo).Maybe()

	service := NewRecipeService(RecipeServiceParams{
		TxManager:  newPassthroughTx(t, factory),
		RecipeRepo: recipeRepo,
		UserRepo:   userRepo,
		Config:     newTestConfig(100),
		Logger:     newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
	}
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	var created *entity.Recipe
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(_ context.Context, recipe *entity.Recipe) {
			created = recipe
			recipe.ID = 3
		}).
		Return(nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AuthorID: 7, Name: "Apple Pie", AuthorName: "user"}, nil)

	recipe, err := fx.service.CreateRecipe(ctx, usecase.CreateRecipeInput{
		AuthorID:    7,
		Name:        "  Apple Pie ",
		Category:    "dessert",
		CookTime:    "PT1H15M",
		PrepTime:    "PT30M",
		Ingredients: []string{" flour", "salt", "flour", ""},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Apple Pie", created.Name)
	assert.Equal(t, "PT1H45M", created.TotalTime)
	assert.Equal(t, []string{"flour", "salt"}, created.Ingredients)
	assert.False(t, created.DatePublished.IsZero())
	assert.Nil(t, created.AggregatedRating)
	assert.Equal(t, 0, created.ReviewCount)

	assert.Equal(t, int64(3), recipe.ID)
	assert.Equal(t, "user", recipe.AuthorName)
}

func TestRecipeService_SearchRecipes_ComposedFilter(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		Search(ctx, repository.RecipeSearchFilter{
			Keyword:   "pie",
			Category:  "dessert",
			MinRating: floatPtr(4),
			Page:      1,
			Size:      20,
			Sort:      entity.RecipeSortRatingDesc,
		}).
		Return([]*entity.Recipe{{ID: 3, Name: "Apple Pie"}}, int64(1), nil)

	page, err := fx.service.SearchRecipes(ctx, usecase.SearchRecipesInput{
		Keyword:   " pie ",
		Category:  "dessert",
		MinRating: floatPtr(4),
		Page:      1,
		Size:      20,
		Sort:      "rating_desc",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Apple Pie", page.Items[0].Name)
}

func TestRecipeService_SearchRecipes_UnknownSortFallsBack(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		Search(ctx, repository.RecipeSearchFilter{
			Page: 1,
			Size: 10,
			Sort: entity.RecipeSortDefault,
		}).
		Return([]*entity.Recipe{}, int64(0), nil)

	page, err := fx.service.SearchRecipes(ctx, usecase.SearchRecipesInput{
		Page: 1,
		Size: 10,
		Sort: "cleverness",
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestRecipeService_Feed(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		Feed(ctx, int64(7), "dessert", 1, 20).
		Return([]*entity.FeedItem{{RecipeID: 3, Name: "Apple Pie", AuthorID: 2}}, int64(1), nil)

	page, err := fx.service.Feed(ctx, usecase.FeedInput{
		UserID:   7,
		Category: "dessert",
		Page:     1,
		Size:     20,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(3), page.Items[0].RecipeID)
}

func TestRecipeService_UpdateTimes_RecomputesTotal(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	cook := "PT45M"

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(7), nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AuthorID: 7, CookTime: "PT1H", PrepTime: "PT30M", TotalTime: "PT1H30M"}, nil).
		Once()

	// Prep time is kept; the total is recomputed from both components.
	fx.recipeRepo.EXPECT().
		UpdateTimes(ctx, int64(3), "PT45M", "PT30M", "PT1H15M").
		Return(nil)

	fx.recipeRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(&entity.Recipe{ID: 3, AuthorID: 7, CookTime: "PT45M", PrepTime: "PT30M", TotalTime: "PT1H15M"}, nil).
		Once()

	recipe, err := fx.service.UpdateTimes(ctx, usecase.UpdateRecipeTimesInput{
		RecipeID: 3,
		UserID:   7,
		CookTime: &cook,
	})
	require.NoError(t, err)
	assert.Equal(t, "PT1H15M", recipe.TotalTime)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(activeUser(7), nil)

	fx.recipeRepo.EXPECT().
		AuthorOf(ctx, int64(3)).
		Return(int64(7), nil)

	fx.recipeRepo.EXPECT().
		Delete(ctx, int64(3)).
		Return(nil)

	err := fx.service.DeleteRecipe(ctx, 3, 7)
	require.NoError(t, err)
}

func TestRecipeService_ClosestCaloriePair_AdjacentScan(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		ListCaloriePoints(ctx).
		Return([]entity.CaloriePoint{
			{RecipeID: 1, Calories: 100},
			{RecipeID: 2, Calories: 250},
			{RecipeID: 3, Calories: 260},
			{RecipeID: 4, Calories: 500},
		}, nil)

	pair, err := fx.service.ClosestCaloriePair(ctx)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.Equal(t, int64(2), pair.RecipeA)
	assert.Equal(t, int64(3), pair.RecipeB)
	assert.InDelta(t, 10, pair.Difference, 0.0001)
}

func TestRecipeService_ClosestCaloriePair_TieBreaksByLowestIDs(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	// Two adjacent pairs 10 kcal apart; the pair with the lower low id wins.
	fx.recipeRepo.EXPECT().
		ListCaloriePoints(ctx).
		Return([]entity.CaloriePoint{
			{RecipeID: 5, Calories: 100},
			{RecipeID: 6, Calories: 110},
			{RecipeID: 2, Calories: 120},
		}, nil)

	pair, err := fx.service.ClosestCaloriePair(ctx)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.Equal(t, int64(2), pair.RecipeA)
	assert.Equal(t, int64(6), pair.RecipeB)
}

func TestRecipeService_ClosestCaloriePair_NotEnoughPoints(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		ListCaloriePoints(ctx).
		Return([]entity.CaloriePoint{{RecipeID: 1, Calories: 100}}, nil)

	pair, err := fx.service.ClosestCaloriePair(ctx)
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestRecipeService_MostComplexRecipes(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().
		MostComplex(ctx, 3).
		Return([]entity.RecipeComplexity{
			{RecipeID: 9, Name: "Paella", IngredientCount: 24},
			{RecipeID: 4, Name: "Ramen", IngredientCount: 18},
			{RecipeID: 3, Name: "Apple Pie", IngredientCount: 9},
		}, nil)

	ranks, err := fx.service.MostComplexRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, ranks, 3)
	assert.Equal(t, int64(9), ranks[0].RecipeID)
}

func TestDeriveTotalTime(t *testing.T) {
	tests := []struct {
		name     string
		cookTime string
		prepTime string
		want     string
	}{
		{name: "both components", cookTime: "PT1H", prepTime: "PT30M", want: "PT1H30M"},
		{name: "cook only", cookTime: "PT25M", prepTime: "", want: "PT25M"},
		{name: "prep only", cookTime: "", prepTime: "PT10M", want: "PT10M"},
		{name: "neither", cookTime: "", prepTime: "", want: ""},
		{name: "with days", cookTime: "P1DT2H", prepTime: "PT1H", want: "PT27H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deriveTotalTime(tt.cookTime, tt.prepTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDedupeIngredients(t *testing.T) {
	got := dedupeIngredients([]string{" flour ", "salt", "flour", "", "  ", "sugar", "salt"})
	assert.Equal(t, []string{"flour", "salt", "sugar"}, got)
}
