package postgres

import (
	"context"
	"sort"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recipeOrderClauses maps each sort mode to a deterministic ORDER BY. Every
// clause ends on the id column so equal-key rows keep a stable order across
// pages.
var recipeOrderClauses = map[entity.RecipeSort]string{
	entity.RecipeSortDefault:     "recipes.id DESC",
	entity.RecipeSortRatingDesc:  "recipes.aggregated_rating DESC NULLS LAST, recipes.id DESC",
	entity.RecipeSortDateDesc:    "recipes.date_published DESC, recipes.id DESC",
	entity.RecipeSortCaloriesAsc: "recipes.calories ASC NULLS LAST, recipes.id DESC",
}

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// recipeRow is the search/read projection: the recipe row joined with the
// author's display name.
type recipeRow struct {
	model.RecipeModel
	AuthorName string
}

// Create persists a recipe row plus its ingredient set in one insert graph.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)
	recipeM.ID = 0

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID

	return nil
}

// FindByID retrieves the full recipe projection, author name and sorted
// ingredient set included.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var row recipeRow

	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Select("recipes.*, users.name AS author_name").
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("recipes.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find recipe by id")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRecipeNotFound
	}

	var ingredients []string
	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeIngredientModel{}).
		Where("recipe_id = ?", id).
		Order("ingredient ASC").
		Pluck("ingredient", &ingredients).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recipe ingredients")
	}

	recipe := toRecipeDomain(&row.RecipeModel)
	recipe.AuthorName = row.AuthorName
	recipe.Ingredients = ingredients

	return recipe, nil
}

// AuthorOf returns the owning user of a recipe.
func (repo *recipeRepository) AuthorOf(ctx context.Context, id int64) (int64, error) {
	var authorID int64

	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Pluck("author_id", &authorID)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to resolve recipe author")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrRecipeNotFound
	}

	return authorID, nil
}

// UpdateTimes persists new cook/prep/total time strings.
func (repo *recipeRepository) UpdateTimes(ctx context.Context, id int64, cookTime, prepTime, totalTime string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"cook_time":  cookTime,
			"prep_time":  prepTime,
			"total_time": totalTime,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe times")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes the recipe with its reviews, review likes and ingredient
// set. The dependents go first so the delete never trips a foreign key.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.
		Where("review_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&model.ReviewModel{}).
			Select("id").
			Where("recipe_id = ?", id)).
		Delete(&model.ReviewLikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review likes of recipe")
	}

	if err := db.Where("recipe_id = ?", id).Delete(&model.ReviewModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reviews of recipe")
	}

	if err := db.Where("recipe_id = ?", id).Delete(&model.RecipeIngredientModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe ingredients")
	}

	result := db.Where("id = ?", id).Delete(&model.RecipeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Search returns one page of recipes matching the filter plus the total match
// count over the same predicate.
func (repo *recipeRepository) Search(ctx context.Context, filter repository.RecipeSearchFilter) ([]*entity.Recipe, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.RecipeModel{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		base = base.Where("recipes.name ILIKE ? OR recipes.description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		base = base.Where("recipes.category = ?", filter.Category)
	}
	if filter.MinRating != nil {
		base = base.Where("recipes.aggregated_rating >= ?", *filter.MinRating)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count recipe matches")
	}

	order, ok := recipeOrderClauses[filter.Sort]
	if !ok {
		order = recipeOrderClauses[entity.RecipeSortDefault]
	}

	var rows []recipeRow
	if err := base.
		Select("recipes.*, users.name AS author_name").
		Joins("JOIN users ON users.id = recipes.author_id").
		Order(order).
		Offset((filter.Page - 1) * filter.Size).
		Limit(filter.Size).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for i := range rows {
		recipe := toRecipeDomain(&rows[i].RecipeModel)
		recipe.AuthorName = rows[i].AuthorName
		recipes = append(recipes, recipe)
		ids = append(ids, recipe.ID)
	}

	if err := repo.attachIngredients(ctx, recipes, ids); err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// attachIngredients loads the ingredient sets of a recipe page in one query
// and distributes them, sorted, onto the matching recipes.
func (repo *recipeRepository) attachIngredients(ctx context.Context, recipes []*entity.Recipe, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var ingredientRows []model.RecipeIngredientModel
	if err := repo.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Find(&ingredientRows).Error; err != nil {
		return errors.Wrap(err, "failed to batch-load ingredients")
	}

	byRecipe := make(map[int64][]string, len(ids))
	for _, row := range ingredientRows {
		byRecipe[row.RecipeID] = append(byRecipe[row.RecipeID], row.Ingredient)
	}

	for _, recipe := range recipes {
		ingredients := byRecipe[recipe.ID]
		sort.Strings(ingredients)
		recipe.Ingredients = ingredients
	}

	return nil
}

// Feed returns recipes authored by users the follower follows, newest first.
func (repo *recipeRepository) Feed(ctx context.Context, followerID int64, category string, page, size int) ([]*entity.FeedItem, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Joins("JOIN user_follows ON user_follows.followee_id = recipes.author_id").
		Where("user_follows.follower_id = ?", followerID)

	if category != "" {
		base = base.Where("recipes.category = ?", category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count feed recipes")
	}

	var items []*entity.FeedItem
	if err := base.
		Select(`recipes.id AS recipe_id, recipes.name, recipes.author_id,
			users.name AS author_name, recipes.date_published,
			recipes.aggregated_rating, recipes.review_count`).
		Joins("JOIN users ON users.id = recipes.author_id").
		Order("recipes.date_published DESC, recipes.id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&items).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to load feed")
	}

	return items, total, nil
}

// UpdateAggregate writes the derived rating/count pair for a recipe. The
// write is skipped entirely when the recipe row is gone.
func (repo *recipeRepository) UpdateAggregate(ctx context.Context, id int64, rating *float64, reviewCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"aggregated_rating": rating,
			"review_count":      reviewCount,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe aggregate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// ListCaloriePoints returns all (recipe, calories) points sorted by
// (calories, id), which is the order the adjacency scan depends on.
func (repo *recipeRepository) ListCaloriePoints(ctx context.Context) ([]entity.CaloriePoint, error) {
	var points []entity.CaloriePoint

	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Select("id AS recipe_id, calories").
		Where("calories IS NOT NULL").
		Order("calories ASC, id ASC").
		Scan(&points).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list calorie points")
	}

	return points, nil
}

// MostComplex ranks recipes by ingredient-set cardinality.
func (repo *recipeRepository) MostComplex(ctx context.Context, limit int) ([]entity.RecipeComplexity, error) {
	var ranks []entity.RecipeComplexity

	if err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Select("recipes.id AS recipe_id, recipes.name, COUNT(recipe_ingredients.ingredient) AS ingredient_count").
		Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Group("recipes.id, recipes.name").
		Order("ingredient_count DESC, recipes.id ASC").
		Limit(limit).
		Scan(&ranks).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank recipes by complexity")
	}

	return ranks, nil
}

// ImportRecipes upserts recipe rows with explicit identifiers and rebuilds
// their ingredient sets.
func (repo *recipeRepository) ImportRecipes(ctx context.Context, recipes []*entity.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	rows := make([]*model.RecipeModel, 0, len(recipes))
	ids := make([]int64, 0, len(recipes))
	var ingredientRows []model.RecipeIngredientModel
	for _, recipe := range recipes {
		recipeM := fromRecipeDomain(recipe)
		recipeM.Ingredients = nil
		rows = append(rows, recipeM)
		ids = append(ids, recipe.ID)
		for _, ingredient := range recipe.Ingredients {
			ingredientRows = append(ingredientRows, model.RecipeIngredientModel{
				RecipeID:   recipe.ID,
				Ingredient: ingredient,
			})
		}
	}

	db := repo.db.WithContext(ctx)

	if err := db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		CreateInBatches(rows, 200).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to import recipes")
	}

	if err := db.Where("recipe_id IN ?", ids).Delete(&model.RecipeIngredientModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reset imported ingredient sets")
	}

	if len(ingredientRows) > 0 {
		if err := db.
			Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(ingredientRows, 500).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to import ingredients")
		}
	}

	return nil
}

// AdvanceIDSequence moves the recipes identity sequence past max(id).
func (repo *recipeRepository) AdvanceIDSequence(ctx context.Context) error {
	return advanceIdentitySequence(ctx, repo.db, "recipes")
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity. The
// author name and ingredient set are attached by the caller.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:               data.ID,
		AuthorID:         data.AuthorID,
		Name:             data.Name,
		Description:      data.Description,
		Category:         data.Category,
		CookTime:         data.CookTime,
		PrepTime:         data.PrepTime,
		TotalTime:        data.TotalTime,
		DatePublished:    data.DatePublished,
		AggregatedRating: data.AggregatedRating,
		ReviewCount:      data.ReviewCount,
		Nutrition: entity.Nutrition{
			Calories:     data.Calories,
			Fat:          data.Fat,
			SaturatedFat: data.SaturatedFat,
			Cholesterol:  data.Cholesterol,
			Sodium:       data.Sodium,
			Carbohydrate: data.Carbohydrate,
			Fiber:        data.Fiber,
			Sugar:        data.Sugar,
			Protein:      data.Protein,
		},
		Servings: data.Servings,
		Yield:    data.Yield,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel,
// ingredient association included.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	ingredients := make([]model.RecipeIngredientModel, 0, len(data.Ingredients))
	for _, ingredient := range data.Ingredients {
		ingredients = append(ingredients, model.RecipeIngredientModel{
			RecipeID:   data.ID,
			Ingredient: ingredient,
		})
	}

	return &model.RecipeModel{
		ID:               data.ID,
		Name:             data.Name,
		AuthorID:         data.AuthorID,
		CookTime:         data.CookTime,
		PrepTime:         data.PrepTime,
		TotalTime:        data.TotalTime,
		DatePublished:    data.DatePublished,
		Description:      data.Description,
		Category:         data.Category,
		AggregatedRating: data.AggregatedRating,
		ReviewCount:      data.ReviewCount,
		Calories:         data.Calories,
		Fat:              data.Fat,
		SaturatedFat:     data.SaturatedFat,
		Cholesterol:      data.Cholesterol,
		Sodium:           data.Sodium,
		Carbohydrate:     data.Carbohydrate,
		Fiber:            data.Fiber,
		Sugar:            data.Sugar,
		Protein:          data.Protein,
		Servings:         data.Servings,
		Yield:            data.Yield,
		Ingredients:      ingredients,
	}
}
