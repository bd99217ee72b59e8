package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/response"
	"tastebook/internal/domain/entity"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

type createRecipeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CookTime    string `json:"cook_time"`
	PrepTime    string `json:"prep_time"`

	Calories     *float64 `json:"calories"`
	Fat          *float64 `json:"fat"`
	SaturatedFat *float64 `json:"saturated_fat"`
	Cholesterol  *float64 `json:"cholesterol"`
	Sodium       *float64 `json:"sodium"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Fiber        *float64 `json:"fiber"`
	Sugar        *float64 `json:"sugar"`
	Protein      *float64 `json:"protein"`

	Servings    int      `json:"servings"`
	Yield       string   `json:"yield"`
	Ingredients []string `json:"ingredients"`
}

type updateTimesRequest struct {
	CookTime *string `json:"cook_time"`
	PrepTime *string `json:"prep_time"`
}

// recipeView is the outward recipe projection.
type recipeView struct {
	ID               int64     `json:"id"`
	AuthorID         int64     `json:"author_id"`
	AuthorName       string    `json:"author_name"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category,omitempty"`
	CookTime         string    `json:"cook_time,omitempty"`
	PrepTime         string    `json:"prep_time,omitempty"`
	TotalTime        string    `json:"total_time,omitempty"`
	DatePublished    time.Time `json:"date_published"`
	AggregatedRating *float64  `json:"aggregated_rating"`
	ReviewCount      int       `json:"review_count"`
	Calories         *float64  `json:"calories,omitempty"`
	Servings         int       `json:"servings,omitempty"`
	Yield            string    `json:"yield,omitempty"`
	Ingredients      []string  `json:"ingredients"`
}

func newRecipeView(recipe *entity.Recipe) *recipeView {
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return &recipeView{
		ID:               recipe.ID,
		AuthorID:         recipe.AuthorID,
		AuthorName:       recipe.AuthorName,
		Name:             recipe.Name,
		Description:      recipe.Description,
		Category:         recipe.Category,
		CookTime:         recipe.CookTime,
		PrepTime:         recipe.PrepTime,
		TotalTime:        recipe.TotalTime,
		DatePublished:    recipe.DatePublished,
		AggregatedRating: recipe.AggregatedRating,
		ReviewCount:      recipe.ReviewCount,
		Calories:         recipe.Calories,
		Servings:         recipe.Servings,
		Yield:            recipe.Yield,
		Ingredients:      ingredients,
	}
}

// Create handles recipe publication.
func (h *RecipeHandler) Create(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), usecase.CreateRecipeInput{
		AuthorID:    callerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CookTime:    req.CookTime,
		PrepTime:    req.PrepTime,
		Nutrition: entity.Nutrition{
			Calories:     req.Calories,
			Fat:          req.Fat,
			SaturatedFat: req.SaturatedFat,
			Cholesterol:  req.Cholesterol,
			Sodium:       req.Sodium,
			Carbohydrate: req.Carbohydrate,
			Fiber:        req.Fiber,
			Sugar:        req.Sugar,
			Protein:      req.Protein,
		},
		Servings:    req.Servings,
		Yield:       req.Yield,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRecipeView(recipe), "Recipe created")
}

// Get returns the full recipe projection.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe id")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecipeView(recipe), "")
}

// Search runs the composed recipe search.
func (h *RecipeHandler) Search(c echo.Context) error {
	input := usecase.SearchRecipesInput{
		Keyword:  c.QueryParam("keyword"),
		Category: c.QueryParam("category"),
		Page:     queryInt(c, "page", 1),
		Size:     queryInt(c, "size", 20),
		Sort:     c.QueryParam("sort"),
	}

	if raw := c.QueryParam("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "min_rating must be a number")
		}
		input.MinRating = &minRating
	}

	page, err := h.uc.SearchRecipes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*recipeView, 0, len(page.Items))
	for _, recipe := range page.Items {
		views = append(views, newRecipeView(recipe))
	}

	return response.Success(c, http.StatusOK, entity.NewPage(views, page.Page, page.Size, page.Total), "")
}

// Feed lists recipes from the caller's followed authors.
func (h *RecipeHandler) Feed(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	page, err := h.uc.Feed(c.Request().Context(), usecase.FeedInput{
		UserID:   callerID,
		Category: c.QueryParam("category"),
		Page:     queryInt(c, "page", 1),
		Size:     queryInt(c, "size", 20),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// UpdateTimes updates an owned recipe's cook/prep times.
func (h *RecipeHandler) UpdateTimes(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe id")
	}

	var req updateTimesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid time input")
	}

	recipe, err := h.uc.UpdateTimes(c.Request().Context(), usecase.UpdateRecipeTimesInput{
		RecipeID: id,
		UserID:   callerID,
		CookTime: req.CookTime,
		PrepTime: req.PrepTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecipeView(recipe), "Times updated")
}

// Delete removes an owned recipe.
func (h *RecipeHandler) Delete(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe id")
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), id, callerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe deleted")
}

// ClosestCaloriePair returns the two recipes with the nearest calorie values.
func (h *RecipeHandler) ClosestCaloriePair(c echo.Context) error {
	pair, err := h.uc.ClosestCaloriePair(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if pair == nil {
		return response.NotFound(c, "NOT_ENOUGH_RECIPES", "fewer than two recipes declare calories")
	}

	return response.Success(c, http.StatusOK, pair, "")
}

// MostComplex returns the recipes with the largest ingredient sets.
func (h *RecipeHandler) MostComplex(c echo.Context) error {
	ranks, err := h.uc.MostComplexRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranks, "")
}

// queryInt parses an integer query parameter with a default.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
