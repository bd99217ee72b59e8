package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tastebook/internal/delivery/http/response"
	"tastebook/internal/domain/entity"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DatasetHandler exposes the bulk loader behind the config-gated admin route.
type DatasetHandler struct {
	uc     usecase.DatasetUsecase
	logger *slog.Logger
}

// NewDatasetHandler is the constructor for DatasetHandler, injected by Fx.
func NewDatasetHandler(uc usecase.DatasetUsecase, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{
		uc:     uc,
		logger: logger,
	}
}

type importUser struct {
	ID           int64   `json:"id" validate:"required,gt=0"`
	Name         string  `json:"name" validate:"required"`
	Gender       string  `json:"gender" validate:"required"`
	Age          int     `json:"age" validate:"required,gt=0"`
	PasswordHash string  `json:"password_hash"`
	Deleted      bool    `json:"deleted"`
	Following    []int64 `json:"following"`
}

type importRecipe struct {
	ID            int64     `json:"id" validate:"required,gt=0"`
	AuthorID      int64     `json:"author_id" validate:"required,gt=0"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CookTime      string    `json:"cook_time"`
	PrepTime      string    `json:"prep_time"`
	TotalTime     string    `json:"total_time"`
	DatePublished time.Time `json:"date_published"`

	Calories     *float64 `json:"calories"`
	Fat          *float64 `json:"fat"`
	SaturatedFat *float64 `json:"saturated_fat"`
	Cholesterol  *float64 `json:"cholesterol"`
	Sodium       *float64 `json:"sodium"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Fiber        *float64 `json:"fiber"`
	Sugar        *float64 `json:"sugar"`
	Protein      *float64 `json:"protein"`

	AggregatedRating *float64 `json:"aggregated_rating"`
	ReviewCount      int      `json:"review_count"`

	Servings    int      `json:"servings"`
	Yield       string   `json:"yield"`
	Ingredients []string `json:"ingredients"`
}

type importReview struct {
	ID            int64     `json:"id" validate:"required,gt=0"`
	RecipeID      int64     `json:"recipe_id" validate:"required,gt=0"`
	AuthorID      int64     `json:"author_id" validate:"required,gt=0"`
	Rating        int       `json:"rating" validate:"required,min=1,max=5"`
	Body          string    `json:"body"`
	DateSubmitted time.Time `json:"date_submitted"`
	DateModified  time.Time `json:"date_modified"`
	LikedBy       []int64   `json:"liked_by"`
}

type importDatasetRequest struct {
	Users   []importUser   `json:"users" validate:"dive"`
	Recipes []importRecipe `json:"recipes" validate:"dive"`
	Reviews []importReview `json:"reviews" validate:"dive"`
}

// Import loads a dataset snapshot in one transaction.
func (h *DatasetHandler) Import(c echo.Context) error {
	var req importDatasetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dataset payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.ImportDatasetInput{
		Users:   make([]*entity.User, 0, len(req.Users)),
		Recipes: make([]*entity.Recipe, 0, len(req.Recipes)),
		Reviews: make([]*entity.Review, 0, len(req.Reviews)),
	}

	for _, u := range req.Users {
		input.Users = append(input.Users, &entity.User{
			ID:           u.ID,
			Name:         u.Name,
			Gender:       entity.Gender(u.Gender),
			Age:          u.Age,
			PasswordHash: u.PasswordHash,
			Deleted:      u.Deleted,
			FollowingIDs: u.Following,
		})
	}

	for _, r := range req.Recipes {
		input.Recipes = append(input.Recipes, &entity.Recipe{
			ID:               r.ID,
			AuthorID:         r.AuthorID,
			Name:             r.Name,
			Description:      r.Description,
			Category:         r.Category,
			CookTime:         r.CookTime,
			PrepTime:         r.PrepTime,
			TotalTime:        r.TotalTime,
			DatePublished:    r.DatePublished,
			AggregatedRating: r.AggregatedRating,
			ReviewCount:      r.ReviewCount,
			Nutrition: entity.Nutrition{
				Calories:     r.Calories,
				Fat:          r.Fat,
				SaturatedFat: r.SaturatedFat,
				Cholesterol:  r.Cholesterol,
				Sodium:       r.Sodium,
				Carbohydrate: r.Carbohydrate,
				Fiber:        r.Fiber,
				Sugar:        r.Sugar,
				Protein:      r.Protein,
			},
			Servings:    r.Servings,
			Yield:       r.Yield,
			Ingredients: r.Ingredients,
		})
	}

	for _, rv := range req.Reviews {
		input.Reviews = append(input.Reviews, &entity.Review{
			ID:            rv.ID,
			RecipeID:      rv.RecipeID,
			AuthorID:      rv.AuthorID,
			Rating:        rv.Rating,
			Body:          rv.Body,
			DateSubmitted: rv.DateSubmitted,
			DateModified:  rv.DateModified,
			LikedBy:       rv.LikedBy,
		})
	}

	output, err := h.uc.ImportDataset(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Dataset imported")
}
