package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/response"
	"tastebook/internal/domain/entity"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type addReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Body   string `json:"body"`
}

type editReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Body   string `json:"body"`
}

// reviewView is the outward review projection with its live like data.
type reviewView struct {
	ID            int64     `json:"id"`
	RecipeID      int64     `json:"recipe_id"`
	AuthorID      int64     `json:"author_id"`
	Rating        int       `json:"rating"`
	Body          string    `json:"body,omitempty"`
	DateSubmitted time.Time `json:"date_submitted"`
	DateModified  time.Time `json:"date_modified"`
	LikedBy       []int64   `json:"liked_by"`
	LikeCount     int64     `json:"like_count"`
}

func newReviewView(review *entity.Review) *reviewView {
	likedBy := review.LikedBy
	if likedBy == nil {
		likedBy = []int64{}
	}

	return &reviewView{
		ID:            review.ID,
		RecipeID:      review.RecipeID,
		AuthorID:      review.AuthorID,
		Rating:        review.Rating,
		Body:          review.Body,
		DateSubmitted: review.DateSubmitted,
		DateModified:  review.DateModified,
		LikedBy:       likedBy,
		LikeCount:     review.LikeCount,
	}
}

// Add attaches a review to a recipe. The response carries the refreshed
// recipe aggregate from the same transaction.
func (h *ReviewHandler) Add(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	recipeID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe id")
	}

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.AddReview(c.Request().Context(), usecase.AddReviewInput{
		RecipeID: recipeID,
		AuthorID: callerID,
		Rating:   req.Rating,
		Body:     req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"review": newReviewView(output.Review),
		"recipe": newRecipeView(output.Recipe),
	}, "Review added")
}

// Edit updates an authored review.
func (h *ReviewHandler) Edit(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review id")
	}

	var req editReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.EditReview(c.Request().Context(), usecase.EditReviewInput{
		ReviewID: reviewID,
		AuthorID: callerID,
		Rating:   req.Rating,
		Body:     req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"review": newReviewView(output.Review),
		"recipe": newRecipeView(output.Recipe),
	}, "Review updated")
}

// Delete removes an authored review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review id")
	}

	recipe, err := h.uc.DeleteReview(c.Request().Context(), reviewID, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"recipe": newRecipeView(recipe),
	}, "Review deleted")
}

// List returns one page of a recipe's reviews.
func (h *ReviewHandler) List(c echo.Context) error {
	recipeID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe id")
	}

	page, err := h.uc.ListReviews(c.Request().Context(), usecase.ListReviewsInput{
		RecipeID: recipeID,
		Page:     queryInt(c, "page", 1),
		Size:     queryInt(c, "size", 20),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*reviewView, 0, len(page.Items))
	for _, review := range page.Items {
		views = append(views, newReviewView(review))
	}

	return response.Success(c, http.StatusOK, entity.NewPage(views, page.Page, page.Size, page.Total), "")
}

// Like records the caller's like on a review.
func (h *ReviewHandler) Like(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review id")
	}

	count, err := h.uc.Like(c.Request().Context(), reviewID, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"like_count": count}, "")
}

// Unlike removes the caller's like from a review.
func (h *ReviewHandler) Unlike(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review id")
	}

	count, err := h.uc.Unlike(c.Request().Context(), reviewID, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"like_count": count}, "")
}
