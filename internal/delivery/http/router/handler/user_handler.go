// Package handler contains the HTTP handlers for the application.
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

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Age      int    `json:"age" validate:"required,gt=0"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Gender *string `json:"gender"`
	Age    *int    `json:"age"`
}

// userView is the outward user projection. The credential hash never leaves
// the service.
type userView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	Followers    int64     `json:"followers"`
	Following    int64     `json:"following"`
	FollowerIDs  []int64   `json:"follower_ids,omitempty"`
	FollowingIDs []int64   `json:"following_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newUserView(user *entity.User) *userView {
	return &userView{
		ID:           user.ID,
		Name:         user.Name,
		Gender:       string(user.Gender),
		Age:          user.Age,
		Followers:    user.Followers,
		Following:    user.Following,
		FollowerIDs:  user.FollowerIDs,
		FollowingIDs: user.FollowingIDs,
		CreatedAt:    user.CreatedAt,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Gender:   req.Gender,
		Age:      req.Age,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          newUserView(output.User),
	}, "Login successful")
}

// GetUser returns a user profile with its derived follow projections.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// UpdateProfile updates the caller's mutable profile fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID: callerID,
		Gender: req.Gender,
		Age:    req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Profile updated")
}

// DeleteAccount soft-deletes the caller's account.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), callerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// Follow toggles the follow edge from the caller to the target user.
func (h *UserHandler) Follow(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	followeeID, err := pathID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	result, err := h.uc.Follow(c.Request().Context(), callerID, followeeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"result": string(result)}, "")
}

// FollowRatio returns the user with the highest followers/following ratio.
func (h *UserHandler) FollowRatio(c echo.Context) error {
	ratio, err := h.uc.HighestFollowRatio(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if ratio == nil {
		return response.NotFound(c, "NO_QUALIFYING_USER", "no user follows anyone yet")
	}

	return response.Success(c, http.StatusOK, ratio, "")
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id parameter %q", c.Param(name))
	}

	return id, nil
}
