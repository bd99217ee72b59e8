// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tastebook/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Gender   string
	Age      int
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Name     string
	Password string
}

// UpdateProfileInput carries the optional profile fields of an update. A nil
// field leaves the current value untouched.
type UpdateProfileInput struct {
	UserID int64
	Gender *string
	Age    *int
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetUser returns the profile of a live user together with its derived
	// follower/following counts and id lists.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// DeleteAccount soft-deletes the account and removes its follow edges in
	// both directions. Authored recipes and reviews stay visible.
	DeleteAccount(ctx context.Context, userID int64) error

	// Follow toggles the directed follow edge and reports which way it went.
	Follow(ctx context.Context, followerID, followeeID int64) (entity.FollowResult, error)

	// HighestFollowRatio returns the user with the best followers/following
	// ratio among users following at least one account, or nil when nobody
	// qualifies.
	HighestFollowRatio(ctx context.Context) (*entity.FollowRatio, error)
}
