// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user row is absent.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user and follow-graph
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type UserRepository interface {
	// Create persists a new user and assigns its generated identifier.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves the base user row, including soft-deleted users.
	// Follow counts and id lists are not populated; they are derived
	// separately so every read reflects a committed edge-set snapshot.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByName retrieves the base user row by its unique display name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// UpdateProfile updates the mutable profile fields. Nil fields are left
	// untouched.
	UpdateProfile(ctx context.Context, id int64, gender *entity.Gender, age *int) error

	// SoftDelete marks the user deleted. The row itself is retained.
	SoftDelete(ctx context.Context, id int64) error

	// Follow-graph edge operations.
	HasFollowEdge(ctx context.Context, followerID, followeeID int64) (bool, error)
	CreateFollowEdge(ctx context.Context, followerID, followeeID int64) error
	DeleteFollowEdge(ctx context.Context, followerID, followeeID int64) error

	// DeleteAllFollowEdges removes every edge where the user appears as
	// follower or followee.
	DeleteAllFollowEdges(ctx context.Context, userID int64) error

	// Derived follow-graph projections.
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
	ListFollowerIDs(ctx context.Context, userID int64) ([]int64, error)
	ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error)

	// HighestFollowRatio returns the live user with the maximum
	// followers/following ratio among users with at least one outgoing edge,
	// ties broken by ascending id. Returns (nil, nil) when no user qualifies.
	HighestFollowRatio(ctx context.Context) (*entity.FollowRatio, error)

	// ImportUsers upserts user rows with explicit identifiers (bulk load).
	ImportUsers(ctx context.Context, users []*entity.User) error

	// ImportFollowEdges inserts follow edges, ignoring duplicates. Each pair
	// is (followerID, followeeID).
	ImportFollowEdges(ctx context.Context, edges [][2]int64) error

	// AdvanceIDSequence advances the users identity sequence past the current
	// maximum id, so generated-id inserts never collide with imported rows.
	AdvanceIDSequence(ctx context.Context) error
}
