// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Gender is the closed set of user genders accepted at registration.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether the gender is one of the accepted values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User represents an account in the system. Accounts are never hard-deleted:
// deletion sets the Deleted flag and removes the user's follow edges, while
// authored recipes and reviews stay visible.
type User struct {
	ID           int64  // Identifier, assigned at creation and immutable afterwards.
	Name         string // Display name, globally unique.
	Gender       Gender
	Age          int
	PasswordHash string // bcrypt hash of the credential secret. Never exposed outward.
	Deleted      bool

	// Follow-graph projections. Counts are always derived from the edge table,
	// never stored on the user row.
	Followers    int64
	Following    int64
	FollowerIDs  []int64
	FollowingIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the user can author mutations and be followed.
func (u *User) Active() bool {
	return u != nil && !u.Deleted
}

// FollowResult describes the outcome of a follow toggle.
type FollowResult string

const (
	FollowResultFollowed   FollowResult = "followed"
	FollowResultUnfollowed FollowResult = "unfollowed"
)
