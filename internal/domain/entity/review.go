package entity

import "time"

// Review is a rating plus free-text body attached to exactly one recipe by
// exactly one author. Review identifiers are assigned by a monotone sequence
// and are never reused within a live sequence.
type Review struct {
	ID       int64
	RecipeID int64
	AuthorID int64
	Rating   int // Always in [1,5].
	Body     string

	DateSubmitted time.Time
	DateModified  time.Time

	// LikedBy is the review's like set: unique user identifiers, never
	// containing the review's own author. LikeCount is the live size of
	// the set.
	LikedBy   []int64
	LikeCount int64
}

const (
	// MinRating and MaxRating bound the accepted review rating.
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether a rating is inside the accepted range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
