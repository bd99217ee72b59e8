package model

import "time"

// ReviewModel mirrors the 'reviews' table. The id column is a bigint
// GENERATED BY DEFAULT AS IDENTITY, so the bulk loader can insert explicit
// ids and the sequence is advanced afterwards.
type ReviewModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID      int64  `gorm:"not null;index"`
	AuthorID      int64  `gorm:"not null;index"`
	Rating        int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Body          string `gorm:"type:text"`
	DateSubmitted time.Time
	DateModified  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewLikeModel mirrors the 'review_likes' table. The composite primary
// key gives like/unlike their idempotency under concurrent requests.
type ReviewLikeModel struct {
	ReviewID  int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewLikeModel) TableName() string {
	return "review_likes"
}
