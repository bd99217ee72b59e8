// Package model contains the GORM persistence structs mirroring the database
// tables. They are kept separate from the pure domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. Identifiers come from a bigint
// identity sequence so bulk-loaded explicit ids and generated ids coexist.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Gender       string `gorm:"type:varchar(10);not null"`
	Age          int    `gorm:"not null;check:age > 0"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Deleted      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserFollowModel mirrors the 'user_follows' table: one directed edge per
// row, unique per ordered pair, with a CHECK forbidding self-edges.
type UserFollowModel struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false;check:chk_no_self_follow,follower_id <> followee_id"`
	FolloweeID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserFollowModel) TableName() string {
	return "user_follows"
}
