package models

import "time"

type ForumPost struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	UserID   uint   `gorm:"index;not null" json:"user_id"`
	PostText string `gorm:"not null" json:"post_text"`
	PhotoURL string `json:"photo_url"`
}

type ForumComment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	ForumPostID uint   `gorm:"index;not null" json:"forum_post_id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	CommentText string `gorm:"not null" json:"comment_text"`
}

// One like per (user, post); the unique index makes a concurrent
// double-create fail one writer instead of accumulating rows.
type ForumLike struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID      uint `gorm:"not null;uniqueIndex:idx_user_post"`
	ForumPostID uint `gorm:"not null;uniqueIndex:idx_user_post"`
}
