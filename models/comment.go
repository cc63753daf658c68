package models

import "time"

type Comment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID          int64     `gorm:"not null;index:idx_post_status_time" json:"post_id"`
	UserID          int64     `gorm:"not null" json:"user_id"`
	ParentCommentID *int64    `gorm:"index" json:"parent_comment_id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time `gorm:"index:idx_post_status_time" json:"created_at"`
	Status          int8      `gorm:"type:tinyint;not null;default:0;index:idx_post_status_time" json:"status"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentNode is a comment rendered with its commenter and nested replies.
type CommentNode struct {
	ID              int64          `json:"id"`
	PostID          int64          `json:"post_id"`
	UserID          int64          `json:"user_id"`
	User            string         `json:"user"`
	Content         string         `json:"content"`
	CreatedAt       time.Time      `json:"created_at"`
	ParentCommentID *int64         `json:"parent_comment_id"`
	Replies         []*CommentNode `json:"replies"`
}
