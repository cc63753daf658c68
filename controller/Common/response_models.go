package controller

import "time"

type ResponsePostCreate struct {
	ID            int64     `json:"id"`
	Category      string    `json:"category"`
	CategoryOrder int64     `json:"category_order"`
	WrittenTime   time.Time `json:"written_time"`
}

type ResponseCommentCreate struct {
	ID              int64     `json:"id"`
	PostID          int64     `json:"post_id"`
	ParentCommentID *int64    `json:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type ResponseCategoryCreate struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}
