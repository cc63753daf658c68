package models

import "time"

const (
	StatusVisible int8 = iota
	StatusDeleted
)

type Post struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"type:varchar(128);not null" json:"title"`
	Content       string    `gorm:"type:longtext;not null" json:"content"`
	WriterID      int64     `gorm:"not null;index:idx_writer_status" json:"writer_id"`
	Category      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_category_order;index:idx_category_status" json:"category"`
	CategoryOrder int64     `gorm:"not null;uniqueIndex:idx_category_order" json:"category_order"`
	Views         int64     `gorm:"not null;default:0" json:"views"`
	Likes         int64     `gorm:"not null;default:0" json:"likes"`
	Dislikes      int64     `gorm:"not null;default:0" json:"dislikes"`
	WrittenTime   time.Time `gorm:"not null" json:"written_time"`
	Status        int8      `gorm:"type:tinyint;not null;default:0;index:idx_category_status;index:idx_writer_status" json:"status"`
}

func (Post) TableName() string {
	return "board"
}

// PostItem is the composed view returned by a post read.
type PostItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	WriterID    int64     `json:"writer_id"`
	Writer      string    `json:"writer"`
	Likes       int64     `json:"likes"`
	Dislikes    int64     `json:"dislikes"`
	Views       int64     `json:"views"`
	WrittenTime time.Time `json:"written_time"`
	Content     string    `json:"content"`
}

type RecentPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	WrittenTime   time.Time `json:"written_time"`
	Category      string    `json:"category"`
	CategoryTitle string    `json:"category_title"`
}

type VoteType int8

const (
	VoteLike VoteType = iota + 1
	VoteDislike
)

func (v VoteType) String() string {
	if v == VoteDislike {
		return "dislike"
	}
	return "like"
}

// one row per (post, voter); the unique index is the idempotence guard
type PostLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"not null;uniqueIndex:idx_like_post_user" json:"post_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

type PostDislike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"not null;uniqueIndex:idx_dislike_post_user" json:"post_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_dislike_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostDislike) TableName() string {
	return "post_dislikes"
}

type VoteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
