package models

import "time"

type BoardCategory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"title"`
	Slug        string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:varchar(256);not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (BoardCategory) TableName() string {
	return "board_category"
}

type CategoryDTO struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Posts       []*PostPreview `json:"post"`
}

type PostPreview struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	WriterID      int64     `json:"writer_id"`
	CategoryOrder int64     `json:"category_order"`
	Views         int64     `json:"views"`
	Likes         int64     `json:"likes"`
	WrittenTime   time.Time `json:"written_time"`
}

// BoardItem is one row of a category page.
type BoardItem struct {
	ID            int64     `json:"id"`
	WriterID      int64     `json:"writer_id"`
	Writer        string    `json:"writer"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	WrittenTime   time.Time `json:"written_time"`
	CategoryOrder int64     `json:"category_order"`
	Views         int64     `json:"views"`
	Likes         int64     `json:"likes"`
	Dislikes      int64     `json:"dislikes"`
}

type BoardPage struct {
	Total int64        `json:"total"`
	Array []*BoardItem `json:"array"`
}
