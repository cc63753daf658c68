package models

import "time"

type Account struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex" json:"user_id"`
	Password  string    `gorm:"column:user_pw;type:varchar(128);not null" json:"-"`
	Email     string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"email"`
	Nickname  string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

func (Account) TableName() string {
	return "account"
}

// AccountInfo is the display identity of an account, used whenever an
// author has to be rendered.
type AccountInfo struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email,omitempty"`
}
