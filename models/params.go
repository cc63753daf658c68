package models

/*
	Request parameters of every endpoint.
*/

/* Member */
type ParamJoin struct {
	ID       string `json:"id" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Nickname string `json:"nickname" binding:"required,max=64"`
}

type ParamLogin struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ParamProfileUpdate struct {
	Nickname string `json:"nickname" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=128"`
}

/* Board */
type ParamCategoryCreate struct {
	Title string `json:"title" binding:"required,max=64"`
	Desc  string `json:"desc" binding:"required,max=256"`
	Slug  string `json:"slug" binding:"required,max=64"`
}

type ParamBoardList struct {
	Category string `form:"category" binding:"required"`
	Page     int64  `form:"page" binding:"required"`
}

type ParamCategoryList struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=50"`
}

type ParamCategoryInfo struct {
	Category string `form:"category" binding:"required"`
}

/* Post */
type ParamPostWrite struct {
	Title    string `json:"title" binding:"required,max=128"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required,max=64"`
	Writer   int64  `json:"writer" binding:"required"`
}

type ParamPostRead struct {
	ID int64 `form:"id" binding:"required"`
}

type ParamPostUpdate struct {
	ID      int64  `json:"id" binding:"required"`
	Title   string `json:"title" binding:"required,max=128"`
	Content string `json:"content" binding:"required"`
}

type ParamPostDelete struct {
	PostID int64 `json:"postId" form:"postId" binding:"required"`
}

type ParamVote struct {
	PostID int64 `json:"postId" binding:"required"`
	UserID int64 `json:"userId" binding:"required"`
}

type ParamRecentPosts struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

/* Comment */
type ParamCommentCreate struct {
	PostID          int64  `json:"postId" binding:"required"`
	UserID          int64  `json:"userId" binding:"required"`
	Content         string `json:"content" binding:"required,max=8192"`
	ParentCommentID *int64 `json:"parentCommentId"`
}

type ParamCommentList struct {
	PostID int64 `form:"postId" binding:"required"`
}

type ParamCommentUpdate struct {
	CommentID int64  `json:"commentId" binding:"required"`
	Content   string `json:"content" binding:"required,max=8192"`
}

type ParamCommentRemove struct {
	CommentID int64 `json:"commentId" form:"commentId" binding:"required"`
}
