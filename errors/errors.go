package cboard

import "github.com/pkg/errors"

var (
	// account
	ErrUserExist     = errors.New("ID or email or nickname already exists")
	ErrUserNotExist  = errors.New("account not found")
	ErrWrongPassword = errors.New("ID or password is invalid")

	// session
	ErrNeedLogin    = errors.New("login required")
	ErrGenToken     = errors.New("failed to issue token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrForbidden    = errors.New("forbidden")

	// common
	ErrInvalidParam = errors.New("invalid parameter")
	ErrInternal     = errors.New("internal server error")

	// board
	ErrCategoryExist  = errors.New("duplicate title or slug")
	ErrNoSuchCategory = errors.New("category not found")
	ErrNoCategories   = errors.New("no categories found")

	// post
	ErrNoSuchPost   = errors.New("post not found")
	ErrNoSuchWriter = errors.New("writer not found")

	// comment
	ErrNoSuchComment = errors.New("comment not found")
)
