package controller

import "net/http"

type Code uint

const (
	CodeSuccess Code = iota + 1000
	CodeInternalErr
	CodeServerBusy
	CodeInvalidParam
	CodeInvalidToken
	CodeExpiredToken
	CodeForbidden

	CodeUserExist
	CodeUserNotExist
	CodeWrongPassword
	CodeNeedLogin

	CodeCategoryExist
	CodeNoSuchCategory
	CodeNoCategories

	CodeNoSuchPost
	CodeNoSuchWriter
	CodeAlreadyVoted

	CodeNoSuchComment
)

var codeMsgMap = map[Code]string{
	CodeSuccess:      "Success",
	CodeInternalErr:  "Internal server error",
	CodeServerBusy:   "Too many requests",
	CodeInvalidParam: "Invalid parameter",
	CodeInvalidToken: "Invalid token",
	CodeExpiredToken: "Expired token",
	CodeForbidden:    "Forbidden",

	CodeUserExist:     "ID or email or nickname already exists",
	CodeUserNotExist:  "Account not found",
	CodeWrongPassword: "ID or password is invalid",
	CodeNeedLogin:     "Login required",

	CodeCategoryExist:  "Duplicate title or slug",
	CodeNoSuchCategory: "Category not found",
	CodeNoCategories:   "No categories found",

	CodeNoSuchPost:   "Post not found",
	CodeNoSuchWriter: "Writer not found",
	CodeAlreadyVoted: "Already voted",

	CodeNoSuchComment: "Comment not found",
}

// HTTP status sent with each code; unlisted codes are 200
var codeStatusMap = map[Code]int{
	CodeInternalErr:  http.StatusInternalServerError,
	CodeServerBusy:   http.StatusTooManyRequests,
	CodeInvalidParam: http.StatusBadRequest,
	CodeInvalidToken: http.StatusForbidden,
	CodeExpiredToken: http.StatusForbidden,
	CodeForbidden:    http.StatusForbidden,

	CodeUserExist:     http.StatusBadRequest,
	CodeUserNotExist:  http.StatusNotFound,
	CodeWrongPassword: http.StatusBadRequest,
	CodeNeedLogin:     http.StatusUnauthorized,

	CodeCategoryExist:  http.StatusBadRequest,
	CodeNoSuchCategory: http.StatusNotFound,
	CodeNoCategories:   http.StatusNotFound,

	CodeNoSuchPost:   http.StatusNotFound,
	CodeNoSuchWriter: http.StatusNotFound,

	CodeNoSuchComment: http.StatusNotFound,
}

func (c Code) getMsg() string {
	msg, ok := codeMsgMap[c]
	if !ok {
		return "Unknown error"
	}
	return msg
}

func (c Code) Status() int {
	status, ok := codeStatusMap[c]
	if !ok {
		return http.StatusOK
	}
	return status
}
