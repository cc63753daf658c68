package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
	Error   any    `json:"error,omitempty"` // string, or field -> message on validation failures
	Data    any    `json:"data,omitempty"`
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, &Response{
		Success: true,
		Code:    CodeSuccess,
		Data:    data,
	})
}

func ResponseCreated(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusCreated, &Response{
		Success: true,
		Code:    CodeSuccess,
		Data:    data,
	})
}

func ResponseSuccessWithMsg(ctx *gin.Context, msg string, data any) {
	ctx.JSON(http.StatusOK, &Response{
		Success: true,
		Code:    CodeSuccess,
		Message: msg,
		Data:    data,
	})
}

// ResponseNotice is a 200 with success=false: the request was understood
// and deliberately not applied.
func ResponseNotice(ctx *gin.Context, code Code, msg string) {
	ctx.JSON(http.StatusOK, &Response{
		Success: false,
		Code:    code,
		Message: msg,
	})
}

func ResponseError(ctx *gin.Context, code Code) {
	ctx.JSON(code.Status(), &Response{
		Success: false,
		Code:    code,
		Error:   code.getMsg(),
	})
}

func ResponseErrorWithMsg(ctx *gin.Context, code Code, msg any) {
	ctx.JSON(code.Status(), &Response{
		Success: false,
		Code:    code,
		Error:   msg,
	})
}
