package controller

import (
	common "cboard/controller/Common"
	cboard "cboard/errors"
	"cboard/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var errCodes = []struct {
	err  error
	code common.Code
}{
	{cboard.ErrInvalidParam, common.CodeInvalidParam},
	{cboard.ErrUserExist, common.CodeUserExist},
	{cboard.ErrUserNotExist, common.CodeUserNotExist},
	{cboard.ErrWrongPassword, common.CodeWrongPassword},
	{cboard.ErrNeedLogin, common.CodeNeedLogin},
	{cboard.ErrForbidden, common.CodeForbidden},
	{cboard.ErrCategoryExist, common.CodeCategoryExist},
	{cboard.ErrNoSuchCategory, common.CodeNoSuchCategory},
	{cboard.ErrNoCategories, common.CodeNoCategories},
	{cboard.ErrNoSuchPost, common.CodeNoSuchPost},
	{cboard.ErrNoSuchWriter, common.CodeNoSuchWriter},
	{cboard.ErrNoSuchComment, common.CodeNoSuchComment},
}

// responseErr maps a logic error to its envelope. Anything unrecognised is
// logged with its stack and reported as a generic 500.
func responseErr(ctx *gin.Context, err error) {
	for _, e := range errCodes {
		if errors.Is(err, e.err) {
			common.ResponseError(ctx, e.code)
			return
		}
	}
	logger.ErrorWithStack(err)
	common.ResponseError(ctx, common.CodeInternalErr)
}
