package controller

import (
	common "cboard/controller/Common"
	"cboard/internal/utils"
	"cboard/logic"
	"cboard/middleware"
	"cboard/models"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *logic.CommentService
}

func NewCommentHandler(comments *logic.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CreateHandler
//
//	@Summary	comment on a post
//	@Tags		comment
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamCommentCreate	true	"comment"
//	@Success	201		{object}	common.Response{data=common.ResponseCommentCreate}
//	@Router		/comment [post]
func (h *CommentHandler) CreateHandler(ctx *gin.Context) {
	p := new(models.ParamCommentCreate)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}
	if !isActor(ctx, p.UserID) {
		common.ResponseError(ctx, common.CodeForbidden)
		return
	}

	comment, err := h.comments.Create(ctx.Request.Context(), p)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseCreated(ctx, &common.ResponseCommentCreate{
		ID:              comment.ID,
		PostID:          comment.PostID,
		ParentCommentID: comment.ParentCommentID,
		CreatedAt:       comment.CreatedAt,
	})
}

// ListHandler returns the comment tree of a post
//
//	@Summary	comments of a post
//	@Tags		comment
//	@Produce	application/json
//	@Param		postId	query		int	true	"post id"
//	@Success	200		{object}	common.Response{data=[]models.CommentNode}
//	@Router		/comment [get]
func (h *CommentHandler) ListHandler(ctx *gin.Context) {
	p := new(models.ParamCommentList)
	if err := ctx.ShouldBindQuery(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	tree, err := h.comments.ListByPost(ctx.Request.Context(), p.PostID)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, tree)
}

// UpdateHandler
//
//	@Summary	edit comment
//	@Tags		comment
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamCommentUpdate	true	"comment"
//	@Success	200		{object}	common.Response
//	@Router		/comment [patch]
func (h *CommentHandler) UpdateHandler(ctx *gin.Context) {
	p := new(models.ParamCommentUpdate)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	identity, _ := middleware.GetIdentity(ctx)
	if err := h.comments.Update(ctx.Request.Context(), identity.ID, p); err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, nil)
}

// RemoveHandler
//
//	@Summary	delete comment
//	@Tags		comment
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		commentId	query		int	false	"comment id"
//	@Success	200			{object}	common.Response
//	@Router		/comment [delete]
func (h *CommentHandler) RemoveHandler(ctx *gin.Context) {
	p := new(models.ParamCommentRemove)
	if err := ctx.ShouldBind(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	identity, _ := middleware.GetIdentity(ctx)
	if err := h.comments.Delete(ctx.Request.Context(), identity.ID, p.CommentID); err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, nil)
}
