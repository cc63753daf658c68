package controller

import (
	common "cboard/controller/Common"
	cboard "cboard/errors"
	"cboard/internal/utils"
	"cboard/logic"
	"cboard/middleware"
	"cboard/models"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type PostHandler struct {
	posts       *logic.PostService
	recentLimit int
}

func NewPostHandler(posts *logic.PostService, recentLimit int) *PostHandler {
	return &PostHandler{posts: posts, recentLimit: recentLimit}
}

// WriteHandler
//
//	@Summary	write post
//	@Tags		post
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamPostWrite	true	"post"
//	@Success	201		{object}	common.Response{data=common.ResponsePostCreate}
//	@Router		/post [post]
func (h *PostHandler) WriteHandler(ctx *gin.Context) {
	p := new(models.ParamPostWrite)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}
	if !isActor(ctx, p.Writer) {
		common.ResponseError(ctx, common.CodeForbidden)
		return
	}

	post, err := h.posts.Create(ctx.Request.Context(), p)
	if err != nil {
		// an unknown category is a bad request here, not a missing resource
		if errors.Is(err, cboard.ErrNoSuchCategory) {
			common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, "Category not found")
			return
		}
		responseErr(ctx, err)
		return
	}
	common.ResponseCreated(ctx, &common.ResponsePostCreate{
		ID:            post.ID,
		Category:      post.Category,
		CategoryOrder: post.CategoryOrder,
		WrittenTime:   post.WrittenTime,
	})
}

// ReadHandler
//
//	@Summary	read post
//	@Tags		post
//	@Produce	application/json
//	@Param		id	query		int	true	"post id"
//	@Success	200	{object}	common.Response{data=models.PostItem}
//	@Router		/post [get]
func (h *PostHandler) ReadHandler(ctx *gin.Context) {
	p := new(models.ParamPostRead)
	if err := ctx.ShouldBindQuery(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	post, err := h.posts.Read(ctx.Request.Context(), p.ID)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, post)
}

// UpdateHandler
//
//	@Summary	update post
//	@Tags		post
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamPostUpdate	true	"post"
//	@Success	200		{object}	common.Response
//	@Router		/post [put]
func (h *PostHandler) UpdateHandler(ctx *gin.Context) {
	p := new(models.ParamPostUpdate)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	identity, _ := middleware.GetIdentity(ctx)
	if err := h.posts.Update(ctx.Request.Context(), identity.ID, p); err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, nil)
}

// DeleteHandler accepts postId as JSON body or query parameter
//
//	@Summary	delete post
//	@Tags		post
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		postId	query		int	false	"post id"
//	@Success	200		{object}	common.Response
//	@Router		/post/delete [delete]
func (h *PostHandler) DeleteHandler(ctx *gin.Context) {
	p := new(models.ParamPostDelete)
	if err := ctx.ShouldBind(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	identity, _ := middleware.GetIdentity(ctx)
	if err := h.posts.Delete(ctx.Request.Context(), identity.ID, p.PostID); err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, nil)
}

// LikeHandler
//
//	@Summary	like post
//	@Tags		post
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamVote	true	"vote"
//	@Success	200		{object}	common.Response
//	@Router		/post/like [post]
func (h *PostHandler) LikeHandler(ctx *gin.Context) {
	h.vote(ctx, models.VoteLike)
}

// DislikeHandler
//
//	@Summary	dislike post
//	@Tags		post
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamVote	true	"vote"
//	@Success	200		{object}	common.Response
//	@Router		/post/dislike [post]
func (h *PostHandler) DislikeHandler(ctx *gin.Context) {
	h.vote(ctx, models.VoteDislike)
}

func (h *PostHandler) vote(ctx *gin.Context, voteType models.VoteType) {
	p := new(models.ParamVote)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}
	if !isActor(ctx, p.UserID) {
		common.ResponseError(ctx, common.CodeForbidden)
		return
	}

	res, err := h.posts.Vote(ctx.Request.Context(), voteType, p.PostID, p.UserID)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	if !res.Success {
		common.ResponseNotice(ctx, common.CodeAlreadyVoted, res.Message)
		return
	}
	common.ResponseSuccessWithMsg(ctx, res.Message, nil)
}

// RecentByUserHandler
//
//	@Summary	recent posts of a writer
//	@Tags		post
//	@Produce	application/json
//	@Param		userId	path		int	true	"account id"
//	@Param		limit	query		int	false	"1 to 100"
//	@Success	200		{object}	common.Response{data=[]models.RecentPost}
//	@Router		/post/user/{userId} [get]
func (h *PostHandler) RecentByUserHandler(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}
	p := new(models.ParamRecentPosts)
	if err := ctx.ShouldBindQuery(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}
	if p.Limit == 0 {
		p.Limit = h.recentLimit
	}

	posts, err := h.posts.ListRecentByUser(ctx.Request.Context(), userID, p.Limit)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, posts)
}

// isActor reports whether id names the logged-in caller.
func isActor(ctx *gin.Context, id int64) bool {
	identity, ok := middleware.GetIdentity(ctx)
	return ok && identity.ID == id
}
