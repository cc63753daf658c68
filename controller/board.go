package controller

import (
	common "cboard/controller/Common"
	"cboard/internal/utils"
	"cboard/logic"
	"cboard/models"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boards        *logic.BoardService
	posts         *logic.PostService
	categoryLimit int
}

func NewBoardHandler(boards *logic.BoardService, posts *logic.PostService, categoryLimit int) *BoardHandler {
	return &BoardHandler{boards: boards, posts: posts, categoryLimit: categoryLimit}
}

// ListHandler returns one page of a category
//
//	@Summary	category page
//	@Tags		board
//	@Produce	application/json
//	@Param		category	query		string	true	"category slug"
//	@Param		page		query		int		true	"page, from 1"
//	@Success	200			{object}	common.Response{data=models.BoardPage}
//	@Router		/board [get]
func (h *BoardHandler) ListHandler(ctx *gin.Context) {
	p := new(models.ParamBoardList)
	if err := ctx.ShouldBindQuery(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	page, err := h.posts.ListByCategory(ctx.Request.Context(), p.Category, p.Page)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, page)
}

// CreateCategoryHandler
//
//	@Summary	create category
//	@Tags		board
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamCategoryCreate	true	"category"
//	@Success	201		{object}	common.Response{data=common.ResponseCategoryCreate}
//	@Router		/board [post]
func (h *BoardHandler) CreateCategoryHandler(ctx *gin.Context) {
	p := new(models.ParamCategoryCreate)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	category, err := h.boards.CreateCategory(ctx.Request.Context(), p)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseCreated(ctx, &common.ResponseCategoryCreate{ID: category.ID, Slug: category.Slug})
}

// CategoryListHandler
//
//	@Summary	categories with recent posts
//	@Tags		board
//	@Produce	application/json
//	@Param		limit	query		int	false	"at most 50"
//	@Success	200		{object}	common.Response{data=[]models.CategoryDTO}
//	@Router		/board/category [get]
func (h *BoardHandler) CategoryListHandler(ctx *gin.Context) {
	p := new(models.ParamCategoryList)
	if err := ctx.ShouldBindQuery(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}
	if p.Limit == 0 {
		p.Limit = h.categoryLimit
	}

	list, err := h.boards.ListCategories(ctx.Request.Context(), p.Limit)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, list)
}

// InfoHandler
//
//	@Summary	category info
//	@Tags		board
//	@Produce	application/json
//	@Param		category	query		string	true	"category slug"
//	@Success	200			{object}	common.Response{data=models.BoardCategory}
//	@Router		/board/info [get]
func (h *BoardHandler) InfoHandler(ctx *gin.Context) {
	p := new(models.ParamCategoryInfo)
	if err := ctx.ShouldBindQuery(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	category, err := h.boards.GetCategoryInfo(ctx.Request.Context(), p.Category)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, category)
}
