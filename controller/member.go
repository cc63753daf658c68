package controller

import (
	common "cboard/controller/Common"
	"cboard/internal/utils"
	"cboard/logic"
	"cboard/middleware"
	"cboard/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc        *logic.AccountService
	cookieName string
	maxAge     int
	secure     bool
}

func NewMemberHandler(svc *logic.AccountService, cookieName string, maxAge int, secure bool) *MemberHandler {
	return &MemberHandler{svc: svc, cookieName: cookieName, maxAge: maxAge, secure: secure}
}

// JoinHandler registers an account
//
//	@Summary	register
//	@Tags		member
//	@Accept		application/json
//	@Produce	application/json
//	@Param		object	body		models.ParamJoin	true	"account"
//	@Success	200		{object}	common.Response
//	@Router		/member/join [post]
func (h *MemberHandler) JoinHandler(ctx *gin.Context) {
	p := new(models.ParamJoin)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	if err := h.svc.Register(ctx.Request.Context(), p); err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, nil)
}

// LoginHandler checks credentials and sets the session cookie
//
//	@Summary	login
//	@Tags		member
//	@Accept		application/json
//	@Produce	application/json
//	@Param		object	body		models.ParamLogin	true	"credentials"
//	@Success	200		{object}	common.Response{data=models.AccountInfo}
//	@Router		/member/login [post]
func (h *MemberHandler) LoginHandler(ctx *gin.Context) {
	p := new(models.ParamLogin)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	info, token, err := h.svc.Login(ctx.Request.Context(), p)
	if err != nil {
		responseErr(ctx, err)
		return
	}

	h.setCookie(ctx, token, h.maxAge)
	common.ResponseSuccess(ctx, info)
}

// LogoutHandler clears the session cookie
//
//	@Summary	logout
//	@Tags		member
//	@Produce	application/json
//	@Success	200	{object}	common.Response
//	@Router		/member/logout [post]
func (h *MemberHandler) LogoutHandler(ctx *gin.Context) {
	if err := h.svc.Logout(ctx.Request.Context(), middleware.GetClaims(ctx)); err != nil {
		responseErr(ctx, err)
		return
	}
	h.setCookie(ctx, "", -1)
	common.ResponseSuccess(ctx, nil)
}

// ProfileHandler returns the caller's profile
//
//	@Summary	profile
//	@Tags		member
//	@Produce	application/json
//	@Security	CookieAuth
//	@Success	200	{object}	common.Response{data=models.AccountInfo}
//	@Router		/member [get]
func (h *MemberHandler) ProfileHandler(ctx *gin.Context) {
	identity, _ := middleware.GetIdentity(ctx)
	info, err := h.svc.GetProfile(ctx.Request.Context(), identity.ID)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, info)
}

// ProfileUpdateHandler changes nickname and email. The session cookie is
// reissued so the token carries the new identity.
//
//	@Summary	update profile
//	@Tags		member
//	@Accept		application/json
//	@Produce	application/json
//	@Security	CookieAuth
//	@Param		object	body		models.ParamProfileUpdate	true	"profile"
//	@Success	200		{object}	common.Response{data=models.AccountInfo}
//	@Router		/member [put]
func (h *MemberHandler) ProfileUpdateHandler(ctx *gin.Context) {
	p := new(models.ParamProfileUpdate)
	if err := ctx.ShouldBindJSON(p); err != nil {
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, utils.ParseToValidationError(err))
		return
	}

	identity, _ := middleware.GetIdentity(ctx)
	info, err := h.svc.UpdateProfile(ctx.Request.Context(), identity.ID, p)
	if err != nil {
		responseErr(ctx, err)
		return
	}

	token, err := h.svc.IssueToken(info)
	if err != nil {
		responseErr(ctx, err)
		return
	}
	h.setCookie(ctx, token, h.maxAge)
	common.ResponseSuccess(ctx, info)
}

func (h *MemberHandler) setCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(h.cookieName, token, maxAge, "/", "", h.secure, true)
}
