package middleware

import (
	common "cboard/controller/Common"
	cboard "cboard/errors"
	"cboard/internal/utils"
	"cboard/logger"
	"cboard/models"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	ContextIdentityKey = "identity"
	ContextClaimsKey   = "session_claims"
)

// RevocationChecker reports whether a token id was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Session attaches the identity of a valid session token to the context.
// Requests without a token pass through anonymously; a token that does
// not verify is rejected with 403. checker may be nil.
func Session(tokens *utils.TokenManager, checker RevocationChecker, cookieName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr := readToken(ctx, cookieName)
		if tokenStr == "" {
			ctx.Next()
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, cboard.ErrExpiredToken) {
				common.ResponseError(ctx, common.CodeExpiredToken)
			} else {
				common.ResponseError(ctx, common.CodeInvalidToken)
			}
			ctx.Abort()
			return
		}

		if checker != nil {
			revoked, err := checker.IsRevoked(ctx.Request.Context(), claims.ID)
			if err != nil {
				logger.ErrorWithStack(err)
				common.ResponseError(ctx, common.CodeInternalErr)
				ctx.Abort()
				return
			}
			if revoked {
				common.ResponseError(ctx, common.CodeInvalidToken)
				ctx.Abort()
				return
			}
		}

		ctx.Set(ContextIdentityKey, claims.Identity())
		ctx.Set(ContextClaimsKey, claims)
		ctx.Next()
	}
}

// cookie first, then "Authorization: Bearer <token>"
func readToken(ctx *gin.Context, cookieName string) string {
	if cookie, err := ctx.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := ctx.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireLogin rejects anonymous requests with 401.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := GetIdentity(ctx); !ok {
			common.ResponseError(ctx, common.CodeNeedLogin)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func GetIdentity(ctx *gin.Context) (*models.AccountInfo, bool) {
	value, exists := ctx.Get(ContextIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*models.AccountInfo)
	return identity, ok && identity != nil
}

func GetClaims(ctx *gin.Context) *utils.SessionClaims {
	value, exists := ctx.Get(ContextClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*utils.SessionClaims)
	return claims
}
