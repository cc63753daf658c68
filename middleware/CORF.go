package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORF answers cross-origin requests from frontendPath. "*" echoes the
// caller's Origin since credentialed requests may not use a wildcard.
func CORF(frontendPath string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := frontendPath
		if origin == "*" {
			if reqOrigin := ctx.GetHeader("Origin"); reqOrigin != "" {
				origin = reqOrigin
				ctx.Writer.Header().Add("Vary", "Origin")
			}
		}

		ctx.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		ctx.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
