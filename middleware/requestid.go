package middleware

import (
	"cboard/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with a snowflake id, keeping one supplied
// by an upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > 64 {
			rid = strconv.FormatInt(utils.GenSnowflakeID(), 10)
		}
		ctx.Set("request_id", rid)
		ctx.Writer.Header().Set(HeaderRequestID, rid)
		ctx.Next()
	}
}
