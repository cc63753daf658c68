package middleware

import (
	common "cboard/controller/Common"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
	ratelimit2 "go.uber.org/ratelimit"
)

// RateLimit rejects the request when the token bucket is empty.
//
// rate: fraction of capacity refilled per second, e.g. 0.1 refills 0.1 * capacity tokens a second
//
// capacity: bucket size
func RateLimit(rate float64, capacity int64) gin.HandlerFunc {
	bucket := ratelimit.NewBucketWithRate(rate*float64(capacity), capacity)
	return func(ctx *gin.Context) {
		if bucket.TakeAvailable(1) != 1 {
			common.ResponseError(ctx, common.CodeServerBusy)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// RateLimit2 spaces requests evenly at rps per second instead of rejecting them.
func RateLimit2(rps int) gin.HandlerFunc {
	if rps <= 0 {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	limiter := ratelimit2.New(rps)
	return func(ctx *gin.Context) {
		limiter.Take()
		ctx.Next()
	}
}
