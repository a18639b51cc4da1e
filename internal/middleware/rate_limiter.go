package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/httputil"
)

type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
}

// RateLimiter applies a process-wide token bucket. Summarization requests
// fan out to a paid provider, so the bucket guards spend, not fairness.
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(config.Rate, config.Burst),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.Response{
				Status: "error",
				Error: &httputil.Error{
					Code:    string(apperrors.CodeRateLimited),
					Message: "rate limit exceeded",
				},
			})
			return
		}
		c.Next()
	}
}
