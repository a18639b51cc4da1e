package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/httputil"
)

// SizeLimitConfig caps request body sizes. Multipart uploads get their own
// larger cap since audio files dwarf JSON payloads.
type SizeLimitConfig struct {
	MaxBodyBytes   int64
	MaxUploadBytes int64
}

func DefaultSizeLimitConfig() SizeLimitConfig {
	return SizeLimitConfig{
		MaxBodyBytes:   3 << 20,
		MaxUploadBytes: 25 << 20,
	}
}

// SizeLimit rejects oversized requests up front and hard-caps the body
// reader for chunked requests that lie about Content-Length.
func SizeLimit(config SizeLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := config.MaxBodyBytes
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			limit = config.MaxUploadBytes
		}

		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httputil.Response{
				Status: "error",
				Error: &httputil.Error{
					Code:    string(apperrors.CodeValidation),
					Message: "request body too large",
				},
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
