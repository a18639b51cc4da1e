package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techtool/opd-api/pkg/httputil"
)

type TimeoutConfig struct {
	Duration time.Duration
}

// DefaultTimeoutConfig leaves headroom for a full model fallback chain
// plus audio transcription before the request is cut off.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Duration: 60 * time.Second,
	}
}

// timeoutWriter serializes access to the response. Once the deadline path
// has written the 504, handler writes arriving late are dropped; once the
// handler has started writing, the deadline path stands down.
type timeoutWriter struct {
	gin.ResponseWriter
	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(b), nil
	}
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Timeout bounds the total request duration.
func Timeout(config TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), config.Duration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		tw := &timeoutWriter{ResponseWriter: c.Writer}
		c.Writer = tw

		done := make(chan struct{})
		go func() {
			c.Next()
			close(done)
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			if ctx.Err() != context.DeadlineExceeded {
				return
			}
			tw.mu.Lock()
			defer tw.mu.Unlock()
			if tw.wroteHeader {
				return
			}
			tw.timedOut = true
			body, _ := json.Marshal(httputil.Response{
				Status: "error",
				Error: &httputil.Error{
					Code:    "timeout",
					Message: "request timed out",
				},
			})
			tw.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
			tw.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
			tw.ResponseWriter.Write(body)
		}
	}
}
