package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTimeoutRouter(d time.Duration, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(TimeoutConfig{Duration: d}))
	r.GET("/slow", handler)
	return r
}

func TestTimeoutFastHandlerPassesThrough(t *testing.T) {
	r := newTimeoutRouter(time.Second, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestTimeoutSlowHandlerGets504(t *testing.T) {
	release := make(chan struct{})
	finished := make(chan struct{})
	r := newTimeoutRouter(20*time.Millisecond, func(c *gin.Context) {
		<-release
		c.JSON(http.StatusOK, gin.H{"ok": true})
		close(finished)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "timeout")

	// The handler finishing after the 504 must not touch the response.
	body := w.Body.String()
	close(release)
	<-finished
	assert.Equal(t, body, w.Body.String())
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}
