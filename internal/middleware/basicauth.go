package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/techtool/opd-api/pkg/httputil"
)

type BasicAuthConfig struct {
	Username string
	// Password is either a plaintext secret or a bcrypt hash
	// ($2a$/$2b$/$2y$ prefix).
	Password  string
	SkipPaths []string
}

// BasicAuth guards every route except SkipPaths. When no credentials are
// configured the middleware is a no-op so local development works without
// secrets.
func BasicAuth(config BasicAuthConfig) gin.HandlerFunc {
	enabled := config.Username != "" && config.Password != ""
	hashed := strings.HasPrefix(config.Password, "$2a$") ||
		strings.HasPrefix(config.Password, "$2b$") ||
		strings.HasPrefix(config.Password, "$2y$")

	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok || !credentialsMatch(config, hashed, user, pass) {
			c.Header("WWW-Authenticate", `Basic realm="OPD"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.Response{
				Status: "error",
				Error: &httputil.Error{
					Code:    "unauthorized",
					Message: "invalid credentials",
				},
			})
			return
		}
		c.Next()
	}
}

func credentialsMatch(config BasicAuthConfig, hashed bool, user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(config.Username)) == 1

	var passOK bool
	if hashed {
		passOK = bcrypt.CompareHashAndPassword([]byte(config.Password), []byte(pass)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(config.Password)) == 1
	}
	return userOK && passOK
}
