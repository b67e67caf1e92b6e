// Package httpapi exposes the service over HTTP. It owns request parsing,
// route dispatch, and the mapping from service result variants to status
// codes and JSON bodies. Every decision belongs to [authsrv.Service].
//
// Routes:
//
//	POST /signup               {"login":"...","secret":"..."}
//	POST /signin               {"login":"...","secret":"..."}
//	POST /fb/signup            {"fb_token":"..."}
//	POST /fb/signin            {"fb_token":"..."}
//	GET  /test_auth/:identity
//
// Failure logging at this boundary redacts plaintext secrets entirely and
// truncates token values.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"authsrv"
)

// errUnexpectedStatus guards the result-variant switches; hitting it means a
// new status was added to the service without a mapping here.
var errUnexpectedStatus = errors.New("unexpected result status")

// Server registers the HTTP routes for one [authsrv.Service].
type Server struct {
	service *authsrv.Service
	logger  *slog.Logger
}

// NewServer creates a [Server]. A nil logger selects [slog.Default].
func NewServer(service *authsrv.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{service: service, logger: logger}
}

// Routes registers every endpoint on engine.
func (s *Server) Routes(engine *gin.Engine) {
	engine.POST("/signup", s.handleSignup)
	engine.POST("/signin", s.handleSignin)
	engine.POST("/fb/signup", s.handleSignupExternal)
	engine.POST("/fb/signin", s.handleSigninExternal)
	engine.GET("/test_auth/:identity", s.handleTestAuth)
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.logger.Error("request failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
}

// tokenPreview truncates a token for logs; full values never appear there.
func tokenPreview(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "…"
}
