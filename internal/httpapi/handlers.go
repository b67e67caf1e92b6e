package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authsrv"
)

type credentialsRequest struct {
	Login  string `json:"login" binding:"required"`
	Secret string `json:"secret"`
}

type externalRequest struct {
	FBToken string `json:"fb_token" binding:"required"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	res, err := s.service.Register(c.Request.Context(), req.Login, req.Secret)
	if err != nil {
		s.internalError(c, "signup", err)
		return
	}
	s.writeRegisterResult(c, res)
}

func (s *Server) handleSignin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	res, err := s.service.Authenticate(c.Request.Context(), req.Login, req.Secret)
	if err != nil {
		s.internalError(c, "signin", err)
		return
	}
	s.writeAuthResult(c, res)
}

func (s *Server) handleSignupExternal(c *gin.Context) {
	var req externalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	res, err := s.service.RegisterExternal(c.Request.Context(), req.FBToken)
	if err != nil {
		s.internalError(c, "fb/signup", err)
		return
	}
	if res.Status == authsrv.RegisterUnresolved {
		c.JSON(http.StatusNotFound, gin.H{"status": "NotFound"})
		return
	}
	s.writeRegisterResult(c, res)
}

func (s *Server) handleSigninExternal(c *gin.Context) {
	var req externalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	res, err := s.service.AuthenticateExternal(c.Request.Context(), req.FBToken)
	if err != nil {
		s.internalError(c, "fb/signin", err)
		return
	}
	if res.Status == authsrv.AuthUnresolved {
		c.JSON(http.StatusNotFound, gin.H{"status": "NotFound"})
		return
	}
	s.writeAuthResult(c, res)
}

func (s *Server) handleTestAuth(c *gin.Context) {
	identity := c.Param("identity")

	token, live, err := s.service.InspectToken(c.Request.Context(), identity)
	if err != nil {
		s.internalError(c, "test_auth", err)
		return
	}
	if !live {
		c.JSON(http.StatusNotFound, gin.H{"status": "NotFound"})
		return
	}

	s.logger.Debug("token inspected", "identity", identity, "token", tokenPreview(token))
	c.JSON(http.StatusOK, gin.H{"login": identity, "token": token})
}

func (s *Server) writeRegisterResult(c *gin.Context, res authsrv.RegisterResult) {
	switch res.Status {
	case authsrv.RegisterOK:
		c.JSON(http.StatusOK, gin.H{"status": "Ok"})
	case authsrv.RegisterUserExists:
		c.JSON(http.StatusOK, gin.H{"status": "UserAlreadyExists", "login": res.Identity})
	default:
		s.internalError(c, "register", errUnexpectedStatus)
	}
}

func (s *Server) writeAuthResult(c *gin.Context, res authsrv.AuthResult) {
	switch res.Status {
	case authsrv.AuthToken:
		c.JSON(http.StatusOK, gin.H{"status": "Token", "token": res.Token})
	case authsrv.AuthInvalidCredentials:
		c.JSON(http.StatusOK, gin.H{"status": "InvalidCredentials", "login": res.Identity})
	default:
		s.internalError(c, "authenticate", errUnexpectedStatus)
	}
}
