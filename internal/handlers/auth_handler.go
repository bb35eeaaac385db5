package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/auth"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
)

type AuthHandler struct {
	credentials *auth.CredentialService
	tokens      *auth.TokenService
}

func NewAuthHandler(credentials *auth.CredentialService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{credentials: credentials, tokens: tokens}
}

// --------- Requests ---------

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req, false) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		httperr.BadRequest(c, "email is required")
		return
	}

	user, err := h.credentials.Register(c.Request.Context(), email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Email: user.Email})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req, false) {
		return
	}

	user, err := h.credentials.Authenticate(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Email: user.Email})
}
