package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/brewhr/brewhr-backend-go/internal/domain/auth"
	"github.com/brewhr/brewhr-backend-go/internal/handler/http/response"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged in", result)
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

// SSEToken issues a short-lived token for the EventSource handshake,
// which cannot carry an Authorization header.
func (h *authHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	token, expiresIn, err := h.jwtService.GenerateSSEToken()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}
