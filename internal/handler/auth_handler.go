package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tlv300/whois-be/internal/model"
	"github.com/tlv300/whois-be/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
	logger      *log.Logger
}

func NewAuthHandler(s service.IAuthService, l *log.Logger) *AuthHandler {
	return &AuthHandler{
		authService: s,
		logger:      l,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.DTOLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, ValidationError(err))
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, err.Error())
		} else {
			h.logger.Printf("Error logging in admin: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	respondWithJson(w, http.StatusOK, resp)
}
