package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/tlv300/whois-be/internal/model"
	"github.com/tlv300/whois-be/internal/repository"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// HistoryHandler serves the recorded lookup history to authenticated admins.
type HistoryHandler struct {
	lookups repository.ILookupRepository
	logger  *log.Logger
}

func NewHistoryHandler(lookups repository.ILookupRepository, l *log.Logger) *HistoryHandler {
	return &HistoryHandler{
		lookups: lookups,
		logger:  l,
	}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid 'limit'")
			return
		}
		if n > maxHistoryLimit {
			n = maxHistoryLimit
		}
		limit = n
	}

	entries, err := h.lookups.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Printf("ERROR: listing lookup history: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list lookup history")
		return
	}
	if entries == nil {
		entries = []*model.LookupEntry{}
	}

	respondWithJson(w, http.StatusOK, model.DTOLookupHistoryResponse{Lookups: entries})
}
