package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/tlv300/whois-be/internal/model"
	"github.com/tlv300/whois-be/internal/repository"
	"github.com/tlv300/whois-be/internal/service"
)

// How long a best-effort history write may take once the response is decided.
const logWriteTimeout = 3 * time.Second

type WhoisHandler struct {
	whoisService service.IWhoisService
	lookups      repository.ILookupRepository
	logger       *log.Logger
}

func NewWhoisHandler(s service.IWhoisService, lookups repository.ILookupRepository, l *log.Logger) *WhoisHandler {
	return &WhoisHandler{
		whoisService: s,
		lookups:      lookups,
		logger:       l,
	}
}

func (h *WhoisHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	req := parseLookupRequest(r)

	if err := validate.Struct(req); err != nil {
		status, body := service.Classify(&service.LookupError{
			Kind:    service.KindInvalidRequest,
			Message: LookupValidationError(err),
		})
		h.logger.Printf("WARN: rejected whois lookup: %s", body.Error)
		respondWithJson(w, status, body)
		return
	}

	result, err := h.whoisService.Lookup(r.Context(), req)
	if err != nil {
		h.logger.Printf("ERROR: whois lookup for %q (%s): %v", req.Domain, req.Type, err)
		status, body := service.Classify(err)
		h.logLookup(req, loggedStatus(err, status), false, nil)
		respondWithJson(w, status, body)
		return
	}

	h.logLookup(req, http.StatusOK, true, result.Registrar())
	respondWithJson(w, http.StatusOK, &model.DTOWhoisResponse{
		Domain: req.Domain,
		Type:   req.Type,
		Data:   result.Data(),
	})
}

// parseLookupRequest reads the JSON body, falling back to query parameters.
// Body decode is best-effort: a missing or malformed body is treated as
// absent, not as an error, so the validator produces the field messages.
func parseLookupRequest(r *http.Request) *model.DTOWhoisRequest {
	var req model.DTOWhoisRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	query := r.URL.Query()
	if req.Domain == "" {
		req.Domain = query.Get("domain")
	}
	if req.Type == "" {
		req.Type = query.Get("type")
	}

	req.Domain = strings.TrimSpace(req.Domain)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	return &req
}

// logLookup appends one history row per completed lookup. The write is
// best-effort: a sink failure is warned about and never alters the response.
func (h *WhoisHandler) logLookup(req *model.DTOWhoisRequest, status int, success bool, registrar *string) {
	ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
	defer cancel()

	entry := &model.LookupEntry{
		Domain:     req.Domain,
		InfoType:   req.Type,
		HTTPStatus: status,
		Success:    success,
		Registrar:  registrar,
	}
	if err := h.lookups.Create(ctx, entry); err != nil {
		h.logger.Printf("WARN: failed to record lookup for %q: %v", req.Domain, err)
	}
}

// History rows record the provider's own status for upstream errors, not the
// 502 the caller sees.
func loggedStatus(err error, responseStatus int) int {
	var lerr *service.LookupError
	if errors.As(err, &lerr) && lerr.Kind == service.KindUpstreamError {
		return lerr.ProviderStatus
	}
	return responseStatus
}
