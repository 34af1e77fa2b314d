package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tlv300/whois-be/internal/model"
)

// FailureKind classifies everything that can go wrong during a lookup.
// Each kind maps to exactly one HTTP status and stable message; nothing
// outside this taxonomy ever reaches the caller.
type FailureKind int

const (
	KindInvalidRequest FailureKind = iota
	KindNotConfigured
	KindUpstreamError
	KindUpstreamTimeout
	KindNotFound
)

func (k FailureKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid request"
	case KindNotConfigured:
		return "server not configured"
	case KindUpstreamError:
		return "upstream error"
	case KindUpstreamTimeout:
		return "upstream timeout"
	case KindNotFound:
		return "record not found"
	default:
		return "unknown"
	}
}

// LookupError is a classified lookup failure. Message is only set for
// invalid requests (the validator's text is surfaced verbatim);
// ProviderStatus and Details are only set for upstream errors.
type LookupError struct {
	Kind           FailureKind
	Message        string
	ProviderStatus int
	Details        string
	Err            error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("whois lookup failed (%s): %v", e.Kind, e.Err)
	}
	if e.Kind == KindUpstreamError {
		return fmt.Sprintf("whois lookup failed (%s): provider returned %d", e.Kind, e.ProviderStatus)
	}
	return fmt.Sprintf("whois lookup failed (%s)", e.Kind)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Classify maps any lookup failure onto the response contract. Errors that
// are not a *LookupError come out as a generic 500 so raw internal error
// text never reaches the caller.
func Classify(err error) (int, model.DTOErrorResponse) {
	var lerr *LookupError
	if !errors.As(err, &lerr) {
		return http.StatusInternalServerError, model.DTOErrorResponse{Error: "Unexpected server error"}
	}

	switch lerr.Kind {
	case KindInvalidRequest:
		return http.StatusBadRequest, model.DTOErrorResponse{Error: lerr.Message}
	case KindNotConfigured:
		return http.StatusInternalServerError, model.DTOErrorResponse{Error: "Server not configured with WHOIS_API_KEY"}
	case KindUpstreamError:
		return http.StatusBadGateway, model.DTOErrorResponse{
			Error:   "Upstream whois service error",
			Status:  lerr.ProviderStatus,
			Details: lerr.Details,
		}
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout, model.DTOErrorResponse{Error: "Upstream whois request timed out"}
	case KindNotFound:
		return http.StatusNotFound, model.DTOErrorResponse{Error: "Whois record not found for domain"}
	default:
		return http.StatusInternalServerError, model.DTOErrorResponse{Error: "Unexpected server error"}
	}
}

// Auth-related errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has expired")
)
