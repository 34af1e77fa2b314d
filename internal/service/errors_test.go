package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid request surfaces validator message verbatim",
			err:        &LookupError{Kind: KindInvalidRequest, Message: "Missing 'domain'"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing 'domain'",
		},
		{
			name:       "not configured",
			err:        &LookupError{Kind: KindNotConfigured},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server not configured with WHOIS_API_KEY",
		},
		{
			name:       "upstream error",
			err:        &LookupError{Kind: KindUpstreamError, ProviderStatus: 503, Details: "oops"},
			wantStatus: http.StatusBadGateway,
			wantError:  "Upstream whois service error",
		},
		{
			name:       "upstream timeout",
			err:        &LookupError{Kind: KindUpstreamTimeout},
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "Upstream whois request timed out",
		},
		{
			name:       "not found",
			err:        &LookupError{Kind: KindNotFound},
			wantStatus: http.StatusNotFound,
			wantError:  "Whois record not found for domain",
		},
		{
			name:       "unclassified error never leaks its text",
			err:        errors.New("pgx: connection refused at 10.0.0.3"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Unexpected server error",
		},
		{
			name:       "wrapped lookup error still classifies",
			err:        fmt.Errorf("lookup: %w", &LookupError{Kind: KindNotFound}),
			wantStatus: http.StatusNotFound,
			wantError:  "Whois record not found for domain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestClassifyUpstreamErrorCarriesProviderDetails(t *testing.T) {
	status, body := Classify(&LookupError{Kind: KindUpstreamError, ProviderStatus: 503, Details: "provider exploded"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, 503, body.Status)
	assert.Equal(t, "provider exploded", body.Details)
}
