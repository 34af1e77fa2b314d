package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tlv300/whois-be/internal/config"
	"github.com/tlv300/whois-be/internal/model"
)

const googlePayload = `{
	"WhoisRecord": {
		"domainName": "google.com",
		"registrarName": "MarkMonitor Inc.",
		"createdDate": "1997-09-15T00:00:00Z",
		"expiresDate": "2028-09-14T00:00:00Z",
		"estimatedDomainAge": 10550,
		"contactEmail": "abuse@markmonitor.com",
		"nameServers": {
			"hostNames": ["ns1.google.com", "ns2.google.com", "ns3.google.com", "ns4.google.com"]
		},
		"registrant": {"name": "Google LLC", "email": "dns-admin@google.com"},
		"technicalContact": {"name": "Tech Team"},
		"administrativeContact": {"name": "Admin Team"}
	}
}`

func newTestService(t *testing.T, handler http.HandlerFunc, timeout time.Duration) IWhoisService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewWhoisService(config.WhoisConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: timeout,
	})
}

func TestLookupNotConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(srv.Close)

	svc := NewWhoisService(config.WhoisConfig{APIKey: "", BaseURL: srv.URL, Timeout: time.Second})
	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindNotConfigured, lerr.Kind)
	assert.Equal(t, int32(0), calls.Load(), "no upstream call without a credential")
}

func TestLookupDomainInfo(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "google.com", r.URL.Query().Get("domainName"))
		assert.Equal(t, "JSON", r.URL.Query().Get("outputFormat"))

		w.Write([]byte(googlePayload))
	}, time.Second)

	result, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})
	require.NoError(t, err)
	require.NotNil(t, result.Domain)
	assert.Nil(t, result.Contact)

	assert.Equal(t, "MarkMonitor Inc.", result.Domain.Registrar)
	assert.Equal(t, "ns1.google.com, ns2.google.com, ns3.google.com, ns4.google.com", result.Domain.Hostnames)

	if registrar := result.Registrar(); assert.NotNil(t, registrar) {
		assert.Equal(t, "MarkMonitor Inc.", *registrar)
	}
}

func TestLookupContactInfo(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(googlePayload))
	}, time.Second)

	result, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeContact})
	require.NoError(t, err)
	require.NotNil(t, result.Contact)
	assert.Nil(t, result.Domain)

	assert.Equal(t, "Google LLC", result.Contact.RegistrantName)
	assert.Equal(t, "abuse@markmonitor.com", result.Contact.ContactEmail)
	assert.Nil(t, result.Registrar(), "contact lookups do not record a registrar")
}

func TestLookupRecordNotFound(t *testing.T) {
	for name, payload := range map[string]string{
		"record absent": `{}`,
		"record empty":  `{"WhoisRecord": {}}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}, time.Second)

			_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "nosuch.example", Type: model.InfoTypeDomain})

			var lerr *LookupError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, KindNotFound, lerr.Kind)
		})
	}
}

func TestLookupUpstreamError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("provider exploded"))
	}, time.Second)

	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindUpstreamError, lerr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, lerr.ProviderStatus)
	assert.Equal(t, "provider exploded", lerr.Details)
}

func TestLookupUpstreamErrorDetailsTruncated(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write(long)
	}, time.Second)

	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Len(t, lerr.Details, maxErrorDetailSize)
}

func TestLookupUpstreamTimeout(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}, 50*time.Millisecond)

	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindUpstreamTimeout, lerr.Kind)
}

func TestLookupUpstreamTimeoutMidBody(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"WhoisRecord": {"domainName":`))
		w.(http.Flusher).Flush()
		time.Sleep(500 * time.Millisecond)
	}, 50*time.Millisecond)

	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindUpstreamTimeout, lerr.Kind, "a deadline during the body read is still a timeout")
}

func TestLookupUpstreamTimeoutReadingErrorBody(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("provider "))
		w.(http.Flusher).Flush()
		time.Sleep(500 * time.Millisecond)
	}, 50*time.Millisecond)

	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindUpstreamTimeout, lerr.Kind)
}

func TestLookupMalformedProviderPayload(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}, time.Second)

	_, err := svc.Lookup(context.Background(), &model.DTOWhoisRequest{Domain: "google.com", Type: model.InfoTypeDomain})
	require.Error(t, err)

	var lerr *LookupError
	assert.False(t, errors.As(err, &lerr), "decode failures stay unclassified and surface as a generic 500")
}
