package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tlv300/whois-be/internal/config"
	"github.com/tlv300/whois-be/internal/model"
)

const (
	// Provider error bodies are passed along truncated; successful payloads
	// are capped to guard against a misbehaving upstream.
	maxErrorDetailSize  = 300
	maxResponseBodySize = 10 * 1024 * 1024 // 10 MB
)

type IWhoisService interface {
	Lookup(ctx context.Context, req *model.DTOWhoisRequest) (*model.LookupResult, error)
}

type whoisService struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewWhoisService(cfg config.WhoisConfig) IWhoisService {
	// Create a custom transport with optimized settings
	transport := &http.Transport{
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &whoisService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Transport: transport,
		},
	}
}

// Lookup makes exactly one bounded call to the whois provider and normalizes
// the payload into the record shape the request asked for. Every failure it
// returns is either a classified *LookupError or a wrapped internal error
// that the handler surfaces as a generic 500.
func (s *whoisService) Lookup(ctx context.Context, req *model.DTOWhoisRequest) (*model.LookupResult, error) {
	if s.apiKey == "" {
		return nil, &LookupError{Kind: KindNotConfigured}
	}

	record, err := s.fetchRecord(ctx, req.Domain)
	if err != nil {
		return nil, err
	}

	if record.Empty() {
		return nil, &LookupError{Kind: KindNotFound}
	}

	if req.Type == model.InfoTypeContact {
		return &model.LookupResult{Contact: extractContactInfo(record)}, nil
	}
	return &model.LookupResult{Domain: extractDomainInfo(record)}, nil
}

func (s *whoisService) fetchRecord(ctx context.Context, domain string) (*model.WhoisRecord, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("domainName", domain)
	params.Set("outputFormat", "JSON")

	httpRequest, err := http.NewRequestWithContext(reqCtx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}

	httpResponse, err := s.httpClient.Do(httpRequest)
	// We check for context timeout error specifically
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &LookupError{Kind: KindUpstreamTimeout, Err: err}
		}
		return nil, fmt.Errorf("failed to reach whois provider: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		body, err := io.ReadAll(&io.LimitedReader{R: httpResponse.Body, N: maxErrorDetailSize})
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &LookupError{Kind: KindUpstreamTimeout, Err: err}
		}
		return nil, &LookupError{
			Kind:           KindUpstreamError,
			ProviderStatus: httpResponse.StatusCode,
			Details:        string(body),
		}
	}

	limited := &io.LimitedReader{R: httpResponse.Body, N: maxResponseBodySize}
	var payload model.WhoisAPIResponse
	if err := json.NewDecoder(limited).Decode(&payload); err != nil {
		// The deadline can also fire mid-body, after the provider has already
		// sent its headers. That is still an upstream timeout.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &LookupError{Kind: KindUpstreamTimeout, Err: err}
		}
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return payload.WhoisRecord, nil
}
