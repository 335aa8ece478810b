// Package adapter implements the HTTP client side of the vaultkeep API.
// It is used by cmd/vaultcheck to query the server without pulling in any
// server internals.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/olekhv/vaultkeep/internal/logger"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL, and installs the bearer token on
// every outgoing request.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, token string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(token)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// RevisionDate fetches the server-side vault revision in epoch milliseconds.
func (a *httpServerAdapter) RevisionDate(ctx context.Context) (int64, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/accounts/revision-date")
	if err != nil {
		a.logger.Err(err).Str("func", "*httpServerAdapter.RevisionDate").Msg("request failed")
		return 0, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return 0, ErrUnauthorized
	case resp.StatusCode() != http.StatusOK:
		return 0, fmt.Errorf("%w: http %d", ErrServerUnavailable, resp.StatusCode())
	}

	revision, err := strconv.ParseInt(strings.TrimSpace(string(resp.Body())), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected revision date body: %w", err)
	}

	return revision, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
