// Package dftransclient provides the main entry point for creating DFTrans API clients
package dftransclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/dftrans/internal/client"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// New creates a new DFTrans API client.
//
// The base URL is normalized: a trailing slash is trimmed and "https://" is
// added when no scheme is present. config itself is not modified.
func New(config *dftrans.Config) (dftrans.Client, error) {
	if config == nil {
		return nil, dftrans.ErrConfigRequired
	}

	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, dftrans.ErrBaseURLRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	// Use the internal client implementation
	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NormalizeBaseURL trims surrounding whitespace and trailing slashes and adds
// "https://" when the URL has no scheme.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithEndpoint creates a new client for the given base URL.
func NewWithEndpoint(endpoint string) (dftrans.Client, error) {
	return New(&dftrans.Config{
		BaseURL: endpoint,
	})
}

// NewDefault creates a new client for the public DFTrans service.
func NewDefault() (dftrans.Client, error) {
	return NewWithEndpoint(dftrans.DefaultBaseURL)
}
