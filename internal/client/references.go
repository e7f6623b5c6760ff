package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// ReferencesClient implements dftrans.ReferencesClient.
type ReferencesClient struct {
	httpClient *http.Client
}

// NewReferencesClient creates a new references client.
func NewReferencesClient(httpClient *http.Client) *ReferencesClient {
	return &ReferencesClient{
		httpClient: httpClient,
	}
}

// Find implements dftrans.ReferencesClient.Find.
func (c *ReferencesClient) Find(ctx context.Context, term string, limit int) ([]dftrans.Reference, error) {
	err := requireText("search term", term)
	if err != nil {
		return nil, err
	}

	err = requirePositive("limit", int64(limit))
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("referencia", "find", term, formatInt(int64(limit)))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("finding references matching %q: %w", term, err)
	}

	references, err := decodeList[dftrans.Reference](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing references matching %q: %w", term, err)
	}

	return references, nil
}
