package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// IntegrationAreasClient implements dftrans.IntegrationAreasClient.
type IntegrationAreasClient struct {
	httpClient *http.Client
}

// NewIntegrationAreasClient creates a new integration areas client.
func NewIntegrationAreasClient(httpClient *http.Client) *IntegrationAreasClient {
	return &IntegrationAreasClient{
		httpClient: httpClient,
	}
}

// ListBetween implements dftrans.IntegrationAreasClient.ListBetween.
func (c *IntegrationAreasClient) ListBetween(ctx context.Context, origin, destination dftrans.ReferenceKey) ([]dftrans.IntegrationArea, error) {
	path, err := referencePath("areaintegracao", origin, destination)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing integration areas between %s and %s: %w", origin, destination, err)
	}

	areas, err := decodeList[dftrans.IntegrationArea](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing integration areas between %s and %s: %w", origin, destination, err)
	}

	return areas, nil
}
