package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// ItinerariesClient implements dftrans.ItinerariesClient.
type ItinerariesClient struct {
	httpClient *http.Client
}

// NewItinerariesClient creates a new itineraries client.
func NewItinerariesClient(httpClient *http.Client) *ItinerariesClient {
	return &ItinerariesClient{
		httpClient: httpClient,
	}
}

// GetForRoute implements dftrans.ItinerariesClient.GetForRoute.
func (c *ItinerariesClient) GetForRoute(ctx context.Context, number string) (*dftrans.Itinerary, error) {
	err := requireText("route number", number)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("itinerario", "linha", "numero", number)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting itinerary for route %s: %w", number, err)
	}

	itinerary, err := decodeObject[dftrans.Itinerary](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing itinerary for route %s: %w", number, err)
	}

	return itinerary, nil
}
