package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// VehiclesClient implements dftrans.VehiclesClient.
type VehiclesClient struct {
	httpClient *http.Client
}

// NewVehiclesClient creates a new vehicles client.
func NewVehiclesClient(httpClient *http.Client) *VehiclesClient {
	return &VehiclesClient{
		httpClient: httpClient,
	}
}

// RecentForRoute implements dftrans.VehiclesClient.RecentForRoute.
func (c *VehiclesClient) RecentForRoute(ctx context.Context, routeNumber string) (*dftrans.FeatureCollection[dftrans.VehiclePosition], error) {
	err := requireText("route number", routeNumber)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("gps", "linha", routeNumber, "geo", "recent")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting vehicle positions for route %s: %w", routeNumber, err)
	}

	positions, err := decodeFeatures[dftrans.VehiclePosition](path, resp, pointGeometry)
	if err != nil {
		return nil, fmt.Errorf("parsing vehicle positions for route %s: %w", routeNumber, err)
	}

	return positions, nil
}
