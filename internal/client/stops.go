package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// StopsClient implements dftrans.StopsClient.
type StopsClient struct {
	httpClient *http.Client
}

// NewStopsClient creates a new stops client.
func NewStopsClient(httpClient *http.Client) *StopsClient {
	return &StopsClient{
		httpClient: httpClient,
	}
}

// Get implements dftrans.StopsClient.Get.
func (c *StopsClient) Get(ctx context.Context, code string) (*dftrans.Stop, error) {
	err := requireText("stop code", code)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("parada", "cod", code)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting stop %s: %w", code, err)
	}

	stop, err := decodeObject[dftrans.Stop](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing stop %s: %w", code, err)
	}

	return stop, nil
}

// ListGeo implements dftrans.StopsClient.ListGeo.
func (c *StopsClient) ListGeo(ctx context.Context) (*dftrans.FeatureCollection[dftrans.Stop], error) {
	path := http.BuildPath("parada", "geo", "paradas")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing stops: %w", err)
	}

	stops, err := decodeFeatures[dftrans.Stop](path, resp, pointGeometry)
	if err != nil {
		return nil, fmt.Errorf("parsing stops: %w", err)
	}

	return stops, nil
}

// ListGeoForRoute implements dftrans.StopsClient.ListGeoForRoute.
func (c *StopsClient) ListGeoForRoute(ctx context.Context, routeSequential int64) (*dftrans.FeatureCollection[dftrans.Stop], error) {
	err := requirePositive("route sequential", routeSequential)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("parada", "geo", "paradas", "linha", formatInt(routeSequential))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing stops for route %d: %w", routeSequential, err)
	}

	stops, err := decodeFeatures[dftrans.Stop](path, resp, pointGeometry)
	if err != nil {
		return nil, fmt.Errorf("parsing stops for route %d: %w", routeSequential, err)
	}

	return stops, nil
}
