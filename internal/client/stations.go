package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// StationsClient implements dftrans.StationsClient.
type StationsClient struct {
	httpClient *http.Client
}

// NewStationsClient creates a new stations client.
func NewStationsClient(httpClient *http.Client) *StationsClient {
	return &StationsClient{
		httpClient: httpClient,
	}
}

// Get implements dftrans.StationsClient.Get.
func (c *StationsClient) Get(ctx context.Context, sequential int64) (*dftrans.Station, error) {
	err := requirePositive("station sequential", sequential)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("estacao", formatInt(sequential))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting station %d: %w", sequential, err)
	}

	station, err := decodeObject[dftrans.Station](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing station %d: %w", sequential, err)
	}

	return station, nil
}

// ListGeo implements dftrans.StationsClient.ListGeo.
func (c *StationsClient) ListGeo(ctx context.Context) (*dftrans.FeatureCollection[dftrans.Station], error) {
	path := http.BuildPath("estacao", "geo", "estacoes")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing stations: %w", err)
	}

	stations, err := decodeFeatures[dftrans.Station](path, resp, pointGeometry)
	if err != nil {
		return nil, fmt.Errorf("parsing stations: %w", err)
	}

	return stations, nil
}
