package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// RoutePathsClient implements dftrans.RoutePathsClient.
type RoutePathsClient struct {
	httpClient *http.Client
}

// NewRoutePathsClient creates a new route paths client.
func NewRoutePathsClient(httpClient *http.Client) *RoutePathsClient {
	return &RoutePathsClient{
		httpClient: httpClient,
	}
}

// GetForRoute implements dftrans.RoutePathsClient.GetForRoute.
func (c *RoutePathsClient) GetForRoute(ctx context.Context, routeSequential int64) (*dftrans.FeatureCollection[dftrans.RoutePath], error) {
	err := requirePositive("route sequential", routeSequential)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("percurso", "linha", formatInt(routeSequential))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting path for route %d: %w", routeSequential, err)
	}

	paths, err := decodeFeatures[dftrans.RoutePath](path, resp, lineGeometry)
	if err != nil {
		return nil, fmt.Errorf("parsing path for route %d: %w", routeSequential, err)
	}

	return paths, nil
}
