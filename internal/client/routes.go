package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// RoutesClient implements dftrans.RoutesClient.
type RoutesClient struct {
	httpClient *http.Client
}

// NewRoutesClient creates a new routes client.
func NewRoutesClient(httpClient *http.Client) *RoutesClient {
	return &RoutesClient{
		httpClient: httpClient,
	}
}

// Get implements dftrans.RoutesClient.Get.
func (c *RoutesClient) Get(ctx context.Context, number string) (*dftrans.Route, error) {
	err := requireText("route number", number)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("linha", "numero", number)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting route %s: %w", number, err)
	}

	route, err := decodeObject[dftrans.Route](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing route %s: %w", number, err)
	}

	return route, nil
}

// ListByStop implements dftrans.RoutesClient.ListByStop.
func (c *RoutesClient) ListByStop(ctx context.Context, stopCode string) ([]dftrans.Route, error) {
	err := requireText("stop code", stopCode)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("linha", "parada", "codigo", stopCode)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing routes for stop %s: %w", stopCode, err)
	}

	routes, err := decodeList[dftrans.Route](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing routes for stop %s: %w", stopCode, err)
	}

	return routes, nil
}

// ListBetween implements dftrans.RoutesClient.ListBetween.
func (c *RoutesClient) ListBetween(ctx context.Context, origin, destination dftrans.ReferenceKey) ([]dftrans.Route, error) {
	path, err := referencePath("linha", origin, destination)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing routes between %s and %s: %w", origin, destination, err)
	}

	routes, err := decodeList[dftrans.Route](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing routes between %s and %s: %w", origin, destination, err)
	}

	return routes, nil
}

// Find implements dftrans.RoutesClient.Find.
func (c *RoutesClient) Find(ctx context.Context, term string, limit int) ([]dftrans.Route, error) {
	err := requireText("search term", term)
	if err != nil {
		return nil, err
	}

	err = requirePositive("limit", int64(limit))
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("linha", "find", term, formatInt(int64(limit)))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("finding routes matching %q: %w", term, err)
	}

	routes, err := decodeList[dftrans.Route](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing routes matching %q: %w", term, err)
	}

	return routes, nil
}
