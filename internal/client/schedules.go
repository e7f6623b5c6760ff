package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// SchedulesClient implements dftrans.SchedulesClient.
type SchedulesClient struct {
	httpClient *http.Client
}

// NewSchedulesClient creates a new schedules client.
func NewSchedulesClient(httpClient *http.Client) *SchedulesClient {
	return &SchedulesClient{
		httpClient: httpClient,
	}
}

// GetForRoute implements dftrans.SchedulesClient.GetForRoute.
func (c *SchedulesClient) GetForRoute(ctx context.Context, number string) (*dftrans.Schedule, error) {
	err := requireText("route number", number)
	if err != nil {
		return nil, err
	}

	path := http.BuildPath("horario", "linha", "numero", number)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting schedule for route %s: %w", number, err)
	}

	schedule, err := decodeObject[dftrans.Schedule](path, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule for route %s: %w", number, err)
	}

	if schedule.Route == "" {
		schedule.Route = number
	}

	return schedule, nil
}
