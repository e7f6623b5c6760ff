package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// Client implements the dftrans.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     dftrans.Logger

	// Resource clients
	routes           dftrans.RoutesClient
	stops            dftrans.StopsClient
	schedules        dftrans.SchedulesClient
	itineraries      dftrans.ItinerariesClient
	references       dftrans.ReferencesClient
	stations         dftrans.StationsClient
	vehicles         dftrans.VehiclesClient
	routePaths       dftrans.RoutePathsClient
	integrationAreas dftrans.IntegrationAreasClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dftrans.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if len(config.RequestInterceptors) > 0 {
		httpOpts = append(httpOpts, http.WithRequestInterceptors(config.RequestInterceptors...))
	}

	if len(config.ResponseInterceptors) > 0 {
		httpOpts = append(httpOpts, http.WithResponseInterceptors(config.ResponseInterceptors...))
	}

	return httpOpts
}

// New creates a new DFTrans API client.
func New(config *dftrans.Config) (*Client, error) {
	if config == nil {
		return nil, dftrans.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, dftrans.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.routes = NewRoutesClient(c.httpClient)
	c.stops = NewStopsClient(c.httpClient)
	c.schedules = NewSchedulesClient(c.httpClient)
	c.itineraries = NewItinerariesClient(c.httpClient)
	c.references = NewReferencesClient(c.httpClient)
	c.stations = NewStationsClient(c.httpClient)
	c.vehicles = NewVehiclesClient(c.httpClient)
	c.routePaths = NewRoutePathsClient(c.httpClient)
	c.integrationAreas = NewIntegrationAreasClient(c.httpClient)
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Routes implements dftrans.Client.Routes.
func (c *Client) Routes() dftrans.RoutesClient {
	return c.routes
}

// Stops implements dftrans.Client.Stops.
func (c *Client) Stops() dftrans.StopsClient {
	return c.stops
}

// Schedules implements dftrans.Client.Schedules.
func (c *Client) Schedules() dftrans.SchedulesClient {
	return c.schedules
}

// Itineraries implements dftrans.Client.Itineraries.
func (c *Client) Itineraries() dftrans.ItinerariesClient {
	return c.itineraries
}

// References implements dftrans.Client.References.
func (c *Client) References() dftrans.ReferencesClient {
	return c.references
}

// Stations implements dftrans.Client.Stations.
func (c *Client) Stations() dftrans.StationsClient {
	return c.stations
}

// Vehicles implements dftrans.Client.Vehicles.
func (c *Client) Vehicles() dftrans.VehiclesClient {
	return c.vehicles
}

// RoutePaths implements dftrans.Client.RoutePaths.
func (c *Client) RoutePaths() dftrans.RoutePathsClient {
	return c.routePaths
}

// IntegrationAreas implements dftrans.Client.IntegrationAreas.
func (c *Client) IntegrationAreas() dftrans.IntegrationAreasClient {
	return c.integrationAreas
}

// loggerAdapter adapts dftrans.Logger to http.Logger.
type loggerAdapter struct {
	logger dftrans.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

// requireText rejects blank identifiers before they reach a request path.
func requireText(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", dftrans.ErrInvalidArgument, name)
	}

	return nil
}

// requirePositive rejects zero and negative numeric arguments.
func requirePositive(name string, value int64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", dftrans.ErrInvalidArgument, name, value)
	}

	return nil
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// referencePath renders origin and destination keys as four path segments.
func referencePath(prefix string, origin, destination dftrans.ReferenceKey) (string, error) {
	err := origin.Validate()
	if err != nil {
		return "", fmt.Errorf("origin: %w", err)
	}

	err = destination.Validate()
	if err != nil {
		return "", fmt.Errorf("destination: %w", err)
	}

	return http.BuildPath(
		prefix,
		origin.Type, formatInt(origin.Sequential),
		destination.Type, formatInt(destination.Sequential),
	), nil
}
