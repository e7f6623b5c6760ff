package dftrans

import (
	"context"
	"time"

	"github.com/fivetwenty-io/dftrans/internal/constants"
)

// DefaultBaseURL is the public origin of the DFTrans service.
const DefaultBaseURL = constants.DefaultBaseURL

// RoutesClient looks up bus routes ("linhas").
type RoutesClient interface {
	// Get returns the route with the given public number, e.g. "099.1".
	Get(ctx context.Context, number string) (*Route, error)
	// ListByStop returns the routes serving a stop. An empty slice is a valid result.
	ListByStop(ctx context.Context, stopCode string) ([]Route, error)
	// ListBetween returns the routes linking two references. An empty slice
	// means no direct route exists and an interchange is required.
	ListBetween(ctx context.Context, origin, destination ReferenceKey) ([]Route, error)
	// Find is an autocomplete-style substring search bounded by limit.
	Find(ctx context.Context, term string, limit int) ([]Route, error)
}

// StopsClient looks up boarding points ("paradas").
type StopsClient interface {
	Get(ctx context.Context, code string) (*Stop, error)
	ListGeo(ctx context.Context) (*FeatureCollection[Stop], error)
	ListGeoForRoute(ctx context.Context, routeSequential int64) (*FeatureCollection[Stop], error)
}

// SchedulesClient looks up departure timetables ("horários").
type SchedulesClient interface {
	GetForRoute(ctx context.Context, number string) (*Schedule, error)
}

// ItinerariesClient looks up route itineraries.
type ItinerariesClient interface {
	GetForRoute(ctx context.Context, number string) (*Itinerary, error)
}

// ReferencesClient searches origin/destination references.
type ReferencesClient interface {
	Find(ctx context.Context, term string, limit int) ([]Reference, error)
}

// StationsClient looks up terminals and metro stations.
type StationsClient interface {
	Get(ctx context.Context, sequential int64) (*Station, error)
	ListGeo(ctx context.Context) (*FeatureCollection[Station], error)
}

// VehiclesClient reads GPS positions.
type VehiclesClient interface {
	// RecentForRoute returns the most recently reported position of every
	// vehicle operating the route. Freshness is whatever the server reports.
	RecentForRoute(ctx context.Context, routeNumber string) (*FeatureCollection[VehiclePosition], error)
}

// RoutePathsClient reads route geometries ("percursos").
type RoutePathsClient interface {
	GetForRoute(ctx context.Context, routeSequential int64) (*FeatureCollection[RoutePath], error)
}

// IntegrationAreasClient lists fare-integration zones between two references.
type IntegrationAreasClient interface {
	ListBetween(ctx context.Context, origin, destination ReferenceKey) ([]IntegrationArea, error)
}

// NetworkClients provides access to the route and stop network.
type NetworkClients interface {
	Routes() RoutesClient
	Stops() StopsClient
	Stations() StationsClient
	RoutePaths() RoutePathsClient
}

// PlanningClients provides access to timetable and journey planning clients.
type PlanningClients interface {
	Schedules() SchedulesClient
	Itineraries() ItinerariesClient
	References() ReferencesClient
	IntegrationAreas() IntegrationAreasClient
}

// RealtimeClients provides access to live vehicle data.
type RealtimeClients interface {
	Vehicles() VehiclesClient
}

// Client is the full DFTrans API surface.
type Client interface {
	NetworkClients
	PlanningClients
	RealtimeClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dftrans.Client.
//
// The base URL is injected here rather than read from a global so tests can
// point a client at an httptest server. Per-request deadlines should be set
// through the context passed to each method; HTTPTimeout is an upper bound
// applied by the transport.
type Config struct {
	// BaseURL: origin of the service (e.g., "https://www.sistemas.dftrans.df.gov.br").
	// dftransclient.New trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string

	// HTTPTimeout: upper bound for a single request. Zero uses the default.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// RequestInterceptors run before each request is sent.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run after each response (or transport failure).
	ResponseInterceptors []ResponseInterceptor
}
