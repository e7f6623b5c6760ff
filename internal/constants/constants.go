package constants

import "time"

// Service endpoint.
const (
	// DefaultBaseURL is the public origin of the DFTrans transit service.
	DefaultBaseURL = "https://www.sistemas.dftrans.df.gov.br"

	// DefaultUserAgent is sent when the caller does not configure one.
	DefaultUserAgent = "dftrans-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent lookups in composed operations.
	DefaultConcurrencyLimit = 4
)

// HTTP status ranges.
const (
	// HTTPStatusOK is the first status of the success range.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status past the success range.
	HTTPStatusMultipleChoices = 300
)

// Geographic bounds for WGS 84 coordinates.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Station type codes used by the service.
const (
	StationTypeBRT      = "B"
	StationTypeMetro    = "M"
	StationTypeBusDepot = "R"
)

// Reference type codes accepted by the between-references endpoints.
const (
	ReferenceTypeReference = "R"
	ReferenceTypeStop      = "P"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Vehicle monitor defaults.
const (
	// DefaultMonitorInterval is the pause between two vehicle position polls.
	DefaultMonitorInterval = 30 * time.Second

	// DefaultMonitorUpdates is the number of polls before the monitor stops.
	DefaultMonitorUpdates = 3

	// DefaultNATSSubject is the subject vehicle snapshots are published on.
	DefaultNATSSubject = "dftrans.vehicles"
)

// Snapshot encodings for NATS publishing.
const (
	EncodingJSON   = "json"
	EncodingGTFSRT = "gtfsrt"
)

// Search defaults.
const (
	// DefaultSearchLimit bounds autocomplete results when no limit is given.
	DefaultSearchLimit = 10

	// PreviewRows is how many rows list commands print before truncating.
	PreviewRows = 5
)

// CLI argument counts.
const (
	// ReferencePairArgumentCount is "originType originSeq destType destSeq".
	ReferencePairArgumentCount = 4

	// MinimumArgumentCount is used by KEY VALUE commands.
	MinimumArgumentCount = 2
)
