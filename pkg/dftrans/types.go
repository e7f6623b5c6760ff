package dftrans

import (
	"fmt"
	"strconv"
)

// Route represents a numbered bus line ("linha").
type Route struct {
	Sequential  int64      `json:"sequencial,omitempty"     yaml:"sequencial,omitempty"`
	Number      string     `json:"numero"                   yaml:"numero"                   validate:"required"`
	Description string     `json:"descricao"                yaml:"descricao"`
	Direction   string     `json:"sentido,omitempty"        yaml:"sentido,omitempty"`
	Fare        *Fare      `json:"faixaTarifaria,omitempty" yaml:"faixaTarifaria,omitempty"`
	Operators   []Operator `json:"operadoras,omitempty"     yaml:"operadoras,omitempty"     validate:"dive"`
}

// Fare represents the fare band of a route.
type Fare struct {
	Tariff      float64 `json:"tarifa"              yaml:"tarifa"              validate:"gte=0"`
	Description string  `json:"descricao,omitempty" yaml:"descricao,omitempty"`
}

// Operator represents a company operating a route.
type Operator struct {
	Sequential int64  `json:"sequencial,omitempty" yaml:"sequencial,omitempty"`
	Name       string `json:"nome"                 yaml:"nome"`
}

// Stop represents a boarding point identified by its DFTrans code.
type Stop struct {
	Sequential  int64   `json:"sequencialParada,omitempty" yaml:"sequencialParada,omitempty"`
	Code        string  `json:"codDftrans"                 yaml:"codDftrans"                 validate:"required"`
	Description string  `json:"descricao"                  yaml:"descricao"`
	Direction   string  `json:"sentido,omitempty"          yaml:"sentido,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"         yaml:"latitude,omitempty"         validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude,omitempty"        yaml:"longitude,omitempty"        validate:"gte=-180,lte=180"`
}

// Schedule represents the departure timetable of a route.
type Schedule struct {
	Route      string           `json:"linha,omitempty" yaml:"linha,omitempty"`
	Departures []DepartureGroup `json:"horarios"        yaml:"horarios"        validate:"required,dive"`
}

// DepartureGroup is the ordered list of departures for one weekday and shift.
type DepartureGroup struct {
	Weekday string   `json:"diaSemana" yaml:"diaSemana"`
	Shift   string   `json:"turno"     yaml:"turno"`
	Times   []string `json:"horarios"  yaml:"horarios"`
}

// Itinerary represents the path description of a route.
type Itinerary struct {
	Route       string    `json:"linha"              yaml:"linha"              validate:"required"`
	Direction   string    `json:"sentido,omitempty"  yaml:"sentido,omitempty"`
	Origin      string    `json:"origem,omitempty"   yaml:"origem,omitempty"`
	Destination string    `json:"destino,omitempty"  yaml:"destino,omitempty"`
	Length      float64   `json:"extensao,omitempty" yaml:"extensao,omitempty" validate:"gte=0"`
	Segments    []Segment `json:"trechos,omitempty"  yaml:"trechos,omitempty"  validate:"dive"`
}

// Segment is one step of an itinerary.
type Segment struct {
	Sequence    int    `json:"sequencia" yaml:"sequencia" validate:"gte=0"`
	Description string `json:"descricao" yaml:"descricao"`
}

// Reference represents a searchable origin or destination.
type Reference struct {
	Sequential  int64  `json:"sequencialRef" yaml:"sequencialRef" validate:"required"`
	Description string `json:"descricao"     yaml:"descricao"`
	Type        string `json:"tipo"          yaml:"tipo"`
}

// Key returns the pair used by the between-references endpoints.
func (r Reference) Key() ReferenceKey {
	return ReferenceKey{Type: r.Type, Sequential: r.Sequential}
}

// ReferenceKey identifies an origin or destination by type code and sequential id.
type ReferenceKey struct {
	Type       string
	Sequential int64
}

// String renders the key as "type/sequential".
func (k ReferenceKey) String() string {
	return k.Type + "/" + strconv.FormatInt(k.Sequential, 10)
}

// Validate checks the key before it is placed in a request path.
func (k ReferenceKey) Validate() error {
	if k.Type == "" {
		return fmt.Errorf("%w: reference type is required", ErrInvalidArgument)
	}

	if k.Sequential <= 0 {
		return fmt.Errorf("%w: reference sequential must be positive, got %d", ErrInvalidArgument, k.Sequential)
	}

	return nil
}

// Station represents a terminal or metro station.
type Station struct {
	Sequential  int64       `json:"seqEstacao"          yaml:"seqEstacao"          validate:"required"`
	Description string      `json:"descricao"           yaml:"descricao"`
	Type        StationType `json:"tipo"                yaml:"tipo"`
	Latitude    float64     `json:"latitude,omitempty"  yaml:"latitude,omitempty"  validate:"gte=-90,lte=90"`
	Longitude   float64     `json:"longitude,omitempty" yaml:"longitude,omitempty" validate:"gte=-180,lte=180"`
}

// VehiclePosition holds the properties of a GPS feature.
type VehiclePosition struct {
	Vehicle  Identifier `json:"veiculo"             yaml:"veiculo"`
	Operator string     `json:"operadora,omitempty" yaml:"operadora,omitempty"`
	Route    string     `json:"linha,omitempty"     yaml:"linha,omitempty"`
	Speed    float64    `json:"velocidade"          yaml:"velocidade"          validate:"gte=0"`
	Reported Timestamp  `json:"timestamp"           yaml:"timestamp"`
}

// RoutePath holds the properties of a route geometry feature.
type RoutePath struct {
	Route     string `json:"linha"             yaml:"linha"`
	Direction string `json:"sentido,omitempty" yaml:"sentido,omitempty"`
}

// IntegrationArea represents a zone where transfers need no extra fare.
type IntegrationArea struct {
	Sequential  int64  `json:"sequencial" yaml:"sequencial" validate:"required"`
	Description string `json:"descricao"  yaml:"descricao"`
}
