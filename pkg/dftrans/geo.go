package dftrans

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fivetwenty-io/dftrans/internal/constants"
)

// Geometry types understood by the client.
const (
	GeometryPoint           = "Point"
	GeometryLineString      = "LineString"
	GeometryMultiLineString = "MultiLineString"
)

// FeatureCollection is the GeoJSON-style envelope returned by geo endpoints.
type FeatureCollection[P any] struct {
	Type     string       `json:"type"     yaml:"type"`
	Features []Feature[P] `json:"features" yaml:"features"`
}

// Len returns the number of features.
func (fc *FeatureCollection[P]) Len() int {
	if fc == nil {
		return 0
	}

	return len(fc.Features)
}

// Feature pairs typed properties with a geometry.
type Feature[P any] struct {
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	Properties P        `json:"properties"     yaml:"properties"`
	Geometry   Geometry `json:"geometry"       yaml:"geometry"`
}

// Geometry keeps coordinates raw until the caller asks for a point or a line.
type Geometry struct {
	Type        string          `json:"type"        yaml:"type"`
	Coordinates json.RawMessage `json:"coordinates" yaml:"-"`
}

// Point decodes a point geometry: exactly one [longitude, latitude] pair.
func (g Geometry) Point() (Position, error) {
	var raw []float64

	err := json.Unmarshal(g.Coordinates, &raw)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrNotPointGeometry, err)
	}

	return positionFrom(raw, ErrNotPointGeometry)
}

// Line decodes a line geometry into its ordered positions. Multi-line
// geometries are flattened in order.
func (g Geometry) Line() ([]Position, error) {
	var parts [][][]float64

	if g.Type == GeometryMultiLineString {
		err := json.Unmarshal(g.Coordinates, &parts)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotLineGeometry, err)
		}
	} else {
		var single [][]float64

		err := json.Unmarshal(g.Coordinates, &single)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotLineGeometry, err)
		}

		parts = [][][]float64{single}
	}

	var line []Position

	for _, part := range parts {
		for _, raw := range part {
			position, err := positionFrom(raw, ErrNotLineGeometry)
			if err != nil {
				return nil, err
			}

			line = append(line, position)
		}
	}

	return line, nil
}

// MarshalYAML renders coordinates as plain numbers.
func (g Geometry) MarshalYAML() (interface{}, error) {
	var coordinates interface{}

	if len(g.Coordinates) > 0 {
		err := json.Unmarshal(g.Coordinates, &coordinates)
		if err != nil {
			return nil, fmt.Errorf("decoding coordinates: %w", err)
		}
	}

	return map[string]interface{}{
		"type":        g.Type,
		"coordinates": coordinates,
	}, nil
}

// Position is a [longitude, latitude] pair in GeoJSON order.
type Position [2]float64

// Longitude returns the first coordinate.
func (p Position) Longitude() float64 {
	return p[0]
}

// Latitude returns the second coordinate.
func (p Position) Latitude() float64 {
	return p[1]
}

// Validate checks WGS 84 bounds.
func (p Position) Validate() error {
	if p.Longitude() < constants.MinLongitude || p.Longitude() > constants.MaxLongitude {
		return fmt.Errorf("%w: longitude %v", ErrCoordinateOutOfRange, p.Longitude())
	}

	if p.Latitude() < constants.MinLatitude || p.Latitude() > constants.MaxLatitude {
		return fmt.Errorf("%w: latitude %v", ErrCoordinateOutOfRange, p.Latitude())
	}

	return nil
}

func positionFrom(raw []float64, shapeErr error) (Position, error) {
	if len(raw) != 2 {
		return Position{}, fmt.Errorf("%w: expected 2 coordinates, got %d", shapeErr, len(raw))
	}

	position := Position{raw[0], raw[1]}

	err := position.Validate()
	if err != nil {
		return Position{}, err
	}

	return position, nil
}

// Identifier accepts either a JSON string or a JSON number.
type Identifier string

// UnmarshalJSON implements json.Unmarshaler.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string

		err := json.Unmarshal(data, &text)
		if err != nil {
			return fmt.Errorf("decoding identifier: %w", err)
		}

		*i = Identifier(text)

		return nil
	}

	var number json.Number

	err := json.Unmarshal(data, &number)
	if err != nil {
		return fmt.Errorf("decoding identifier: %w", err)
	}

	*i = Identifier(number.String())

	return nil
}

// Timestamp accepts epoch milliseconds, epoch seconds, or a textual date.
type Timestamp struct {
	time.Time
}

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
const epochMillisThreshold = 1e11

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string

		err := json.Unmarshal(data, &text)
		if err != nil {
			return fmt.Errorf("decoding timestamp: %w", err)
		}

		if text == "" {
			return nil
		}

		if epoch, err := strconv.ParseInt(text, 10, 64); err == nil {
			t.Time = fromEpoch(epoch)

			return nil
		}

		for _, layout := range timestampLayouts {
			parsed, err := time.Parse(layout, text)
			if err == nil {
				t.Time = parsed

				return nil
			}
		}

		return fmt.Errorf("%w: %q", ErrUnsupportedTimeFormat, text)
	}

	var epoch int64

	err := json.Unmarshal(data, &epoch)
	if err != nil {
		return fmt.Errorf("decoding timestamp: %w", err)
	}

	t.Time = fromEpoch(epoch)

	return nil
}

// MarshalJSON renders the timestamp as RFC 3339, or null when unset.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(time.RFC3339))
}

// MarshalYAML renders the timestamp as RFC 3339.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.Format(time.RFC3339), nil
}

func fromEpoch(epoch int64) time.Time {
	if epoch > epochMillisThreshold {
		return time.UnixMilli(epoch).UTC()
	}

	return time.Unix(epoch, 0).UTC()
}
