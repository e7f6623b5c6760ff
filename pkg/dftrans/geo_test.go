package dftrans

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGeometry_Point(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		coordinates string
		wantErr     error
	}{
		{"valid", `[-47.88, -15.79]`, nil},
		{"three values", `[-47.88, -15.79, 1100]`, ErrNotPointGeometry},
		{"one value", `[-47.88]`, ErrNotPointGeometry},
		{"nested", `[[-47.88, -15.79]]`, ErrNotPointGeometry},
		{"latitude out of range", `[-47.88, -95]`, ErrCoordinateOutOfRange},
		{"longitude out of range", `[-190, -15.79]`, ErrCoordinateOutOfRange},
	}

	for _, testCase := range tests {
		testCase := testCase // per-iteration copy for pre-1.22 loop semantics

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			geometry := Geometry{Type: GeometryPoint, Coordinates: json.RawMessage(testCase.coordinates)}

			position, err := geometry.Point()
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, -47.88, position.Longitude(), 0.0001)
			assert.InDelta(t, -15.79, position.Latitude(), 0.0001)
		})
	}
}

func TestGeometry_Line(t *testing.T) {
	t.Parallel()

	single := Geometry{Type: GeometryLineString, Coordinates: json.RawMessage(`[[-47.1,-15.1],[-47.2,-15.2]]`)}

	line, err := single.Line()
	require.NoError(t, err)
	assert.Equal(t, []Position{{-47.1, -15.1}, {-47.2, -15.2}}, line)

	multi := Geometry{Type: GeometryMultiLineString, Coordinates: json.RawMessage(`[[[-47.1,-15.1]],[[-47.2,-15.2],[-47.3,-15.3]]]`)}

	line, err = multi.Line()
	require.NoError(t, err)
	assert.Len(t, line, 3)

	broken := Geometry{Type: GeometryLineString, Coordinates: json.RawMessage(`[[-47.1,-15.1,3]]`)}

	_, err = broken.Line()
	require.ErrorIs(t, err, ErrNotLineGeometry)
}

func TestGeometry_MarshalYAML(t *testing.T) {
	t.Parallel()

	feature := Feature[Stop]{
		Properties: Stop{Code: "3458"},
		Geometry:   Geometry{Type: GeometryPoint, Coordinates: json.RawMessage(`[-47.9,-15.8]`)},
	}

	out, err := yaml.Marshal(feature)
	require.NoError(t, err)
	assert.Contains(t, string(out), "coordinates:")
	assert.Contains(t, string(out), "- -47.9")
}

func TestIdentifier_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var values []Identifier

	err := json.Unmarshal([]byte(`["AB-12", 305412, null]`), &values)
	require.NoError(t, err)
	assert.Equal(t, []Identifier{"AB-12", "305412", ""}, values)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	expected := time.Date(2024, 10, 1, 16, 26, 40, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"epoch milliseconds", `1727800000000`, expected, false},
		{"epoch seconds", `1727800000`, expected, false},
		{"numeric string", `"1727800000000"`, expected, false},
		{"RFC 3339", `"2024-10-01T16:26:40Z"`, expected, false},
		{"local layout", `"2024-10-01 16:26:40"`, expected, false},
		{"brazilian layout", `"01/10/2024 16:26:40"`, expected, false},
		{"null", `null`, time.Time{}, false},
		{"empty string", `""`, time.Time{}, false},
		{"garbage", `"yesterday"`, time.Time{}, true},
	}

	for _, testCase := range tests {
		testCase := testCase // per-iteration copy for pre-1.22 loop semantics

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var stamp Timestamp

			err := json.Unmarshal([]byte(testCase.input), &stamp)
			if testCase.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedTimeFormat)

				return
			}

			require.NoError(t, err)
			assert.True(t, testCase.want.Equal(stamp.Time), "got %s", stamp.Time)
		})
	}
}

func TestTimestamp_Marshal(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = json.Marshal(Timestamp{Time: time.Date(2024, 10, 1, 16, 26, 40, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2024-10-01T16:26:40Z"`, string(out))
}

func TestFeatureCollection_Len(t *testing.T) {
	t.Parallel()

	var collection *FeatureCollection[Station]
	assert.Equal(t, 0, collection.Len())

	collection = &FeatureCollection[Station]{Features: make([]Feature[Station], 3)}
	assert.Equal(t, 3, collection.Len())
}
