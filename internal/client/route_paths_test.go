package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

func TestRoutePathsClient_GetForRoute(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[int64, *dftrans.FeatureCollection[dftrans.RoutePath]]{
		{
			Name:         "line string",
			Arg:          1523,
			ExpectedPath: "/percurso/linha/1523",
			Body: `{"type":"FeatureCollection","features":[
				{"properties":{"linha":"099.1","sentido":"IDA"},"geometry":{"type":"LineString","coordinates":[[-47.88,-15.79],[-47.89,-15.80],[-47.90,-15.81]]}}
			]}`,
			Check: func(t *testing.T, paths *dftrans.FeatureCollection[dftrans.RoutePath]) {
				t.Helper()
				require.Equal(t, 1, paths.Len())

				line, err := paths.Features[0].Geometry.Line()
				require.NoError(t, err)
				assert.Len(t, line, 3)
				assert.Equal(t, "IDA", paths.Features[0].Properties.Direction)
			},
		},
		{
			Name:         "multi line string",
			Arg:          1523,
			ExpectedPath: "/percurso/linha/1523",
			Body: `{"type":"FeatureCollection","features":[
				{"properties":{"linha":"099.1"},"geometry":{"type":"MultiLineString","coordinates":[[[-47.88,-15.79],[-47.89,-15.80]],[[-47.90,-15.81],[-47.91,-15.82]]]}}
			]}`,
			Check: func(t *testing.T, paths *dftrans.FeatureCollection[dftrans.RoutePath]) {
				t.Helper()

				line, err := paths.Features[0].Geometry.Line()
				require.NoError(t, err)
				assert.Len(t, line, 4)
			},
		},
		{
			Name:         "point instead of line",
			Arg:          1523,
			ExpectedPath: "/percurso/linha/1523",
			Body:         `{"type":"FeatureCollection","features":[{"properties":{},"geometry":{"type":"Point","coordinates":[-47.88,-15.79]}}]}`,
			WantErr:      true,
			ErrMessage:   "not a line",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, int64) (*dftrans.FeatureCollection[dftrans.RoutePath], error) {
		return c.RoutePaths().GetForRoute
	})
}
