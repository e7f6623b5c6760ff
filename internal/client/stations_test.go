package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

func TestStationsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[int64, *dftrans.Station]{
		{
			Name:         "metro station",
			Arg:          21,
			ExpectedPath: "/estacao/21",
			Body:         `{"seqEstacao": 21, "descricao": "ESTAÇÃO CENTRAL", "tipo": "M", "latitude": -15.7942, "longitude": -47.8825}`,
			Check: func(t *testing.T, station *dftrans.Station) {
				t.Helper()
				assert.Equal(t, int64(21), station.Sequential)
				assert.Equal(t, dftrans.StationTypeMetro, station.Type)
				assert.Equal(t, "Estação de Metrô", station.Type.Label())
			},
		},
		{
			Name:         "empty object",
			Arg:          21,
			ExpectedPath: "/estacao/21",
			Body:         `{}`,
			WantErr:      true,
			ErrMessage:   "Station.Sequential",
		},
		{
			Name:         "unknown station",
			Arg:          99999,
			ExpectedPath: "/estacao/99999",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, int64) (*dftrans.Station, error) {
		return c.Stations().Get
	})
}

func TestStationsClient_ListGeo(t *testing.T) {
	t.Parallel()

	body := `{
		"type": "FeatureCollection",
		"features": [
			{"properties": {"seqEstacao": 1, "descricao": "TERMINAL ASA SUL", "tipo": "B"}, "geometry": {"type": "Point", "coordinates": [-47.91, -15.83]}},
			{"properties": {"seqEstacao": 2, "descricao": "GALERIA", "tipo": "M"}, "geometry": {"type": "Point", "coordinates": [-47.89, -15.79]}},
			{"properties": {"seqEstacao": 3, "descricao": "CEILÂNDIA", "tipo": "M"}, "geometry": {"type": "Point", "coordinates": [-48.10, -15.82]}},
			{"properties": {"seqEstacao": 4, "descricao": "SEM TIPO"}, "geometry": {"type": "Point", "coordinates": [-48.00, -15.80]}}
		]
	}`

	server := NewJSONServer(t, "/estacao/geo/estacoes", http.StatusOK, body)
	client := NewTestClient(t, server.URL)

	stations, err := client.Stations().ListGeo(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, stations.Len())

	assert.Equal(t, map[string]int{"B": 1, "M": 2, "Outro": 1}, dftrans.GroupStationsByType(stations))
}
