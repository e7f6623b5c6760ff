package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

const (
	routeBody = `{"numero":"099.1","descricao":"RODOVIÁRIA / W3 SUL","sentido":"IDA","faixaTarifaria":{"tarifa":5.5}}`

	stopOriginBody      = `{"codDftrans":"3458","descricao":"W3 SUL QD 508","latitude":-15.81,"longitude":-47.91}`
	stopDestinationBody = `{"codDftrans":"5012","descricao":"RODOVIÁRIA","latitude":-15.79,"longitude":-47.88}`

	stopsGeoBody = `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"codDftrans":"3458","descricao":"W3 SUL QD 508"},
		 "geometry":{"type":"Point","coordinates":[-47.91,-15.81]}}]}`

	stationsGeoBody = `{"type":"FeatureCollection","features":[
		{"properties":{"seqEstacao":1,"descricao":"GAMA","tipo":"B"},"geometry":{"type":"Point","coordinates":[-48.06,-16.01]}},
		{"properties":{"seqEstacao":2,"descricao":"CENTRAL","tipo":"M"},"geometry":{"type":"Point","coordinates":[-47.88,-15.79]}},
		{"properties":{"seqEstacao":3,"descricao":"GALERIA","tipo":"M"},"geometry":{"type":"Point","coordinates":[-47.89,-15.79]}}]}`

	scheduleBody = `{"horarios":[
		{"diaSemana":"SEGUNDA","turno":"MANHÃ","horarios":["05:30","06:00","06:30"]},
		{"diaSemana":"SEGUNDA","turno":"TARDE","horarios":["13:00"]},
		{"diaSemana":"DOMINGO","turno":"MANHÃ","horarios":["08:00"]}]}`

	mixedCaseScheduleBody = `{"horarios":[
		{"diaSemana":"SEGUNDA","turno":"Manhã","horarios":["05:30","06:00"]},
		{"diaSemana":"SEGUNDA","turno":"Tarde","horarios":["13:00"]}]}`

	vehiclesBody = `{"type":"FeatureCollection","features":[
		{"properties":{"veiculo":301234,"operadora":"PIRACICABANA","linha":"099.1","velocidade":32.5,"timestamp":1727800000000},
		 "geometry":{"type":"Point","coordinates":[-47.9,-15.8]}}]}`
)

// newFakeService serves fixed bodies by escaped path and 404 for anything else.
func newFakeService(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, ok := bodies[request.URL.EscapedPath()]
		if !ok {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// executeCommand runs cmd under a root carrying the global flags.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	root := &cobra.Command{Use: "dftrans", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("api", "", "")
	root.PersistentFlags().String("output", "", "")
	root.PersistentFlags().Bool("verbose", false, "")
	root.PersistentFlags().Duration("timeout", 0, "")
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestRoutesGet_JSON(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/linha/numero/099.1": routeBody})

	stdout, _, err := executeCommand(t, NewRoutesCommand(), "routes", "get", "099.1", "--api", server.URL, "--output", "json")
	require.NoError(t, err)

	var route dftrans.Route
	require.NoError(t, json.Unmarshal([]byte(stdout), &route))
	assert.Equal(t, "RODOVIÁRIA / W3 SUL", route.Description)
	require.NotNil(t, route.Fare)
	assert.InDelta(t, 5.5, route.Fare.Tariff, 0.001)
}

func TestRoutesGet_Table(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/linha/numero/099.1": routeBody})

	stdout, _, err := executeCommand(t, NewRoutesCommand(), "routes", "get", "099.1", "--api", server.URL, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RODOVIÁRIA / W3 SUL")
	assert.Contains(t, stdout, "R$ 5.50")
}

func TestRoutesGet_NotFound(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, nil)

	_, _, err := executeCommand(t, NewRoutesCommand(), "routes", "get", "INVALID999", "--api", server.URL, "--output", "json")
	require.Error(t, err)
	assert.True(t, dftrans.IsNotFound(err))
}

func TestRoutesGet_Verbose(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/linha/numero/099.1": routeBody})

	_, stderr, err := executeCommand(t, NewRoutesCommand(), "routes", "get", "099.1", "--api", server.URL, "--output", "json", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[DEBUG] HTTP Request")
	assert.Contains(t, stderr, "[DEBUG] HTTP Response")
}

func TestRoutesBetween_Empty(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/linha/R/12/P/3458": `[]`})

	stdout, _, err := executeCommand(t, NewRoutesCommand(), "routes", "between", "R", "12", "P", "3458", "--api", server.URL, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No routes found")
}

func TestRoutesFind_InvalidLimit(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, NewRoutesCommand(), "routes", "find", "W3", "--limit", "0")
	assert.ErrorIs(t, err, constants.ErrInvalidLimit)
}

func TestStopsGeo_Table(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/parada/geo/paradas": stopsGeoBody})

	stdout, _, err := executeCommand(t, NewStopsCommand(), "stops", "geo", "--api", server.URL, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "W3 SUL QD 508")
	assert.Contains(t, stdout, "-15.810000")
	assert.Contains(t, stdout, "1 stops")
}

func TestStationsGeo_GroupByType(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/estacao/geo/estacoes": stationsGeoBody})

	stdout, _, err := executeCommand(t, NewStationsCommand(), "stations", "geo", "--group-by-type", "--api", server.URL, "--output", "json")
	require.NoError(t, err)

	var counts []StationTypeCount
	require.NoError(t, json.Unmarshal([]byte(stdout), &counts))
	assert.Equal(t, []StationTypeCount{
		{Type: "B", Label: "Terminal BRT", Count: 1},
		{Type: "M", Label: "Estação de Metrô", Count: 2},
	}, counts)
}

func TestSchedules_FilterDayAndShift(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/horario/linha/numero/099.1": scheduleBody})

	stdout, _, err := executeCommand(t, NewSchedulesCommand(),
		"schedules", "099.1", "--day", "segunda", "--shift", "manhã", "--api", server.URL, "--output", "json")
	require.NoError(t, err)

	var schedule dftrans.Schedule
	require.NoError(t, json.Unmarshal([]byte(stdout), &schedule))
	assert.Equal(t, "099.1", schedule.Route)
	require.Len(t, schedule.Departures, 1)
	assert.Equal(t, []string{"05:30", "06:00", "06:30"}, schedule.Departures[0].Times)
}

func TestSchedules_MixedCaseShiftLabels(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/horario/linha/numero/0.110": mixedCaseScheduleBody})

	for _, shift := range []string{"Manhã", "MANHÃ"} {
		stdout, _, err := executeCommand(t, NewSchedulesCommand(),
			"schedules", "0.110", "--day", "SEGUNDA", "--shift", shift, "--api", server.URL, "--output", "json")
		require.NoError(t, err, shift)

		var schedule dftrans.Schedule
		require.NoError(t, json.Unmarshal([]byte(stdout), &schedule), shift)
		require.Len(t, schedule.Departures, 1, shift)
		assert.Equal(t, "Manhã", schedule.Departures[0].Shift)
		assert.Equal(t, []string{"05:30", "06:00"}, schedule.Departures[0].Times)
	}
}

func TestReferences_TableShowsKind(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{
		"/referencia/find/W3/10": `[{"sequencialRef":12,"descricao":"W3 SUL","tipo":"R"},{"sequencialRef":3458,"descricao":"W3 SUL QD 508","tipo":"P"}]`,
	})

	stdout, _, err := executeCommand(t, NewReferencesCommand(), "references", "W3", "--api", server.URL, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Referência")
	assert.Contains(t, stdout, "Parada")
	assert.Contains(t, stdout, "3458")
}

func TestVehiclesRecent_YAML(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/gps/linha/099.1/geo/recent": vehiclesBody})

	stdout, _, err := executeCommand(t, NewVehiclesCommand(), "vehicles", "recent", "099.1", "--api", server.URL, "--output", "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "FeatureCollection", decoded["type"])
	assert.Contains(t, stdout, "veiculo: \"301234\"")
	assert.Contains(t, stdout, "2024-10-01T16:26:40Z")
}

func TestPlan_DirectRoute(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{
		"/parada/cod/3458":             stopOriginBody,
		"/parada/cod/5012":             stopDestinationBody,
		"/linha/parada/codigo/3458":    `[{"numero":"0.110","descricao":"W3"},{"numero":"099.1","descricao":"RODOVIÁRIA / W3 SUL"}]`,
		"/linha/parada/codigo/5012":    `[{"numero":"099.1","descricao":"RODOVIÁRIA / W3 SUL"}]`,
		"/horario/linha/numero/099.1": scheduleBody,
	})

	stdout, _, err := executeCommand(t, NewPlanCommand(), "plan", "3458", "5012", "--api", server.URL, "--output", "json")
	require.NoError(t, err)

	var plan PlanOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &plan))
	assert.Equal(t, "W3 SUL QD 508", plan.Origin.Description)
	assert.False(t, plan.NeedsIntegration)
	require.Len(t, plan.DirectRoutes, 1)
	assert.Equal(t, "099.1", plan.DirectRoutes[0].Number)
	assert.Equal(t, "099.1", plan.ScheduleRoute)
	assert.Empty(t, plan.ScheduleError)
}

func TestPlan_NeedsIntegration(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{
		"/parada/cod/3458":          stopOriginBody,
		"/parada/cod/5012":          stopDestinationBody,
		"/linha/parada/codigo/3458": `[{"numero":"0.110","descricao":"W3"}]`,
		"/linha/parada/codigo/5012": `[]`,
	})

	stdout, _, err := executeCommand(t, NewPlanCommand(), "plan", "3458", "5012", "--api", server.URL, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "needs an integration")
}

func TestInvalidOutputFormat(t *testing.T) {
	t.Parallel()

	server := newFakeService(t, map[string]string{"/linha/numero/099.1": routeBody})

	_, _, err := executeCommand(t, NewRoutesCommand(), "routes", "get", "099.1", "--api", server.URL, "--output", "xml")
	assert.ErrorIs(t, err, constants.ErrInvalidOutputType)
}

func TestVersion_JSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, NewVersionCommand("1.2.3", "abc123", "2024-10-01"), "version", "--output", "json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
}
