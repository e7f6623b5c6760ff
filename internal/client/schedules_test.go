package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

const scheduleBody = `{
	"horarios": [
		{"diaSemana": "SEGUNDA", "turno": "MANHÃ", "horarios": ["05:30", "06:00", "06:30"]},
		{"diaSemana": "SEGUNDA", "turno": "TARDE", "horarios": ["12:00", "13:00"]},
		{"diaSemana": "SÁBADO", "turno": "MANHÃ", "horarios": ["07:00"]}
	]
}`

func TestSchedulesClient_GetForRoute(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[string, *dftrans.Schedule]{
		{
			Name:         "grouped departures",
			Arg:          "0.110",
			ExpectedPath: "/horario/linha/numero/0.110",
			Body:         scheduleBody,
			Check: func(t *testing.T, schedule *dftrans.Schedule) {
				t.Helper()
				assert.Equal(t, "0.110", schedule.Route)
				require.Len(t, schedule.Departures, 3)
				assert.Equal(t, []string{"05:30", "06:00", "06:30"}, schedule.Departures[0].Times)
				assert.Len(t, schedule.Filter("SEGUNDA", ""), 2)
				assert.Len(t, schedule.Filter("", "MANHÃ"), 2)
			},
		},
		{
			Name:         "route without timetable",
			Arg:          "9.999",
			ExpectedPath: "/horario/linha/numero/9.999",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting schedule for route 9.999",
		},
		{
			Name:         "empty object",
			Arg:          "0.110",
			ExpectedPath: "/horario/linha/numero/0.110",
			Body:         `{}`,
			WantErr:      true,
			ErrMessage:   "Schedule.Departures",
		},
		{
			Name:         "no departures",
			Arg:          "0.110",
			ExpectedPath: "/horario/linha/numero/0.110",
			Body:         `{"horarios": []}`,
			Check: func(t *testing.T, schedule *dftrans.Schedule) {
				t.Helper()
				assert.Equal(t, "0.110", schedule.Route)
				assert.Empty(t, schedule.Departures)
			},
		},
		{
			Name:         "departures is not a list",
			Arg:          "0.110",
			ExpectedPath: "/horario/linha/numero/0.110",
			Body:         `{"horarios": "05:30"}`,
			WantErr:      true,
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*dftrans.Schedule, error) {
		return c.Schedules().GetForRoute
	})
}
