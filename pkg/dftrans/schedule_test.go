package dftrans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSchedule() *Schedule {
	return &Schedule{
		Route: "0.110",
		Departures: []DepartureGroup{
			{Weekday: "SEGUNDA-FEIRA", Shift: "MANHÃ", Times: []string{"05:30", "06:00", "06:30", "07:00", "07:30", "08:00"}},
			{Weekday: "SEGUNDA-FEIRA", Shift: "TARDE", Times: []string{"13:00"}},
			{Weekday: "Sábado", Shift: "MANHÃ", Times: []string{"07:00"}},
			{Weekday: "DOMINGO", Shift: "NOITE", Times: []string{"20:00"}},
		},
	}
}

func TestWeekdayPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DOM", WeekdayPrefix(time.Sunday))
	assert.Equal(t, "SEG", WeekdayPrefix(time.Monday))
	assert.Equal(t, "SÁB", WeekdayPrefix(time.Saturday))
}

func TestSchedule_Filter(t *testing.T) {
	t.Parallel()

	schedule := testSchedule()

	assert.Len(t, schedule.Filter("", ""), 4)
	assert.Len(t, schedule.Filter("SEGUNDA-FEIRA", ""), 2)
	assert.Len(t, schedule.Filter("", "MANHÃ"), 2)
	assert.Len(t, schedule.Filter("SEGUNDA-FEIRA", "TARDE"), 1)
	assert.Empty(t, schedule.Filter("SEGUNDA", ""))

	assert.Len(t, schedule.Filter("segunda-feira", "Manhã"), 1)
	assert.Len(t, schedule.Filter("", "manhã"), 2)

	mixed := &Schedule{Departures: []DepartureGroup{
		{Weekday: "SEGUNDA", Shift: "Manhã", Times: []string{"05:30"}},
		{Weekday: "SEGUNDA", Shift: "Tarde", Times: []string{"13:00"}},
	}}
	assert.Len(t, mixed.Filter("SEGUNDA", "MANHÃ"), 1)
	assert.Len(t, mixed.Filter("SEGUNDA", "Manhã"), 1)

	var missing *Schedule
	assert.Nil(t, missing.Filter("", ""))
}

func TestSchedule_ForWeekday(t *testing.T) {
	t.Parallel()

	schedule := testSchedule()

	monday := schedule.ForWeekday(time.Monday)
	assert.Len(t, monday, 2)

	saturday := schedule.ForWeekday(time.Saturday)
	if assert.Len(t, saturday, 1) {
		assert.Equal(t, "Sábado", saturday[0].Weekday)
	}

	assert.Empty(t, schedule.ForWeekday(time.Wednesday))
	assert.Len(t, schedule.ForWeekdayPrefix("dom"), 1)
	assert.Nil(t, schedule.ForWeekdayPrefix(""))
}

func TestDepartureGroup_First(t *testing.T) {
	t.Parallel()

	group := testSchedule().Departures[0]

	assert.Equal(t, []string{"05:30", "06:00"}, group.First(2))
	assert.Len(t, group.First(100), 6)
	assert.Len(t, group.First(-1), 6)
	assert.Empty(t, group.First(0))
}
