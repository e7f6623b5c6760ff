package dftrans

import (
	"strings"
	"time"
)

// weekdayPrefixes are the first three letters of the Portuguese weekday names
// the service uses in diaSemana ("SEGUNDA", "TERÇA-FEIRA", ...).
var weekdayPrefixes = map[time.Weekday]string{
	time.Sunday:    "DOM",
	time.Monday:    "SEG",
	time.Tuesday:   "TER",
	time.Wednesday: "QUA",
	time.Thursday:  "QUI",
	time.Friday:    "SEX",
	time.Saturday:  "SÁB",
}

// WeekdayPrefix returns the service prefix for a weekday.
func WeekdayPrefix(day time.Weekday) string {
	return weekdayPrefixes[day]
}

// Filter returns the departure groups whose weekday and shift match, ignoring
// case. The service mixes "MANHÃ" and "Manhã" style labels. An empty argument
// matches any value.
func (s *Schedule) Filter(weekday, shift string) []DepartureGroup {
	if s == nil {
		return nil
	}

	var matched []DepartureGroup

	for _, group := range s.Departures {
		if weekday != "" && !strings.EqualFold(group.Weekday, weekday) {
			continue
		}

		if shift != "" && !strings.EqualFold(group.Shift, shift) {
			continue
		}

		matched = append(matched, group)
	}

	return matched
}

// ForWeekday returns the departure groups that apply on day.
func (s *Schedule) ForWeekday(day time.Weekday) []DepartureGroup {
	return s.ForWeekdayPrefix(WeekdayPrefix(day))
}

// ForWeekdayPrefix returns the groups whose weekday contains prefix, ignoring case.
func (s *Schedule) ForWeekdayPrefix(prefix string) []DepartureGroup {
	if s == nil || prefix == "" {
		return nil
	}

	prefix = strings.ToUpper(prefix)

	var matched []DepartureGroup

	for _, group := range s.Departures {
		if strings.Contains(strings.ToUpper(group.Weekday), prefix) {
			matched = append(matched, group)
		}
	}

	return matched
}

// First returns at most n departure times of the group.
func (g DepartureGroup) First(n int) []string {
	if n < 0 || n >= len(g.Times) {
		return g.Times
	}

	return g.Times[:n]
}
