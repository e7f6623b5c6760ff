package dftrans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationType_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Terminal BRT", StationTypeBRT.Label())
	assert.Equal(t, "Estação de Metrô", StationTypeMetro.Label())
	assert.Equal(t, "Terminal Rodoviário", StationTypeBusDepot.Label())
	assert.Equal(t, "Terminal", StationType("X").Label())
	assert.Equal(t, "Terminal", StationType("").Label())
}

func TestGroupStationsByType(t *testing.T) {
	t.Parallel()

	stations := &FeatureCollection[Station]{
		Features: []Feature[Station]{
			{Properties: Station{Type: StationTypeBRT}},
			{Properties: Station{Type: StationTypeMetro}},
			{Properties: Station{Type: StationTypeMetro}},
			{Properties: Station{}},
		},
	}

	assert.Equal(t, map[string]int{"B": 1, "M": 2, "Outro": 1}, GroupStationsByType(stations))
	assert.Empty(t, GroupStationsByType(nil))
}

func TestReferenceKey(t *testing.T) {
	t.Parallel()

	key := Reference{Sequential: 12, Type: "R", Description: "RODOVIÁRIA"}.Key()

	assert.Equal(t, "R/12", key.String())
	assert.NoError(t, key.Validate())
	assert.ErrorIs(t, ReferenceKey{Sequential: 12}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, ReferenceKey{Type: "R"}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, ReferenceKey{Type: "R", Sequential: -3}.Validate(), ErrInvalidArgument)
}
