package dftrans

import "github.com/fivetwenty-io/dftrans/internal/constants"

// StationType is the single-letter station classification.
type StationType string

// Known station types.
const (
	StationTypeBRT      StationType = constants.StationTypeBRT
	StationTypeMetro    StationType = constants.StationTypeMetro
	StationTypeBusDepot StationType = constants.StationTypeBusDepot
)

// unknownStationGroup is the group-by key for stations without a type.
const unknownStationGroup = "Outro"

// Label returns the human-readable name of the station type.
func (t StationType) Label() string {
	switch t {
	case StationTypeBRT:
		return "Terminal BRT"
	case StationTypeMetro:
		return "Estação de Metrô"
	case StationTypeBusDepot:
		return "Terminal Rodoviário"
	default:
		return "Terminal"
	}
}

// GroupStationsByType counts station features per type code.
// Features without a type are counted under "Outro".
func GroupStationsByType(stations *FeatureCollection[Station]) map[string]int {
	counts := make(map[string]int)
	if stations == nil {
		return counts
	}

	for _, feature := range stations.Features {
		key := string(feature.Properties.Type)
		if key == "" {
			key = unknownStationGroup
		}

		counts[key]++
	}

	return counts
}
