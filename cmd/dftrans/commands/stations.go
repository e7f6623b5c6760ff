package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// StationTypeCount is one row of the stations group-by output.
type StationTypeCount struct {
	Type  string `json:"type"  yaml:"type"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// NewStationsCommand creates the stations command group.
func NewStationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stations",
		Aliases: []string{"station", "estacoes"},
		Short:   "Look up terminals and metro stations",
		Long:    "Look up DFTrans BRT terminals, metro stations and bus depots",
	}

	cmd.AddCommand(newStationsGetCommand())
	cmd.AddCommand(newStationsGeoCommand())

	return cmd
}

func newStationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get STATION_SEQ",
		Short: "Get station details",
		Long:  "Display the description, type and coordinates of a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequential, err := parseSequential(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			station, err := client.Stations().Get(cmd.Context(), sequential)
			if err != nil {
				return fmt.Errorf("failed to get station: %w", err)
			}

			return render(cmd, station, func(w io.Writer, station *dftrans.Station) error {
				table := newTable(w, "Property", "Value")
				_ = table.Append("Sequential", strconv.FormatInt(station.Sequential, 10))
				_ = table.Append("Description", station.Description)
				_ = table.Append("Type", station.Type.Label())
				_ = table.Append("Latitude", formatCoordinate(station.Latitude))
				_ = table.Append("Longitude", formatCoordinate(station.Longitude))

				return renderTable(table)
			})
		},
	}
}

func newStationsGeoCommand() *cobra.Command {
	var groupByType bool

	cmd := &cobra.Command{
		Use:   "geo",
		Short: "List all stations with coordinates",
		Long:  "List every station as a GeoJSON feature collection, or count them per type with --group-by-type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			stations, err := client.Stations().ListGeo(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list stations: %w", err)
			}

			if groupByType {
				return render(cmd, stationTypeCounts(stations), stationTypeCountsTable)
			}

			return render(cmd, stations, stationFeaturesTable)
		},
	}

	cmd.Flags().BoolVar(&groupByType, "group-by-type", false, "count stations per type instead of listing them")

	return cmd
}

func stationTypeCounts(stations *dftrans.FeatureCollection[dftrans.Station]) []StationTypeCount {
	groups := dftrans.GroupStationsByType(stations)

	counts := make([]StationTypeCount, 0, len(groups))
	for stationType, count := range groups {
		counts = append(counts, StationTypeCount{
			Type:  stationType,
			Label: dftrans.StationType(stationType).Label(),
			Count: count,
		})
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Type < counts[j].Type })

	return counts
}

func stationTypeCountsTable(w io.Writer, counts []StationTypeCount) error {
	table := newTable(w, "Type", "Label", "Count")
	for _, count := range counts {
		_ = table.Append([]string{count.Type, count.Label, strconv.Itoa(count.Count)})
	}

	return renderTable(table)
}

func stationFeaturesTable(w io.Writer, stations *dftrans.FeatureCollection[dftrans.Station]) error {
	table := newTable(w, "Sequential", "Description", "Type", "Latitude", "Longitude")

	for _, feature := range stations.Features {
		position, err := feature.Geometry.Point()
		if err != nil {
			return fmt.Errorf("station %d: %w", feature.Properties.Sequential, err)
		}

		_ = table.Append([]string{
			strconv.FormatInt(feature.Properties.Sequential, 10),
			feature.Properties.Description,
			feature.Properties.Type.Label(),
			formatCoordinate(position.Latitude()),
			formatCoordinate(position.Longitude()),
		})
	}

	return renderTable(table)
}
