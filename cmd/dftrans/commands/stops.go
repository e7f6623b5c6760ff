package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewStopsCommand creates the stops command group.
func NewStopsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stops",
		Aliases: []string{"stop", "paradas"},
		Short:   "Look up stops",
		Long:    "Look up DFTrans boarding points and their locations",
	}

	cmd.AddCommand(newStopsGetCommand())
	cmd.AddCommand(newStopsGeoCommand())
	cmd.AddCommand(newStopsForRouteCommand())

	return cmd
}

func newStopsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get STOP_CODE",
		Short: "Get stop details",
		Long:  "Display the description and coordinates of a stop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := requireArg(args[0], ErrStopCodeRequired)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			stop, err := client.Stops().Get(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to get stop: %w", err)
			}

			return render(cmd, stop, func(w io.Writer, stop *dftrans.Stop) error {
				table := newTable(w, "Property", "Value")
				_ = table.Append("Code", stop.Code)
				_ = table.Append("Description", stop.Description)
				_ = table.Append("Direction", orNA(stop.Direction))
				_ = table.Append("Latitude", formatCoordinate(stop.Latitude))
				_ = table.Append("Longitude", formatCoordinate(stop.Longitude))

				return renderTable(table)
			})
		},
	}
}

func newStopsGeoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "geo",
		Short: "List all stops with coordinates",
		Long:  "List every stop of the network as a GeoJSON feature collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			stops, err := client.Stops().ListGeo(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list stops: %w", err)
			}

			return render(cmd, stops, stopFeaturesTable)
		},
	}
}

func newStopsForRouteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "for-route ROUTE_SEQ",
		Short: "List the stops of a route",
		Long:  "List the stops of the route with the given sequential id as GeoJSON features",
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

			stops, err := client.Stops().ListGeoForRoute(cmd.Context(), sequential)
			if err != nil {
				return fmt.Errorf("failed to list stops for route %d: %w", sequential, err)
			}

			return render(cmd, stops, stopFeaturesTable)
		},
	}
}

func stopFeaturesTable(w io.Writer, stops *dftrans.FeatureCollection[dftrans.Stop]) error {
	table := newTable(w, "Code", "Description", "Latitude", "Longitude")

	for _, feature := range stops.Features {
		position, err := feature.Geometry.Point()
		if err != nil {
			return fmt.Errorf("stop %s: %w", feature.Properties.Code, err)
		}

		_ = table.Append([]string{
			feature.Properties.Code,
			feature.Properties.Description,
			formatCoordinate(position.Latitude()),
			formatCoordinate(position.Longitude()),
		})
	}

	if err := renderTable(table); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%d stops\n", stops.Len())

	return nil
}
