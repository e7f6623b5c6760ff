package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewPathsCommand creates the path command.
func NewPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "path ROUTE_SEQ",
		Aliases: []string{"paths", "percurso"},
		Short:   "Show the geometry of a route",
		Long:    "Show the line geometry of the route with the given sequential id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequential, err := parseSequential(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			paths, err := client.RoutePaths().GetForRoute(cmd.Context(), sequential)
			if err != nil {
				return fmt.Errorf("failed to get route path: %w", err)
			}

			return render(cmd, paths, routePathsTable)
		},
	}
}

func routePathsTable(w io.Writer, paths *dftrans.FeatureCollection[dftrans.RoutePath]) error {
	table := newTable(w, "Route", "Direction", "Points", "Start", "End")

	for _, feature := range paths.Features {
		line, err := feature.Geometry.Line()
		if err != nil {
			return fmt.Errorf("route %s: %w", feature.Properties.Route, err)
		}

		start, end := NotAvailable, NotAvailable
		if len(line) > 0 {
			start = formatPosition(line[0])
			end = formatPosition(line[len(line)-1])
		}

		_ = table.Append([]string{
			feature.Properties.Route,
			orNA(feature.Properties.Direction),
			strconv.Itoa(len(line)),
			start,
			end,
		})
	}

	return renderTable(table)
}

func formatPosition(position dftrans.Position) string {
	return formatCoordinate(position.Latitude()) + ", " + formatCoordinate(position.Longitude())
}
