package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewRoutesCommand creates the routes command group.
func NewRoutesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routes",
		Aliases: []string{"route", "linhas"},
		Short:   "Look up bus routes",
		Long:    "Look up DFTrans bus routes by number, by stop, between references or by search term",
	}

	cmd.AddCommand(newRoutesGetCommand())
	cmd.AddCommand(newRoutesByStopCommand())
	cmd.AddCommand(newRoutesBetweenCommand())
	cmd.AddCommand(newRoutesFindCommand())

	return cmd
}

func newRoutesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ROUTE_NUMBER",
		Short: "Get route details",
		Long:  "Display the description, direction and fare of a route, e.g. 099.1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := requireArg(args[0], ErrRouteRequired)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			route, err := client.Routes().Get(cmd.Context(), number)
			if err != nil {
				return fmt.Errorf("failed to get route: %w", err)
			}

			return render(cmd, route, func(w io.Writer, route *dftrans.Route) error {
				table := newTable(w, "Property", "Value")
				_ = table.Append("Number", route.Number)
				_ = table.Append("Description", route.Description)
				_ = table.Append("Direction", orNA(route.Direction))
				_ = table.Append("Fare", formatFare(route.Fare))

				for _, operator := range route.Operators {
					_ = table.Append("Operator", operator.Name)
				}

				return renderTable(table)
			})
		},
	}
}

func newRoutesByStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "by-stop STOP_CODE",
		Short: "List routes serving a stop",
		Long:  "List every route that serves the stop with the given DFTrans code",
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

			routes, err := client.Routes().ListByStop(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to list routes for stop %s: %w", code, err)
			}

			return render(cmd, routes, routesTable)
		},
	}
}

func newRoutesBetweenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "between ORIGIN_TYPE ORIGIN_SEQ DEST_TYPE DEST_SEQ",
		Short: "List routes linking two references",
		Long: `List the routes linking two references. Types are single letters, for
example R for a reference and P for a stop. An empty result means the trip
needs an integration (transfer).`,
		Args: cobra.ExactArgs(constants.ReferencePairArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, destination, err := parseReferencePair(args)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			routes, err := client.Routes().ListBetween(cmd.Context(), origin, destination)
			if err != nil {
				return fmt.Errorf("failed to list routes between %s and %s: %w", origin, destination, err)
			}

			return render(cmd, routes, routesTable)
		},
	}
}

func newRoutesFindCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "find TERM",
		Short: "Search routes",
		Long:  "Search routes whose number or description contains TERM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := requireArg(args[0], ErrSearchTermRequired)
			if err != nil {
				return err
			}

			if limit <= 0 {
				return fmt.Errorf("%w: %d", constants.ErrInvalidLimit, limit)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			routes, err := client.Routes().Find(cmd.Context(), term, limit)
			if err != nil {
				return fmt.Errorf("failed to search routes: %w", err)
			}

			return render(cmd, routes, routesTable)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultSearchLimit, "maximum number of results")

	return cmd
}
