package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewItinerariesCommand creates the itinerary command.
func NewItinerariesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "itinerary ROUTE_NUMBER",
		Aliases: []string{"itineraries", "itinerario"},
		Short:   "Show the itinerary of a route",
		Long:    "Show the origin, destination, length and street segments of a route",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := requireArg(args[0], ErrRouteRequired)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			itinerary, err := client.Itineraries().GetForRoute(cmd.Context(), number)
			if err != nil {
				return fmt.Errorf("failed to get itinerary: %w", err)
			}

			return render(cmd, itinerary, itineraryTable)
		},
	}
}

func itineraryTable(w io.Writer, itinerary *dftrans.Itinerary) error {
	summary := newTable(w, "Property", "Value")
	_ = summary.Append("Route", itinerary.Route)
	_ = summary.Append("Direction", orNA(itinerary.Direction))
	_ = summary.Append("Origin", orNA(itinerary.Origin))
	_ = summary.Append("Destination", orNA(itinerary.Destination))
	_ = summary.Append("Length", strconv.FormatFloat(itinerary.Length, 'f', -1, 64))

	if err := renderTable(summary); err != nil {
		return err
	}

	if len(itinerary.Segments) == 0 {
		return nil
	}

	segments := newTable(w, "#", "Segment")
	for _, segment := range itinerary.Segments {
		_ = segments.Append([]string{strconv.Itoa(segment.Sequence), segment.Description})
	}

	return renderTable(segments)
}
