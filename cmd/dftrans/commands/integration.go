package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewIntegrationCommand creates the integration command.
func NewIntegrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "integration ORIGIN_TYPE ORIGIN_SEQ DEST_TYPE DEST_SEQ",
		Aliases: []string{"integration-areas", "integracao"},
		Short:   "List fare-integration areas between two references",
		Long:    "List the zones where a transfer between the two references needs no extra fare",
		Args:    cobra.ExactArgs(constants.ReferencePairArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, destination, err := parseReferencePair(args)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			areas, err := client.IntegrationAreas().ListBetween(cmd.Context(), origin, destination)
			if err != nil {
				return fmt.Errorf("failed to list integration areas between %s and %s: %w", origin, destination, err)
			}

			return render(cmd, areas, func(w io.Writer, areas []dftrans.IntegrationArea) error {
				if len(areas) == 0 {
					_, _ = fmt.Fprintln(w, "No integration areas found")

					return nil
				}

				table := newTable(w, "Sequential", "Description")
				for _, area := range areas {
					_ = table.Append([]string{strconv.FormatInt(area.Sequential, 10), area.Description})
				}

				return renderTable(table)
			})
		},
	}
}
