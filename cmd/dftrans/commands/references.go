package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewReferencesCommand creates the references command.
func NewReferencesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "references TERM",
		Aliases: []string{"refs", "referencias"},
		Short:   "Search origin and destination references",
		Long: `Search the references (places, stops, terminals) whose description
contains TERM. The type and sequential columns are the arguments expected by
"routes between" and "integration".`,
		Args: cobra.ExactArgs(1),
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

			references, err := client.References().Find(cmd.Context(), term, limit)
			if err != nil {
				return fmt.Errorf("failed to search references: %w", err)
			}

			return render(cmd, references, func(w io.Writer, references []dftrans.Reference) error {
				if len(references) == 0 {
					_, _ = fmt.Fprintln(w, "No references found")

					return nil
				}

				table := newTable(w, "Type", "Kind", "Sequential", "Description")
				for _, reference := range references {
					_ = table.Append([]string{
						reference.Type,
						referenceTypeLabel(reference.Type),
						strconv.FormatInt(reference.Sequential, 10),
						reference.Description,
					})
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultSearchLimit, "maximum number of results")

	return cmd
}

// referenceTypeLabel names the reference type codes the service is known to return.
func referenceTypeLabel(refType string) string {
	switch strings.ToUpper(refType) {
	case constants.ReferenceTypeReference:
		return "Referência"
	case constants.ReferenceTypeStop:
		return "Parada"
	default:
		return NotAvailable
	}
}
