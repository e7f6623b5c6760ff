package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewSchedulesCommand creates the schedules command.
func NewSchedulesCommand() *cobra.Command {
	var (
		day   string
		shift string
		today bool
		all   bool
	)

	cmd := &cobra.Command{
		Use:     "schedules ROUTE_NUMBER",
		Aliases: []string{"schedule", "horarios"},
		Short:   "Show the departure timetable of a route",
		Long: `Show the departure timetable of a route grouped by weekday and shift.

Use --day and --shift to keep only matching groups (service labels such as
SEGUNDA and Manhã, compared ignoring case), or --today to keep the groups that
apply today.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := requireArg(args[0], ErrRouteRequired)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			schedule, err := client.Schedules().GetForRoute(cmd.Context(), number)
			if err != nil {
				return fmt.Errorf("failed to get schedule: %w", err)
			}

			filtered := &dftrans.Schedule{
				Route:      schedule.Route,
				Departures: selectDepartures(schedule, day, shift, today, time.Now()),
			}

			rows := constants.PreviewRows
			if all {
				rows = -1
			}

			return render(cmd, filtered, func(w io.Writer, schedule *dftrans.Schedule) error {
				return departuresTable(w, schedule.Departures, rows)
			})
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "weekday label to keep, e.g. SEGUNDA")
	cmd.Flags().StringVar(&shift, "shift", "", "shift label to keep, e.g. Manhã")
	cmd.Flags().BoolVar(&today, "today", false, "keep only the groups that apply today")
	cmd.Flags().BoolVar(&all, "all", false, "print every departure instead of a preview")

	return cmd
}

func selectDepartures(schedule *dftrans.Schedule, day, shift string, today bool, now time.Time) []dftrans.DepartureGroup {
	if today {
		groups := schedule.ForWeekday(now.Weekday())
		if shift == "" {
			return groups
		}

		return (&dftrans.Schedule{Departures: groups}).Filter("", shift)
	}

	if day == "" && shift == "" {
		return schedule.Departures
	}

	return schedule.Filter(day, shift)
}

func departuresTable(w io.Writer, groups []dftrans.DepartureGroup, rows int) error {
	if len(groups) == 0 {
		_, _ = fmt.Fprintln(w, "No departures found")

		return nil
	}

	table := newTable(w, "Weekday", "Shift", "Departures", "Count")

	for _, group := range groups {
		times := strings.Join(group.First(rows), " ")
		if rows >= 0 && len(group.Times) > rows {
			times += " ..."
		}

		_ = table.Append([]string{title(group.Weekday), title(group.Shift), times, fmt.Sprint(len(group.Times))})
	}

	return renderTable(table)
}
