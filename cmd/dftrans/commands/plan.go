package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// PlanOutput is the rendered form of a trip plan.
type PlanOutput struct {
	Origin           *dftrans.Stop            `json:"origin"                     yaml:"origin"`
	Destination      *dftrans.Stop            `json:"destination"                yaml:"destination"`
	DirectRoutes     []dftrans.Route          `json:"direct_routes"              yaml:"direct_routes"`
	NeedsIntegration bool                     `json:"needs_integration"          yaml:"needs_integration"`
	ScheduleRoute    string                   `json:"schedule_route,omitempty"   yaml:"schedule_route,omitempty"`
	TodayDepartures  []dftrans.DepartureGroup `json:"today_departures,omitempty" yaml:"today_departures,omitempty"`
	ScheduleError    string                   `json:"schedule_error,omitempty"   yaml:"schedule_error,omitempty"`
}

// newPlanOutput flattens a plan for rendering.
func newPlanOutput(plan *dftrans.TripPlan) PlanOutput {
	output := PlanOutput{
		Origin:           plan.Origin,
		Destination:      plan.Destination,
		DirectRoutes:     plan.DirectRoutes,
		NeedsIntegration: plan.NeedsIntegration(),
		TodayDepartures:  plan.TodayDepartures,
	}

	if plan.Schedule != nil {
		output.ScheduleRoute = plan.Schedule.Route
	}

	if plan.ScheduleErr != nil {
		output.ScheduleError = plan.ScheduleErr.Error()
	}

	return output
}

// NewPlanCommand creates the plan command.
func NewPlanCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "plan ORIGIN_STOP DESTINATION_STOP",
		Short: "Plan a trip between two stops",
		Long: `Find the routes serving both stops and today's departures of the first one.

When no route serves both stops the trip needs an integration (transfer); use
"references" and "integration" to look up the integration areas.`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := requireArg(args[0], ErrStopCodeRequired)
			if err != nil {
				return err
			}

			destination, err := requireArg(args[1], ErrStopCodeRequired)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			planner := dftrans.NewTripPlanner(client)
			planner.SetConcurrency(concurrency)
			planner.SetTimeout(requestTimeout(cmd))

			plan, err := planner.Plan(cmd.Context(), origin, destination)
			if err != nil {
				return fmt.Errorf("failed to plan trip: %w", err)
			}

			return render(cmd, newPlanOutput(plan), planTable)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "maximum lookups in flight")

	return cmd
}

func planTable(w io.Writer, plan PlanOutput) error {
	_, _ = fmt.Fprintf(w, "From %s (%s) to %s (%s)\n",
		plan.Origin.Description, plan.Origin.Code, plan.Destination.Description, plan.Destination.Code)

	if plan.NeedsIntegration {
		_, _ = fmt.Fprintln(w, "No direct route: this trip needs an integration")

		return nil
	}

	if err := routesTable(w, plan.DirectRoutes); err != nil {
		return err
	}

	if plan.ScheduleError != "" {
		_, _ = fmt.Fprintf(w, "Schedule unavailable: %s\n", plan.ScheduleError)

		return nil
	}

	_, _ = fmt.Fprintf(w, "Today's departures of %s\n", plan.ScheduleRoute)

	return departuresTable(w, plan.TodayDepartures, constants.PreviewRows)
}
