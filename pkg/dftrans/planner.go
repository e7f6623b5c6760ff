package dftrans

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/dftrans/internal/constants"
)

// DirectRoutes returns the routes of from that also appear in to, matched by
// route number. The order of from is preserved and duplicates are dropped.
func DirectRoutes(from, to []Route) []Route {
	numbers := make(map[string]struct{}, len(to))
	for _, route := range to {
		numbers[route.Number] = struct{}{}
	}

	direct := make([]Route, 0)
	seen := make(map[string]struct{})

	for _, route := range from {
		if _, ok := numbers[route.Number]; !ok {
			continue
		}

		if _, dup := seen[route.Number]; dup {
			continue
		}

		seen[route.Number] = struct{}{}
		direct = append(direct, route)
	}

	return direct
}

// TripPlannerClient is the subset of Client a TripPlanner needs.
type TripPlannerClient interface {
	Routes() RoutesClient
	Stops() StopsClient
	Schedules() SchedulesClient
}

// TripPlan is the outcome of planning a trip between two stops.
type TripPlan struct {
	Origin            *Stop
	Destination       *Stop
	OriginRoutes      []Route
	DestinationRoutes []Route
	DirectRoutes      []Route

	// Schedule is the timetable of the first direct route, when one exists.
	Schedule *Schedule
	// TodayDepartures are the Schedule groups that apply on the planning day.
	TodayDepartures []DepartureGroup
	// ScheduleErr is set when the timetable lookup failed; the plan is still usable.
	ScheduleErr error
}

// NeedsIntegration reports whether no direct route links the two stops.
func (p *TripPlan) NeedsIntegration() bool {
	return len(p.DirectRoutes) == 0
}

// TripPlanner chains stop, route and schedule lookups.
//
// Stop and route-list failures abort the plan. A failing schedule lookup
// degrades: the plan is returned with ScheduleErr set.
type TripPlanner struct {
	client      TripPlannerClient
	concurrency int
	timeout     time.Duration
	now         func() time.Time
}

// NewTripPlanner creates a new trip planner.
func NewTripPlanner(client TripPlannerClient) *TripPlanner {
	return &TripPlanner{
		client:      client,
		concurrency: constants.DefaultConcurrencyLimit,
		timeout:     constants.DefaultHTTPTimeout,
		now:         time.Now,
	}
}

// SetTimeout sets the per-lookup timeout.
func (p *TripPlanner) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// SetConcurrency bounds how many lookups run at once.
func (p *TripPlanner) SetConcurrency(concurrency int) {
	if concurrency > 0 {
		p.concurrency = concurrency
	}
}

// SetClock replaces the clock used to pick today's departures.
func (p *TripPlanner) SetClock(now func() time.Time) {
	p.now = now
}

// Plan finds the direct routes between two stops and today's departures of
// the first one.
func (p *TripPlanner) Plan(ctx context.Context, originCode, destinationCode string) (*TripPlan, error) {
	plan := &TripPlan{}

	err := p.runLookups(ctx, []lookup{
		func(ctx context.Context) error {
			stop, err := p.client.Stops().Get(ctx, originCode)
			if err != nil {
				return fmt.Errorf("getting origin stop %s: %w", originCode, err)
			}

			plan.Origin = stop

			return nil
		},
		func(ctx context.Context) error {
			stop, err := p.client.Stops().Get(ctx, destinationCode)
			if err != nil {
				return fmt.Errorf("getting destination stop %s: %w", destinationCode, err)
			}

			plan.Destination = stop

			return nil
		},
		func(ctx context.Context) error {
			routes, err := p.client.Routes().ListByStop(ctx, originCode)
			if err != nil {
				return fmt.Errorf("listing routes at origin %s: %w", originCode, err)
			}

			plan.OriginRoutes = routes

			return nil
		},
		func(ctx context.Context) error {
			routes, err := p.client.Routes().ListByStop(ctx, destinationCode)
			if err != nil {
				return fmt.Errorf("listing routes at destination %s: %w", destinationCode, err)
			}

			plan.DestinationRoutes = routes

			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	plan.DirectRoutes = DirectRoutes(plan.OriginRoutes, plan.DestinationRoutes)
	if plan.NeedsIntegration() {
		return plan, nil
	}

	first := plan.DirectRoutes[0]

	scheduleCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	schedule, err := p.client.Schedules().GetForRoute(scheduleCtx, first.Number)
	if err != nil {
		plan.ScheduleErr = fmt.Errorf("getting schedule for route %s: %w", first.Number, err)

		return plan, nil
	}

	plan.Schedule = schedule
	plan.TodayDepartures = schedule.ForWeekday(p.now().Weekday())

	return plan, nil
}

type lookup func(ctx context.Context) error

// runLookups executes independent lookups with bounded concurrency and
// returns every failure joined in submission order.
func (p *TripPlanner) runLookups(ctx context.Context, lookups []lookup) error {
	errs := make([]error, len(lookups))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, p.concurrency)

	for index, fn := range lookups {
		waitGroup.Add(1)

		go func(index int, fn lookup) {
			defer waitGroup.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				errs[index] = ctx.Err()

				return
			}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			errs[index] = fn(opCtx)
		}(index, fn)
	}

	waitGroup.Wait()

	return errors.Join(errs...)
}
