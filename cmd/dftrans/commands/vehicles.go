package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// Publisher sends a snapshot payload to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// VehicleSnapshot is one poll of the vehicle monitor.
type VehicleSnapshot struct {
	Route    string                                              `json:"route"    yaml:"route"`
	Update   int                                                 `json:"update"   yaml:"update"`
	Taken    time.Time                                           `json:"taken"    yaml:"taken"`
	Vehicles *dftrans.FeatureCollection[dftrans.VehiclePosition] `json:"vehicles" yaml:"vehicles"`
}

// VehicleMonitor polls the recent positions of a route on a fixed interval.
//
// A failed poll is logged and the loop continues with the next tick.
type VehicleMonitor struct {
	Client   dftrans.VehiclesClient
	Route    string
	Interval time.Duration
	// Updates is the number of polls; zero or less polls until ctx is done.
	Updates int

	Publisher Publisher
	Subject   string
	Logger    dftrans.Logger

	// Encode builds the published payload; nil publishes JSON.
	Encode SnapshotEncoder

	// OnSnapshot receives every successful poll.
	OnSnapshot func(snapshot VehicleSnapshot) error

	now func() time.Time
}

// Run polls until Updates is reached or ctx is done. Interruption is not an
// error. It fails only when the callback fails or no poll succeeded.
func (m *VehicleMonitor) Run(ctx context.Context) error {
	if m.Interval <= 0 {
		return fmt.Errorf("%w: %s", constants.ErrInvalidInterval, m.Interval)
	}

	if m.now == nil {
		m.now = time.Now
	}

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	var (
		succeeded int
		lastErr   error
	)

	for update := 1; m.Updates <= 0 || update <= m.Updates; update++ {
		err := m.poll(ctx, update)

		switch {
		case err == nil:
			succeeded++
		case ctx.Err() != nil:
			return nil
		case isCallbackError(err):
			return err
		default:
			lastErr = err
			m.warn("Vehicle poll failed", map[string]interface{}{
				"route":  m.Route,
				"update": update,
				"error":  err.Error(),
			})
		}

		if m.Updates > 0 && update == m.Updates {
			break
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}

	if succeeded == 0 && lastErr != nil {
		return fmt.Errorf("no vehicle poll succeeded for route %s: %w", m.Route, lastErr)
	}

	return nil
}

type callbackError struct {
	err error
}

func (e *callbackError) Error() string { return e.err.Error() }
func (e *callbackError) Unwrap() error { return e.err }

func isCallbackError(err error) bool {
	var target *callbackError

	return errors.As(err, &target)
}

func (m *VehicleMonitor) poll(ctx context.Context, update int) error {
	positions, err := m.Client.RecentForRoute(ctx, m.Route)
	if err != nil {
		return err
	}

	snapshot := VehicleSnapshot{
		Route:    m.Route,
		Update:   update,
		Taken:    m.now().UTC(),
		Vehicles: positions,
	}

	if m.OnSnapshot != nil {
		if err := m.OnSnapshot(snapshot); err != nil {
			return &callbackError{err: err}
		}
	}

	m.publish(snapshot)

	return nil
}

// publish sends the snapshot when a publisher is configured. Failures are logged.
func (m *VehicleMonitor) publish(snapshot VehicleSnapshot) {
	if m.Publisher == nil {
		return
	}

	encode := m.Encode
	if encode == nil {
		encode = encodeSnapshotJSON
	}

	data, err := encode(snapshot)
	if err == nil {
		err = m.Publisher.Publish(m.Subject, data)
	}

	if err != nil {
		m.warn("Snapshot publish failed", map[string]interface{}{
			"subject": m.Subject,
			"error":   err.Error(),
		})
	}
}

func (m *VehicleMonitor) warn(msg string, fields map[string]interface{}) {
	if m.Logger != nil {
		m.Logger.Warn(msg, fields)
	}
}

// NewVehiclesCommand creates the vehicles command group.
func NewVehiclesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vehicles",
		Aliases: []string{"vehicle", "gps"},
		Short:   "Read live vehicle positions",
		Long:    "Read the most recent GPS positions reported by the vehicles of a route",
	}

	cmd.AddCommand(newVehiclesRecentCommand())
	cmd.AddCommand(newVehiclesMonitorCommand())

	return cmd
}

func newVehiclesRecentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recent ROUTE_NUMBER",
		Short: "Show the latest positions of a route",
		Long:  "Show the most recently reported position of every vehicle operating the route",
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

			positions, err := client.Vehicles().RecentForRoute(cmd.Context(), number)
			if err != nil {
				return fmt.Errorf("failed to get vehicle positions: %w", err)
			}

			return render(cmd, positions, vehiclePositionsTable)
		},
	}
}

func newVehiclesMonitorCommand() *cobra.Command {
	var (
		interval     time.Duration
		count        int
		natsURL      string
		natsSubject  string
		natsEncoding string
	)

	cmd := &cobra.Command{
		Use:   "monitor ROUTE_NUMBER",
		Short: "Poll the positions of a route periodically",
		Long: `Poll the positions of a route every --interval, --count times (0 polls
until interrupted). Failed polls are reported and the monitor keeps going.

With --nats-url every snapshot is also published on --nats-subject, as JSON or
as a GTFS-Realtime VehiclePosition feed (--nats-encoding gtfsrt).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := requireArg(args[0], ErrRouteRequired)
			if err != nil {
				return err
			}

			if interval <= 0 {
				return fmt.Errorf("%w: %s", constants.ErrInvalidInterval, interval)
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			encode, err := snapshotEncoder(natsEncoding)
			if err != nil {
				return err
			}

			metrics := dftrans.NewMetricsCollector()

			client, err := createClient(cmd, func(config *dftrans.Config) {
				config.RequestInterceptors = append(config.RequestInterceptors, dftrans.MetricsRequestInterceptor(metrics))
				config.ResponseInterceptors = append(config.ResponseInterceptors, dftrans.MetricsResponseInterceptor(metrics))
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			monitor := &VehicleMonitor{
				Client:   client.Vehicles(),
				Route:    number,
				Interval: interval,
				Updates:  count,
				Subject:  natsSubject,
				Encode:   encode,
				Logger:   NewWriterLogger(cmd.ErrOrStderr()),
				OnSnapshot: func(snapshot VehicleSnapshot) error {
					renderer := &OutputRenderer[VehicleSnapshot]{RenderTable: vehicleSnapshotTable}

					return renderer.Render(out, snapshot, format)
				},
			}

			if natsURL != "" {
				conn, err := nats.Connect(natsURL, nats.Name(constants.DefaultUserAgent+"-monitor"))
				if err != nil {
					return fmt.Errorf("failed to connect to NATS: %w", err)
				}
				defer conn.Close()

				monitor.Publisher = conn
			}

			runErr := monitor.Run(ctx)

			printMonitorSummary(cmd.ErrOrStderr(), metrics.Totals())

			return runErr
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", constants.DefaultMonitorInterval, "pause between two polls")
	cmd.Flags().IntVar(&count, "count", constants.DefaultMonitorUpdates, "number of polls, 0 for no limit")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server to publish snapshots to")
	cmd.Flags().StringVar(&natsSubject, "nats-subject", constants.DefaultNATSSubject, "NATS subject for snapshots")
	cmd.Flags().StringVar(&natsEncoding, "nats-encoding", constants.EncodingJSON, "payload encoding for published snapshots (json or gtfsrt)")

	return cmd
}

func printMonitorSummary(w io.Writer, totals dftrans.Metrics) {
	_, _ = fmt.Fprintf(w, "Requests: %d, errors: %d, average latency: %s\n",
		totals.TotalRequests, totals.TotalErrors, totals.AverageLatency.Round(time.Millisecond))
}

func vehicleSnapshotTable(w io.Writer, snapshot VehicleSnapshot) error {
	_, _ = fmt.Fprintf(w, "Update %d for route %s at %s\n", snapshot.Update, snapshot.Route, snapshot.Taken.Local().Format(timeLayout))

	return vehiclePositionsTable(w, snapshot.Vehicles)
}

func vehiclePositionsTable(w io.Writer, positions *dftrans.FeatureCollection[dftrans.VehiclePosition]) error {
	if positions.Len() == 0 {
		_, _ = fmt.Fprintln(w, "No vehicles reporting")

		return nil
	}

	table := newTable(w, "Vehicle", "Operator", "Speed", "Latitude", "Longitude", "Reported")

	for _, feature := range positions.Features {
		position, err := feature.Geometry.Point()
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", feature.Properties.Vehicle, err)
		}

		reported := NotAvailable
		if !feature.Properties.Reported.IsZero() {
			reported = feature.Properties.Reported.Local().Format(timeLayout)
		}

		_ = table.Append([]string{
			string(feature.Properties.Vehicle),
			orNA(feature.Properties.Operator),
			strconv.FormatFloat(feature.Properties.Speed, 'f', 1, 64),
			formatCoordinate(position.Latitude()),
			formatCoordinate(position.Longitude()),
			reported,
		})
	}

	return renderTable(table)
}
