package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
	"github.com/fivetwenty-io/dftrans/pkg/dftransclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// ConfigDirName is the directory under $HOME holding config.yml.
	ConfigDirName = ".dftrans"

	// JSON formatting.
	defaultJSONIndent = 2

	coordinatePrecision = 6
	timeLayout          = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrStopCodeRequired   = errors.New("stop code is required")
	ErrRouteRequired      = errors.New("route number is required")
	ErrSearchTermRequired = errors.New("search term is required")
)

// titleCaser renders upper-case service labels ("SEGUNDA", "MANHÃ") for tables.
var titleCaser = cases.Title(language.BrazilianPortuguese)

func title(value string) string {
	if value == "" {
		return NotAvailable
	}

	return titleCaser.String(strings.ToLower(value))
}

// createClient builds a client from the --api, --timeout and --verbose
// settings. configure hooks may adjust the config before the client is built.
func createClient(cmd *cobra.Command, configure ...func(*dftrans.Config)) (dftrans.Client, error) {
	config := &dftrans.Config{
		BaseURL:     apiEndpoint(cmd),
		HTTPTimeout: requestTimeout(cmd),
		UserAgent:   constants.DefaultUserAgent + "-cli",
	}

	if flagBool(cmd, "verbose") {
		config.Debug = true
		config.Logger = NewWriterLogger(cmd.ErrOrStderr())
	}

	for _, fn := range configure {
		fn(config)
	}

	client, err := dftransclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func apiEndpoint(cmd *cobra.Command) string {
	if flag := cmd.Flag("api"); flag != nil && flag.Changed {
		return flag.Value.String()
	}

	if api := viper.GetString("api"); api != "" {
		return api
	}

	return dftrans.DefaultBaseURL
}

func requestTimeout(cmd *cobra.Command) time.Duration {
	if flag := cmd.Flag("timeout"); flag != nil && flag.Changed {
		if timeout, err := time.ParseDuration(flag.Value.String()); err == nil && timeout > 0 {
			return timeout
		}
	}

	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		return timeout
	}

	return constants.DefaultHTTPTimeout
}

func flagBool(cmd *cobra.Command, name string) bool {
	if flag := cmd.Flag(name); flag != nil && flag.Changed {
		value, _ := strconv.ParseBool(flag.Value.String())

		return value
	}

	return viper.GetBool(name)
}

// outputFormat resolves --output, falling back to the configured value and
// then to table on a terminal and json when piped.
func outputFormat(cmd *cobra.Command) (string, error) {
	format := ""
	if flag := cmd.Flag("output"); flag != nil && flag.Changed {
		format = flag.Value.String()
	} else {
		format = viper.GetString("output")
	}

	if format == "" {
		return defaultOutputFormat(cmd.OutOrStdout()), nil
	}

	return validateOutputFormat(format)
}

func defaultOutputFormat(w io.Writer) string {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return constants.FormatTable
	}

	return constants.FormatJSON
}

func validateOutputFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputType, format)
	}
}

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderTable func(w io.Writer, data T) error
}

// Render outputs data in the specified format.
func (o *OutputRenderer[T]) Render(w io.Writer, data T, format string) error {
	switch format {
	case constants.FormatJSON:
		return renderJSON(w, data)
	case constants.FormatYAML:
		return renderYAML(w, data)
	default:
		return o.RenderTable(w, data)
	}
}

// render resolves the output format of cmd and renders data with it.
func render[T any](cmd *cobra.Command, data T, renderTable func(w io.Writer, data T) error) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	renderer := &OutputRenderer[T]{RenderTable: renderTable}

	return renderer.Render(cmd.OutOrStdout(), data, format)
}

func renderJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

func newTable(w io.Writer, headers ...any) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Header(headers...)

	return table
}

func renderTable(table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func routesTable(w io.Writer, routes []dftrans.Route) error {
	if len(routes) == 0 {
		_, _ = fmt.Fprintln(w, "No routes found")

		return nil
	}

	table := newTable(w, "Number", "Description", "Direction", "Fare")
	for _, route := range routes {
		_ = table.Append([]string{route.Number, route.Description, orNA(route.Direction), formatFare(route.Fare)})
	}

	return renderTable(table)
}

func formatFare(fare *dftrans.Fare) string {
	if fare == nil {
		return NotAvailable
	}

	return "R$ " + strconv.FormatFloat(fare.Tariff, 'f', 2, 64)
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', coordinatePrecision, 64)
}

func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// parseSequential parses a positive sequential id argument.
func parseSequential(arg string) (int64, error) {
	sequential, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || sequential <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidSequential, arg)
	}

	return sequential, nil
}

// parseReferencePair parses "originType originSeq destType destSeq".
func parseReferencePair(args []string) (dftrans.ReferenceKey, dftrans.ReferenceKey, error) {
	origin, err := parseReferenceKey(args[0], args[1])
	if err != nil {
		return dftrans.ReferenceKey{}, dftrans.ReferenceKey{}, fmt.Errorf("origin: %w", err)
	}

	destination, err := parseReferenceKey(args[2], args[3])
	if err != nil {
		return dftrans.ReferenceKey{}, dftrans.ReferenceKey{}, fmt.Errorf("destination: %w", err)
	}

	return origin, destination, nil
}

func parseReferenceKey(refType, sequential string) (dftrans.ReferenceKey, error) {
	refType = strings.ToUpper(strings.TrimSpace(refType))
	if len(refType) != 1 {
		return dftrans.ReferenceKey{}, fmt.Errorf("%w: %q", constants.ErrInvalidReferenceType, refType)
	}

	seq, err := parseSequential(sequential)
	if err != nil {
		return dftrans.ReferenceKey{}, err
	}

	return dftrans.ReferenceKey{Type: refType, Sequential: seq}, nil
}

// WriterLogger is a dftrans.Logger printing one line per entry to a writer.
type WriterLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterLogger creates a logger writing to out.
func NewWriterLogger(out io.Writer) *WriterLogger {
	return &WriterLogger{out: out}
}

func (l *WriterLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *WriterLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *WriterLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *WriterLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *WriterLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	line.WriteString("[" + level + "] " + msg)

	for _, key := range keys {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintln(l.out, line.String())
}

// requireArg trims arg and returns errBlank when nothing is left.
func requireArg(arg string, errBlank error) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errBlank
	}

	return arg, nil
}
