//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
	"github.com/fivetwenty-io/dftrans/pkg/dftransclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Endpoint   string
	BinaryPath string
	Route      string
	StopCode   string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:   os.Getenv("DFTRANS_LIVE_ENDPOINT"),
		BinaryPath: getBinaryPath(),
		Route:      envOr("DFTRANS_LIVE_ROUTE", "099.1"),
		StopCode:   envOr("DFTRANS_LIVE_STOP", "3458"),
		Verbose:    os.Getenv("DFTRANS_VERBOSE") == "true",
	}
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}

// getBinaryPath determines the path to the dftrans binary.
func getBinaryPath() string {
	if path := os.Getenv("DFTRANS_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../dftrans", "./dftrans"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "dftrans"
}

// SkipIfMissingConfig skips the test when no live endpoint is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Endpoint == "" {
		t.Skip("DFTRANS_LIVE_ENDPOINT not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI binary is not available.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("dftrans binary not found at %s, skipping CLI test", config.BinaryPath)
	}
}

// NewClient builds a client for the live endpoint.
func (config *TestConfig) NewClient(t *testing.T) dftrans.Client {
	t.Helper()

	client, err := dftransclient.New(&dftrans.Config{
		BaseURL:     config.Endpoint,
		HTTPTimeout: 20 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// CommandRunner runs the dftrans binary against the live endpoint.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a dftrans command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--api", runner.config.Endpoint}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()

	return stdoutBuf.String(), stderrBuf.String(), err
}
