package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dftrans/internal/constants"
)

const (
	configKeyAPI     = "api"
	configKeyOutput  = "output"
	configKeyTimeout = "timeout"
)

var configValidator = validator.New()

// Config represents the persisted CLI configuration.
type Config struct {
	API     string `json:"api,omitempty"     yaml:"api,omitempty"     validate:"omitempty,url"`
	Output  string `json:"output,omitempty"  yaml:"output,omitempty"  validate:"omitempty,oneof=table json yaml"`
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", constants.ErrConfigInvalid, err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the DFTrans CLI configuration stored in $HOME/" + ConfigDirName + "/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			return render(cmd, config, func(w io.Writer, config *Config) error {
				table := newTable(w, "Property", "Value")
				_ = table.Append("API", orDefault(config.API, constants.DefaultBaseURL))
				_ = table.Append("Output", orDefault(config.Output, "auto"))
				_ = table.Append("Timeout", orDefault(config.Timeout, constants.DefaultHTTPTimeout.String()))
				_ = table.Append("Config File", orDefault(viper.ConfigFileUsed(), NotAvailable))

				return renderTable(table)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Known keys:
  api      base URL of the service (or a mirror)
  output   table, json or yaml
  timeout  per-request timeout, e.g. 10s`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := setConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value so its default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := setConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		API:    viper.GetString(configKeyAPI),
		Output: viper.GetString(configKeyOutput),
	}

	if viper.IsSet(configKeyTimeout) {
		config.Timeout = viper.GetDuration(configKeyTimeout).String()
	}

	return config
}

// setConfigValue updates key in config, validating the result. An empty
// value clears the key.
func setConfigValue(config *Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case configKeyAPI:
		config.API = value
	case configKeyOutput:
		config.Output = strings.ToLower(value)
	case configKeyTimeout:
		if value != "" {
			if _, err := time.ParseDuration(value); err != nil {
				return fmt.Errorf("%w: timeout %q: %w", constants.ErrConfigInvalid, value, err)
			}
		}

		config.Timeout = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return config.Validate()
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
