package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/dftrans/cmd/dftrans/commands"
	"github.com/fivetwenty-io/dftrans/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dftrans",
	Short: "DFTrans public transit CLI",
	Long: `A command-line interface for the DFTrans public transit service of the
Distrito Federal, Brazil.

This CLI gives read-only access to routes, stops, schedules, itineraries,
stations, route paths, integration areas and live vehicle positions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.dftrans/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API endpoint URL (default "+constants.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (table, json, yaml); table on a terminal, json otherwise")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "per-request timeout")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewRoutesCommand())
	rootCmd.AddCommand(commands.NewStopsCommand())
	rootCmd.AddCommand(commands.NewSchedulesCommand())
	rootCmd.AddCommand(commands.NewItinerariesCommand())
	rootCmd.AddCommand(commands.NewReferencesCommand())
	rootCmd.AddCommand(commands.NewStationsCommand())
	rootCmd.AddCommand(commands.NewVehiclesCommand())
	rootCmd.AddCommand(commands.NewPathsCommand())
	rootCmd.AddCommand(commands.NewIntegrationCommand())
	rootCmd.AddCommand(commands.NewPlanCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.dftrans/config.yml
		viper.AddConfigPath(filepath.Join(home, commands.ConfigDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("DFTRANS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
