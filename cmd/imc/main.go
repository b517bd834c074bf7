// Imc is a BMI calculator client.
//
// It provides an interactive height/weight form, a one-shot calculation
// command, a reference calculator service and mDNS discovery of calculator
// services on the local network. The BMI itself is computed by the service
// reached over POST /imc/calculate.
//
// Usage:
//
//	imc [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'imc --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/imc/internal/calculator"
	"github.com/muurk/imc/internal/config"
	"github.com/muurk/imc/internal/version"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("failure already reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Persistent flags
var (
	configPath string
	endpoint   string
	timeout    time.Duration
	logLevel   string
	discover   bool
)

// settings is the effective configuration: file values overridden by flags.
var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:   "imc",
	Short: "BMI calculator",
	Long: `A terminal client for a BMI calculator service.

Enter a height in meters and a weight in kilograms; the values are sent to
the calculator service, and the result is shown with the classification
table, the matching range highlighted.

If no command is specified, the interactive form will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", calculator.DefaultBaseURL, "Calculator service base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", calculator.DefaultTimeout, "Calculator request timeout")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); falls back to $IMC_LOG_LEVEL")
	rootCmd.PersistentFlags().BoolVar(&discover, "discover", false, "Use the first calculator service found over mDNS")
}

// loadSettings reads the settings file and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		settings, err = config.LoadFrom(configPath)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		settings.Calculator.Endpoint = endpoint
	}
	if flags.Changed("timeout") {
		settings.Calculator.SetTimeout(timeout)
	}
	if flags.Changed("log-level") {
		settings.Logging.Level = logLevel
	}

	return settings.Validate()
}
