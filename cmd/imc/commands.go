package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/calculator"
	"github.com/muurk/imc/internal/config"
	"github.com/muurk/imc/internal/discovery"
	"github.com/muurk/imc/internal/form"
	"github.com/muurk/imc/internal/logging"
	"github.com/muurk/imc/internal/render"
	"github.com/muurk/imc/internal/server"
	"github.com/muurk/imc/internal/tui"
	"github.com/muurk/imc/internal/ui"
	"github.com/muurk/imc/internal/version"
)

// Output formats
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
)

// Command flags
var (
	heightValue  string
	weightValue  string
	outputFormat string
	verbose      bool

	serveHost        string
	servePort        int
	serveNoAdvertise bool
	serveInstance    string

	scanTimeout time.Duration

	initForce bool
	jsonOut   bool
)

func init() {
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// formCmd launches the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive BMI form",
	Long: `Launch the interactive BMI form.

Type your height in meters and your weight in kilograms, then press enter
on the weight field or on the Calculate button. Decimal commas are accepted.

Logs are written to a file while the form is open (see 'logging.file' in the
settings file) so they do not draw over the screen.`,
	Example: `  # Launch the form against the default service
  imc form
  # Or simply (form is default):
  imc

  # Use a calculator found on the local network
  imc --discover`,
	RunE: runForm,
}

func init() {
	formCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show error details under the alert")
}

func runForm(cmd *cobra.Command, args []string) error {
	logFile := settings.Logging.File
	if logFile == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		logFile = filepath.Join(dir, "imc.log")
	}
	if err := logging.InitializeTo(settings.Logging.Level, logFile); err != nil {
		return err
	}
	defer logging.Sync()

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	model := tui.NewFormModel(form.New(client), client.Endpoint())
	model.Verbose = verbose

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}

// calcCmd performs one submission and prints the result
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a BMI once and print the result",
	Long: `Send one height/weight pair to the calculator service and print the
result with the classification table.

On failure the generic alert is printed and the command exits with status 1.
Use --verbose to see what went wrong.`,
	Example: `  # Detailed output (default)
  imc calc --height 1.75 --weight 70

  # Decimal comma
  imc calc --height 1,75 --weight 70

  # One line per row, for scripts
  imc calc --height 1.75 --weight 70 --format compact

  # JSON output
  imc calc --height 1.75 --weight 70 --format json`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&heightValue, "height", "", "Height in meters")
	calcCmd.Flags().StringVar(&weightValue, "weight", "", "Weight in kilograms")
	calcCmd.Flags().StringVar(&outputFormat, "format", FormatDetailed, "Output format (detailed, compact, json)")
	calcCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show error details and troubleshooting on failure")
}

func runCalc(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case FormatDetailed, FormatCompact, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (use detailed, compact or json)", outputFormat)
	}

	if err := logging.InitializeTo(settings.Logging.Level, "stderr"); err != nil {
		return err
	}
	defer logging.Sync()

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	ctrl := form.New(client)
	result, calcErr := ctrl.Submit(cmd.Context(), heightValue, weightValue)

	return printCalculation(ui.NewPrinter(cmd.OutOrStdout()), client.Endpoint(), result, calcErr)
}

// calcOutput is the JSON form of a calculation
type calcOutput struct {
	IMC            float64     `json:"imc,omitempty"`
	IMCDescription string      `json:"imcDescription,omitempty"`
	Classification []rowOutput `json:"classification,omitempty"`
	Error          string      `json:"error,omitempty"`
}

type rowOutput struct {
	Label       string `json:"label"`
	Interval    string `json:"interval"`
	Highlighted bool   `json:"highlighted"`
}

// printCalculation renders a calculation outcome in the selected format.
// A failure is printed here and reported as errReported.
func printCalculation(p *ui.Printer, endpoint string, result *bmi.Result, calcErr error) error {
	view := render.Render(result)

	switch outputFormat {
	case FormatJSON:
		out := calcOutput{}
		if calcErr != nil {
			out.Error = form.AlertMessage
		} else {
			out.IMC = result.Value
			out.IMCDescription = result.Description
			for _, row := range view.Rows {
				out.Classification = append(out.Classification, rowOutput(row))
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		p.Println(string(data))

	case FormatCompact:
		if calcErr != nil {
			p.Println(form.AlertMessage)
			if verbose {
				p.Println(calculator.ShortMessage(calcErr))
			}
		} else {
			p.PrintCompact(view)
		}

	default:
		p.PrintHeader(ui.NewHeader("BMI calculation", "imc calc",
			ui.Param{Key: "Endpoint", Value: endpoint},
			ui.Param{Key: "Height", Value: heightValue},
			ui.Param{Key: "Weight", Value: weightValue},
		))
		if calcErr != nil {
			box := ui.NewFailureResult(form.AlertMessage)
			if verbose {
				box.AddDetail(calcErr.Error())
				switch {
				case bmi.IsValidationError(calcErr):
					box.SetTroubleshooting("Enter height in metres and weight in kilograms, both greater than zero.")
				case calculator.IsCalculationError(calcErr):
					box.SetTroubleshooting(calculator.TroubleshootingHint(calcErr))
				}
			}
			p.PrintResult(box)
		} else {
			p.PrintResult(ui.NewSuccessResult(view))
		}
	}

	if calcErr != nil {
		return errReported
	}
	return nil
}

// serveCmd runs the reference calculator service
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reference calculator service",
	Long: `Run a calculator service answering POST /imc/calculate.

The service computes weight / height² rounded to two decimals and labels it
with the matching classification range. Unless --no-advertise is given it
announces itself over mDNS so 'imc scan' and '--discover' can find it.

Stops gracefully on Ctrl+C or SIGTERM.`,
	Example: `  # Listen on all interfaces, port 3000
  imc serve

  # Local only, custom port, no mDNS
  imc serve --host 127.0.0.1 --port 8080 --no-advertise

  # Verbose request logging
  imc serve --log-level debug`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", server.DefaultPort, "Listen port")
	serveCmd.Flags().BoolVar(&serveNoAdvertise, "no-advertise", false, "Do not announce the service over mDNS")
	serveCmd.Flags().StringVar(&serveInstance, "instance", "", "mDNS instance name (default: imc-<hostname>)")
}

func runServe(cmd *cobra.Command, args []string) error {
	level := settings.Logging.Level
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = "info"
	}
	if err := logging.InitializeTo(level, "stdout"); err != nil {
		return err
	}

	cfg := &server.Config{
		Host:      settings.Server.Host,
		Port:      settings.Server.Port,
		Advertise: settings.Server.Advertise,
		Instance:  settings.Server.Instance,
	}
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if serveNoAdvertise {
		cfg.Advertise = false
	}
	if flags.Changed("instance") {
		cfg.Instance = serveInstance
	}

	return server.New(cfg).Start()
}

// scanCmd lists calculator services on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for calculator services on the network",
	Long: `Scan for calculator services using mDNS/DNS-SD discovery.

Services started with 'imc serve' announce themselves as "_imc._tcp".`,
	Example: `  # Scan for 5 seconds (default)
  imc scan

  # Longer scan for slow networks
  imc scan --timeout 15s`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "Scan timeout (default from settings, 5s)")
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeTo(settings.Logging.Level, "stderr"); err != nil {
		return err
	}

	timeout := settings.Discovery.Timeout
	if scanTimeout > 0 {
		timeout = scanTimeout
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Println(fmt.Sprintf("Scanning for calculator services (timeout: %s)...", timeout))
	p.Newline()

	services, err := discovery.ScanForServices(cmd.Context(), timeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		p.Println("No calculator services found.")
		p.Newline()
		p.Println("Troubleshooting:")
		p.Println("  - Start one with 'imc serve'")
		p.Println("  - Check that multicast (UDP 5353) is allowed on this network")
		p.Println("  - Try increasing --timeout for slower networks")
		p.Println("  - Use --endpoint to set the service URL manually")
		return nil
	}

	rows := make([][]string, 0, len(services))
	for _, svc := range services {
		rows = append(rows, []string{svc.Instance, svc.Host, svc.BaseURL(), svc.GetMetadata(discovery.TextKeyVersion)})
	}
	p.PrintTable([]string{"Instance", "Host", "URL", "Version"}, rows)
	p.Newline()
	p.Println("Use 'imc --endpoint <url>' or 'imc --discover' to use a service")

	return nil
}

// configCmd groups settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings (file + flags)",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Example: `  # Create the settings file if it does not exist
  imc config init

  # Overwrite an existing file
  imc config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("settings file already exists: %s (use --force to overwrite)", path)
		}
		if err := config.NewSettings().SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing settings file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut {
			data, err := json.MarshalIndent(version.Get(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imc %s\n", version.Full())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&jsonOut, "json", false, "Print as JSON")
}

// newClient builds the calculator client from the effective settings,
// resolving the endpoint over mDNS when --discover is set.
func newClient(ctx context.Context) (*calculator.Client, error) {
	if discover {
		scanner := discovery.NewScanner()
		scanner.Timeout = settings.Discovery.Timeout
		svc, err := scanner.First(ctx)
		if err != nil {
			return nil, fmt.Errorf("discovery failed: %w", err)
		}
		logging.Info("Using discovered calculator", zap.String("service", svc.String()))
		return clientForService(ctx, svc)
	}

	client := calculator.NewClient(settings.Calculator.Endpoint)
	client.SetTimeout(settings.Calculator.RequestTimeout())
	return client, nil
}

// clientForService builds a client for a discovered service, using its
// advertised path, and checks that it answers before any submission.
func clientForService(ctx context.Context, svc *discovery.Service) (*calculator.Client, error) {
	client := calculator.NewClient(svc.BaseURL())
	client.SetTimeout(settings.Calculator.RequestTimeout())
	client.SetPath(svc.GetMetadata(discovery.TextKeyPath))

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("discovered calculator %s is not reachable: %w", svc.Instance, err)
	}
	return client, nil
}
