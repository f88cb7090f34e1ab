package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/frontgo/config"
	"github.com/s0up4200/frontgo/frontgo"
)

// app holds state shared by every command of one invocation
type app struct {
	cfgFile string
	demo    bool
	output  string

	cfg     *config.Config
	logger  zerolog.Logger
	client  frontgo.API
	baseURL string
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "frontgo",
		Short: "Command line client for the FrontGo (Front Payment) Connect API",
		Long: `frontgo talks to the FrontGo Connect API: create and track orders,
reservations and subscriptions, manage customers, run payment terminals
and credit checks.

The API key is read from the config file or FRONTGO_API_KEY.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.demo, "demo", false, "use the demo environment")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: json or yaml")

	rootCmd.AddCommand(
		newOrdersCmd(a),
		newReservationsCmd(a),
		newSubscriptionsCmd(a),
		newCustomersCmd(a),
		newRefundsCmd(a),
		newTerminalsCmd(a),
		newCreditCmd(a),
		newTestCmd(a),
		newVersionCmd(),
		newUpdateCmd(a),
	)

	return rootCmd
}

// initialize loads configuration and creates the API client
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	var err error
	a.cfg, err = config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("demo") {
		a.cfg.FrontGo.Demo = a.demo
	}
	if cmd.Flags().Changed("output") {
		switch a.output {
		case "json", "yaml":
			a.cfg.Output.Format = a.output
		default:
			return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", a.output)
		}
	}

	a.logger = setupLogger(cmd.ErrOrStderr(), a.cfg.Logging)

	opts := []frontgo.Option{
		frontgo.WithDemo(a.cfg.FrontGo.Demo),
		frontgo.WithTimeout(a.cfg.FrontGo.Timeout),
		frontgo.WithMaxRetries(a.cfg.FrontGo.MaxRetries),
		frontgo.WithRetryWait(a.cfg.FrontGo.RetryWaitMin, a.cfg.FrontGo.RetryWaitMax),
		frontgo.WithUserAgent("frontgo-cli/" + version),
	}
	if a.cfg.FrontGo.BaseURL != "" {
		opts = append(opts, frontgo.WithBaseURL(a.cfg.FrontGo.BaseURL))
	}

	client, err := frontgo.NewClient(a.cfg.FrontGo.APIKey, a.logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FrontGo client: %w", err)
	}
	a.client = client
	a.baseURL = client.BaseURL()

	a.logger.Debug().
		Str("base_url", a.baseURL).
		Bool("demo", a.cfg.FrontGo.Demo).
		Msg("FrontGo client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(w io.Writer, cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(w),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError reports API errors with their classification
func printError(w io.Writer, err error) {
	var apiErr *frontgo.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintf(w, "Error: FrontGo %s (HTTP %d)\n%s\n", apiErr.Kind, apiErr.StatusCode, apiErr.Error())
		if apiErr.IsUnauthorized() {
			fmt.Fprintln(w, "Check frontgo.api_key and whether --demo matches the key's environment.")
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
