// Package cmd provides the command-line interface of geoip-lookup using the Cobra
// framework. The root command resolves addresses; subcommands inspect the databases
// and run the enrichment server.
package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gtriggiano/geoip-lookup/pkg/config"
	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/logging"
)

var (
	cfgFile    string
	locationDB string
	asnDB      string
	logLevel   string
	workers    int

	inputFile   string
	tableOutput bool
	csvOutput   bool
	colorMode   string
)

// errUsage marks errors caused by an invalid combination of arguments.
var errUsage = errors.New("invalid usage")

// init wires the persistent flags shared by every command and the lookup flags.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to the configuration file")
	flags.StringVar(&locationDB, "city-db", "", "Path to the location database (default "+config.DefaultLocationDatabase+")")
	flags.StringVar(&asnDB, "asn-db", "", "Path to the ASNum database (default "+config.DefaultASNDatabase+")")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.IntVar(&workers, "workers", 0, "Concurrent lookups in bulk mode (default number of CPUs)")

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "File with one IPv4 address per line")
	rootCmd.Flags().BoolVarP(&tableOutput, "table", "t", false, "Print bulk results as a table")
	rootCmd.Flags().BoolVarP(&csvOutput, "csv", "c", false, "Print bulk results as CSV")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Highlight labels of the single address report (auto, always, never)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
}

// rootCmd resolves a single address or, with --file, a list of addresses.
var rootCmd = &cobra.Command{
	Use:   "geoip-lookup [ip]",
	Short: "Resolve IPv4 addresses to location and autonomous system data",
	Long: `Resolve IPv4 addresses to city, region, country, coordinates and autonomous
system using the legacy GeoLite City and ASNum databases.

A single address prints a labelled report. With --file every line of the file is
resolved and printed as a table (--table) or as CSV (--csv).`,
	Args:         usageArgs(cobra.MaximumNArgs(1)),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case inputFile == "" && len(args) == 0:
			_ = cmd.Help()
			return fmt.Errorf("%w: an IP address or --file is required", errUsage)
		case inputFile != "" && len(args) > 0:
			return fmt.Errorf("%w: an IP address and --file cannot be combined", errUsage)
		case tableOutput && csvOutput:
			return fmt.Errorf("%w: --table and --csv cannot be combined", errUsage)
		case inputFile != "" && !tableOutput && !csvOutput:
			return fmt.Errorf("%w: --file requires an output format, --table or --csv", errUsage)
		}

		colored, err := colorEnabled(colorMode)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err := cliLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		resolver, err := geoip.Open(cfg.Databases, geoip.WithLogger(logger.With(zap.String("component", "resolver"))))
		if err != nil {
			logger.Error("could not open databases", zap.Error(err))
			return err
		}

		if inputFile == "" {
			return lookupSingle(cmd.OutOrStdout(), resolver, args[0], colored)
		}
		return lookupBulk(cmd.Context(), cmd.OutOrStdout(), resolver, logger, bulkOptions{
			path:    inputFile,
			workers: cfg.Bulk.Workers,
			csv:     csvOutput,
		})
	},
}

// Execute runs the root Cobra command and returns any error encountered during execution.
// This is the main entry point called from main.go.
func Execute() error {
	return rootCmd.Execute()
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// loadConfig reads the configuration file when given, or starts from the defaults,
// then applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("city-db") {
		cfg.Databases.Location = locationDB
	}
	if flags.Changed("asn-db") {
		cfg.Databases.ASN = asnDB
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("workers") {
		cfg.Bulk.Workers = workers
	}

	cfg.ResolvePaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// cliLogger builds a logger writing to stderr so that stdout only carries reports.
func cliLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := cfg.Logging
	if logCfg.Output == "" {
		logCfg.Output = "stderr"
	}
	if logCfg.Format == "" {
		logCfg.Format = "console"
	}
	if logCfg.Level == "" {
		logCfg.Level = "warn"
	}
	return logging.New(logCfg)
}

// colorEnabled decides whether report labels are highlighted. In auto mode color
// follows the terminal detection of fatih/color, which honours NO_COLOR.
func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "auto", "":
		return !color.NoColor, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("%w: unknown --color value %q", errUsage, mode)
	}
}

// ExitCode maps command errors to process exit codes: 2 for usage errors, 1
// otherwise.
func ExitCode(err error) int {
	if errors.Is(err, errUsage) {
		return 2
	}
	return 1
}
