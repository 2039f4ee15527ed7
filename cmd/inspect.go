package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
)

// init wires the inspect subcommand into the CLI.
func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:          "inspect",
	Short:        "Print the structure of the configured databases",
	Args:         usageArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		databases := resolver.Databases()
		for _, name := range []string{geoip.DatabaseLocation, geoip.DatabaseASN} {
			db, ok := databases[name]
			if !ok {
				continue
			}
			if err := writeMetadata(cmd.OutOrStdout(), name, db.Metadata()); err != nil {
				return err
			}
		}
		return nil
	},
}

// writeMetadata prints one block per database.
func writeMetadata(w io.Writer, name string, meta legacydb.Metadata) error {
	info := meta.Info
	if info == "" {
		info = "-"
	}
	_, err := fmt.Fprintf(w, "%s: %s\n  edition:       %s\n  segments:      %d\n  record length: %d\n  size:          %d bytes\n  info:          %s\n",
		name, meta.Path, meta.Edition, meta.Segments, meta.RecordLength, meta.Size, info)
	return err
}
