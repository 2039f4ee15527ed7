package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/logging"
	"github.com/gtriggiano/geoip-lookup/pkg/metrics"
	"github.com/gtriggiano/geoip-lookup/pkg/service"
)

// init wires the start subcommand into the CLI.
func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:           "start",
	Short:         "Start the enrichment server",
	Long:          "Serve the Envoy external authorization API, allowing every request and adding GeoIP and ASN headers for the client address.",
	Args:          usageArgs(cobra.NoArgs),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		baseLogger, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		defer func() { _ = baseLogger.Sync() }()
		logger := baseLogger.With(zap.String("component", "cli"))

		runCtx, cancelRunCtx := context.WithCancel(context.Background())
		defer cancelRunCtx()

		metricsServer := metrics.NewServer(cfg.Metrics, baseLogger.With(zap.String("component", "metrics-server")))
		metricsServer.SetReady(false)
		instrumentation := metricsServer.Instrumentation()

		resolver, err := geoip.Open(
			cfg.Databases,
			geoip.WithObserver(instrumentation),
			geoip.WithLogger(baseLogger.With(zap.String("component", "resolver"))),
		)
		if err != nil {
			logger.Error("could not open databases", zap.Error(err))
			return err
		}
		for name, db := range resolver.Databases() {
			instrumentation.ObserveDatabase(name, db.Metadata())
		}
		metricsServer.AddHealthCheckers(resolver)

		serviceServer, err := service.NewServer(
			cfg.Server,
			service.NewManager(
				resolver,
				instrumentation,
				cfg.Server.ClientIPHeader,
				baseLogger.With(zap.String("component", "service-manager")),
			),
			baseLogger.With(zap.String("component", "service-server")),
		)
		if err != nil {
			logger.Error("could not create gRPC server", zap.Error(err))
			return err
		}

		serversGroup, serversCtx := errgroup.WithContext(runCtx)

		serversGroup.Go(func() error {
			return metricsServer.Start(serversCtx)
		})

		serversGroup.Go(func() error {
			return serviceServer.Start(serversCtx, func() { metricsServer.SetReady(true) })
		})

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigCh)

		done := make(chan struct{})
		defer close(done)

		go func() {
			select {
			case <-sigCh:
				logger.Info("shutdown signal received")
				cancelRunCtx()
				timeout := cfg.Shutdown.ShutdownTimeout()
				timer := time.NewTimer(timeout)
				defer timer.Stop()
				select {
				case <-done:
				case <-timer.C:
					logger.Error("shutdown timed out", zap.String("timeout", timeout.String()))
					os.Exit(1)
				}
			case <-done:
				return
			}
		}()

		if err := serversGroup.Wait(); err != nil && runCtx.Err() == nil {
			logger.Error("server exited with error", zap.Error(err))
			return err
		}
		return nil
	},
}
