package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/fixturegen/internal/builder"
	"github.com/UnknownOlympus/fixturegen/internal/codec"
	"github.com/UnknownOlympus/fixturegen/internal/config"
	"github.com/UnknownOlympus/fixturegen/internal/fixture"
	"github.com/UnknownOlympus/fixturegen/internal/metrics"
	"github.com/UnknownOlympus/fixturegen/internal/random"
	"github.com/UnknownOlympus/fixturegen/internal/repository"
	"github.com/UnknownOlympus/fixturegen/internal/service"
	"github.com/UnknownOlympus/fixturegen/internal/verify"
	"github.com/prometheus/client_golang/prometheus"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application. It takes no arguments: every
// setting comes from defaults, an optional .env or fixturegen.yaml file and
// FIXTUREGEN_* environment variables.
func main() {
	// Cancel publication to the fixture store on an interrupt signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	reg, appMetrics := newRegistry()

	if err := run(ctx, cfg, logger, reg, appMetrics); err != nil {
		logger.ErrorContext(ctx, "Fixture generation failed", "error", err)
		stop()
		os.Exit(1)
	}
	stop()
}

// newRegistry creates the registry exported to the metrics textfile. It holds
// only fixturegen collectors: the node exporter reporting the textfile already
// exports its own go_* and process_* series.
func newRegistry() (*prometheus.Registry, *metrics.Metrics) {
	reg := prometheus.NewRegistry()
	return reg, metrics.NewMetrics(reg)
}

// run wires the generator, verifier and optional fixture store from cfg and
// executes a single generation pass.
func run(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	reg *prometheus.Registry,
	appMetrics *metrics.Metrics,
) error {
	// Create the codec using factory pattern based on configuration.
	primary, err := codec.NewCodec(codec.Config{Type: codec.Type(cfg.Codec), Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to create codec: %w", err)
	}
	logger.InfoContext(ctx, "Codec initialized", "type", cfg.Codec)

	bld, err := builder.New(random.NewSource(cfg.Seed), builder.DefaultLimits())
	if err != nil {
		return fmt.Errorf("failed to create geometry builder: %w", err)
	}

	gen, err := fixture.NewGenerator(logger, bld, primary, appMetrics, cfg.Seed, cfg.Count)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	// The counterpart codec decodes every record independently of the primary one.
	var verifier service.Verifier
	if cfg.Verify {
		reference, errCodec := codec.NewCodec(codec.Config{Type: codec.Counterpart(codec.Type(cfg.Codec)), Logger: logger})
		if errCodec != nil {
			return fmt.Errorf("failed to create reference codec: %w", errCodec)
		}
		verifier = verify.New(primary, reference, logger)
	}

	var repo repository.Interface
	if cfg.Database.Enabled() {
		dtb, errDB := repository.NewDatabase(
			ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		if errDB != nil {
			return fmt.Errorf("failed to connect to DB: %w", errDB)
		}
		defer dtb.Close()

		repo = repository.NewRepository(dtb, logger)
		logger.InfoContext(ctx, "Fixture store connected", "host", cfg.Database.Host, "db", cfg.Database.Name)
	}

	render := fixture.DefaultOptions()
	render.Package = cfg.Package
	render.Variable = cfg.Variable

	genService := service.NewGenerationService(logger, gen, verifier, repo, appMetrics, reg, service.Options{
		Output:        cfg.Output,
		GeoJSONOutput: cfg.GeoJSONOutput,
		MetricsFile:   cfg.MetricsFile,
		Render:        render,
	})

	return genService.Run(ctx)
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}
