package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/fixturegen/internal/fixture"
	"github.com/UnknownOlympus/fixturegen/internal/metrics"
	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/UnknownOlympus/fixturegen/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

// Generator produces the fixture table.
type Generator interface {
	Generate() (models.Table, error)
}

// Verifier checks the fixture table before anything is written.
type Verifier interface {
	VerifyTable(table models.Table) error
}

// Options holds the outputs of a generation run. Empty paths disable the
// corresponding output; Output is always written.
type Options struct {
	Output        string          // Path of the Go source artifact
	GeoJSONOutput string          // Path of the GeoJSON companion
	MetricsFile   string          // Path of the node exporter textfile
	Render        fixture.Options // Package, variable and generate command of the artifact
}

// GenerationService runs one generation pass: it builds the table, verifies
// it, writes the artifacts and publishes the table to the fixture store.
type GenerationService struct {
	log       *slog.Logger         // Logger for logging service activities
	generator Generator            // Generator producing the table
	verifier  Verifier             // Verifier checking the table, nil to skip
	repo      repository.Interface // Fixture store, nil to skip publication
	metrics   *metrics.Metrics     // Metrics for tracking service performance
	gatherer  prometheus.Gatherer  // Registry exported to the metrics textfile
	opts      Options              // Output locations
}

// NewGenerationService creates a new instance of GenerationService.
// A nil verifier disables verification and a nil repo disables publication.
func NewGenerationService(
	log *slog.Logger,
	generator Generator,
	verifier Verifier,
	repo repository.Interface,
	metrics *metrics.Metrics,
	gatherer prometheus.Gatherer,
	opts Options,
) *GenerationService {
	return &GenerationService{
		log:       log,
		generator: generator,
		verifier:  verifier,
		repo:      repo,
		metrics:   metrics,
		gatherer:  gatherer,
		opts:      opts,
	}
}

// Run generates the table and writes every configured output. Every output is
// rendered in memory and the table is published before the first file is
// written, so a failed run leaves no output behind.
func (gs *GenerationService) Run(ctx context.Context) error {
	gs.log.InfoContext(ctx, "Generating fixtures...")

	table, err := gs.generator.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate fixtures: %w", err)
	}

	if gs.verifier != nil {
		if err = gs.verifier.VerifyTable(table); err != nil {
			gs.metrics.VerifyFailures.Inc()
			return fmt.Errorf("failed to verify fixtures: %w", err)
		}
		gs.log.DebugContext(ctx, "Fixtures verified", "records", len(table.Records))
	}

	src, err := fixture.Render(table, gs.opts.Render)
	if err != nil {
		return fmt.Errorf("failed to render fixtures: %w", err)
	}

	var outputs []fixture.Output

	if gs.opts.GeoJSONOutput != "" {
		data, gjErr := fixture.RenderGeoJSON(table)
		if gjErr != nil {
			return fmt.Errorf("failed to render geojson: %w", gjErr)
		}
		outputs = append(outputs, fixture.Output{Path: gs.opts.GeoJSONOutput, Data: data})
	}

	if gs.repo != nil {
		if err = gs.publish(ctx, table); err != nil {
			return err
		}
	}

	if gs.opts.MetricsFile != "" {
		text, mErr := metrics.Text(gs.gatherer)
		if mErr != nil {
			return fmt.Errorf("failed to render metrics: %w", mErr)
		}
		outputs = append(outputs, fixture.Output{Path: gs.opts.MetricsFile, Data: text})
	}

	// The Go source goes last: its presence marks a completed run.
	outputs = append(outputs, fixture.Output{Path: gs.opts.Output, Data: src})

	if err = fixture.WriteFiles(outputs...); err != nil {
		return fmt.Errorf("failed to write fixtures: %w", err)
	}

	for _, out := range outputs {
		gs.log.DebugContext(ctx, "Output written", "path", out.Path, "bytes", len(out.Data))
	}

	gs.log.InfoContext(ctx, "Fixtures generated", "records", len(table.Records), "output", gs.opts.Output)

	return nil
}

func (gs *GenerationService) publish(ctx context.Context, table models.Table) error {
	if err := gs.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare fixture store: %w", err)
	}

	stored, err := gs.repo.SaveTable(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to publish fixtures: %w", err)
	}
	gs.metrics.RecordsPublished.Set(float64(stored))
	gs.log.DebugContext(ctx, "Fixtures published", "records", stored)

	return nil
}
