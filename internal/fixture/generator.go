// Package fixture generates the fixture table and renders it as Go source.
package fixture

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/fixturegen/internal/builder"
	"github.com/UnknownOlympus/fixturegen/internal/codec"
	"github.com/UnknownOlympus/fixturegen/internal/literal"
	"github.com/UnknownOlympus/fixturegen/internal/metrics"
	"github.com/UnknownOlympus/fixturegen/internal/models"
)

// DefaultCount is the number of records generated per geometry kind.
const DefaultCount = 8

// ErrInvalidCount is returned when the per-kind record count is not positive.
var ErrInvalidCount = errors.New("record count must be positive")

// Generator builds geometries kind by kind and encodes each one into a record.
type Generator struct {
	log     *slog.Logger     // Logger for logging generation progress
	builder *builder.Builder // Builder drawing from the seeded source
	codec   codec.Codec      // Codec producing the WKB and WKT views
	metrics *metrics.Metrics // Metrics for tracking generated records
	seed    int64            // Seed the builder source was created with
	count   int              // Number of records per kind
}

// NewGenerator creates a Generator emitting count records of every kind.
func NewGenerator(
	log *slog.Logger,
	bld *builder.Builder,
	c codec.Codec,
	metrics *metrics.Metrics,
	seed int64,
	count int,
) (*Generator, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	return &Generator{log: log, builder: bld, codec: c, metrics: metrics, seed: seed, count: count}, nil
}

// Generate builds the whole table in memory. Records are grouped by kind in
// models.Kinds order and keep their generation order within a kind. The first
// error aborts generation.
func (g *Generator) Generate() (models.Table, error) {
	table := models.Table{
		Seed:    g.seed,
		Records: make([]models.Record, 0, len(models.Kinds)*g.count),
	}

	for _, kind := range models.Kinds {
		for i := range g.count {
			rec, err := g.record(kind)
			if err != nil {
				return models.Table{}, fmt.Errorf("failed to generate %s #%d: %w", kind, i, err)
			}
			table.Records = append(table.Records, rec)
		}
		g.log.Debug("Generated records", "kind", kind.String(), "count", g.count)
	}

	g.log.Info("Fixture table generated", "records", len(table.Records), "seed", g.seed, "codec", g.codec.Name())

	return table, nil
}

func (g *Generator) record(kind models.Kind) (models.Record, error) {
	geometry, err := g.builder.Build(kind)
	if err != nil {
		return models.Record{}, err
	}

	start := time.Now()
	enc, err := codec.Encode(g.codec, geometry)
	g.metrics.EncodeSeconds.WithLabelValues(g.codec.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		return models.Record{}, err
	}

	g.metrics.RecordsGenerated.WithLabelValues(kind.String()).Inc()
	g.metrics.Coordinates.WithLabelValues(kind.String()).Add(float64(countCoordinates(geometry.Nested())))
	g.metrics.WKBBytes.Observe(float64(len(enc.WKB)))

	return models.Record{
		Geometry:   geometry,
		Literal:    literal.Expression(geometry),
		WKBHex:     enc.Hex,
		WKB:        enc.WKB,
		WKBEscaped: enc.Escaped,
		WKT:        enc.WKT,
	}, nil
}

func countCoordinates(n models.Nested) int {
	if n.Depth() == 0 {
		return 1
	}

	total := 0
	for _, child := range n.Children() {
		total += countCoordinates(child)
	}

	return total
}
