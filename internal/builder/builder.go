// Package builder assembles random geometries from a coordinate source.
//
// Builders enforce the structural minimums of each geometry kind (positions
// per line string, positions per ring, member counts) and nothing else: rings
// may self-intersect and holes may lie outside their shell.
package builder

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/UnknownOlympus/fixturegen/internal/random"
)

// OGC structural minimums.
const (
	minLineStringPositions = 2
	minRingPositions       = 3
	minMembers             = 1
)

var (
	// ErrInvalidLimits is returned when structural bounds are inconsistent.
	ErrInvalidLimits = errors.New("invalid builder limits")
	// ErrUnknownKind is returned when asked to build a kind outside the closed set.
	ErrUnknownKind = errors.New("unknown geometry kind")
)

// Limits holds the inclusive bounds of every random count drawn by a Builder.
type Limits struct {
	MinLineString    int // MinLineString is the fewest positions in a line string.
	MaxLineString    int // MaxLineString is the most positions in a line string.
	MinRing          int // MinRing is the fewest distinct positions in a ring.
	MaxRing          int // MaxRing is the most distinct positions in a ring.
	MaxInteriorRings int // MaxInteriorRings is the most holes in a polygon.
	MinMembers       int // MinMembers is the fewest members of a multi geometry.
	MaxMembers       int // MaxMembers is the most members of a multi geometry.
}

// DefaultLimits returns the bounds used for the fixture table.
func DefaultLimits() Limits {
	return Limits{
		MinLineString:    2,
		MaxLineString:    8,
		MinRing:          3,
		MaxRing:          8,
		MaxInteriorRings: 4,
		MinMembers:       1,
		MaxMembers:       8,
	}
}

// Validate checks that every range is well formed and honours the OGC minimums.
func (l Limits) Validate() error {
	switch {
	case l.MinLineString < minLineStringPositions || l.MaxLineString < l.MinLineString:
		return fmt.Errorf("%w: line string positions [%d, %d]", ErrInvalidLimits, l.MinLineString, l.MaxLineString)
	case l.MinRing < minRingPositions || l.MaxRing < l.MinRing:
		return fmt.Errorf("%w: ring positions [%d, %d]", ErrInvalidLimits, l.MinRing, l.MaxRing)
	case l.MaxInteriorRings < 0:
		return fmt.Errorf("%w: interior rings [0, %d]", ErrInvalidLimits, l.MaxInteriorRings)
	case l.MinMembers < minMembers || l.MaxMembers < l.MinMembers:
		return fmt.Errorf("%w: members [%d, %d]", ErrInvalidLimits, l.MinMembers, l.MaxMembers)
	}

	return nil
}

// Builder draws geometries from a Source. Every call advances the source.
type Builder struct {
	src    random.Source
	limits Limits
}

// New creates a Builder drawing from src within limits.
func New(src random.Source, limits Limits) (*Builder, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	return &Builder{src: src, limits: limits}, nil
}

// Build returns a new random geometry of the given kind.
func (b *Builder) Build(kind models.Kind) (models.Geometry, error) {
	switch kind {
	case models.KindPoint:
		return b.Point(), nil
	case models.KindLineString:
		return b.LineString(), nil
	case models.KindPolygon:
		return b.Polygon(), nil
	case models.KindMultiPoint:
		return b.MultiPoint(), nil
	case models.KindMultiLineString:
		return b.MultiLineString(), nil
	case models.KindMultiPolygon:
		return b.MultiPolygon(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// Point consumes exactly one coordinate.
func (b *Builder) Point() models.Point {
	return models.Point{Coord: b.src.Coordinate()}
}

// LineString draws a position count and then that many coordinates.
func (b *Builder) LineString() models.LineString {
	return b.LineStringN(b.src.IntRange(b.limits.MinLineString, b.limits.MaxLineString))
}

// LineStringN consumes n coordinates in order.
func (b *Builder) LineStringN(n int) models.LineString {
	return models.LineString{Coords: b.coords(n)}
}

// Ring draws a position count, that many coordinates, and closes the ring by
// repeating its first position.
func (b *Builder) Ring() []models.Coordinate {
	coords := b.coords(b.src.IntRange(b.limits.MinRing, b.limits.MaxRing))

	return append(coords, coords[0])
}

// Polygon builds the exterior ring, then draws the hole count and builds each hole.
func (b *Builder) Polygon() models.Polygon {
	exterior := b.Ring()
	holes := b.src.IntRange(0, b.limits.MaxInteriorRings)

	rings := make([][]models.Coordinate, 0, 1+holes)
	rings = append(rings, exterior)
	for range holes {
		rings = append(rings, b.Ring())
	}

	return models.Polygon{Rings: rings}
}

// MultiPoint draws a member count and builds that many points.
func (b *Builder) MultiPoint() models.MultiPoint {
	points := make([]models.Point, b.members())
	for i := range points {
		points[i] = b.Point()
	}

	return models.MultiPoint{Points: points}
}

// MultiLineString draws a member count and builds that many line strings.
func (b *Builder) MultiLineString() models.MultiLineString {
	lines := make([]models.LineString, b.members())
	for i := range lines {
		lines[i] = b.LineString()
	}

	return models.MultiLineString{LineStrings: lines}
}

// MultiPolygon draws a member count and builds that many polygons.
func (b *Builder) MultiPolygon() models.MultiPolygon {
	polygons := make([]models.Polygon, b.members())
	for i := range polygons {
		polygons[i] = b.Polygon()
	}

	return models.MultiPolygon{Polygons: polygons}
}

func (b *Builder) members() int {
	return b.src.IntRange(b.limits.MinMembers, b.limits.MaxMembers)
}

func (b *Builder) coords(n int) []models.Coordinate {
	coords := make([]models.Coordinate, n, n+1)
	for i := range coords {
		coords[i] = b.src.Coordinate()
	}

	return coords
}
