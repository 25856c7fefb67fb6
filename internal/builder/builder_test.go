package builder_test

import (
	"testing"

	"github.com/UnknownOlympus/fixturegen/internal/builder"
	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/UnknownOlympus/fixturegen/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource replays fixed reals and integers, cycling when exhausted.
type stubSource struct {
	reals []float64
	ints  []int
	ri    int
	ii    int
}

func (s *stubSource) IntRange(lo, hi int) int {
	if len(s.ints) == 0 {
		return lo
	}
	n := s.ints[s.ii%len(s.ints)]
	s.ii++
	if n < lo || n > hi {
		panic("stub integer outside requested range")
	}

	return n
}

func (s *stubSource) Real() float64 {
	v := s.reals[s.ri%len(s.reals)]
	s.ri++

	return v
}

func (s *stubSource) Coordinate() models.Coordinate {
	x := s.Real()
	y := s.Real()

	return models.Coordinate{X: x, Y: y}
}

func TestLineStringN_FixedSource(t *testing.T) {
	t.Parallel()

	src := &stubSource{reals: []float64{0.5, -0.25, 0.1, 0.1}}
	bld, err := builder.New(src, builder.DefaultLimits())
	require.NoError(t, err)

	line := bld.LineStringN(2)

	assert.Equal(t, []models.Coordinate{{X: 0.5, Y: -0.25}, {X: 0.1, Y: 0.1}}, line.Coords)
	assert.Equal(t, 4, src.ri, "two coordinates consume four reals")
}

func TestPoint_ConsumesOneCoordinate(t *testing.T) {
	t.Parallel()

	src := &stubSource{reals: []float64{0.5, -0.25, 0.1, 0.1}}
	bld, err := builder.New(src, builder.DefaultLimits())
	require.NoError(t, err)

	point := bld.Point()

	assert.Equal(t, models.Coordinate{X: 0.5, Y: -0.25}, point.Coord)
	assert.Equal(t, 2, src.ri)
}

func TestPolygon_DrawOrder(t *testing.T) {
	t.Parallel()

	// exterior of 3 positions, one hole of 4 positions
	src := &stubSource{reals: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, ints: []int{3, 1, 4}}
	bld, err := builder.New(src, builder.DefaultLimits())
	require.NoError(t, err)

	polygon := bld.Polygon()

	require.Len(t, polygon.Rings, 2)
	assert.Len(t, polygon.Exterior(), 4)
	assert.Len(t, polygon.Interiors()[0], 5)
	assert.Equal(t, polygon.Exterior()[0], polygon.Exterior()[3])
	assert.Equal(t, 3, src.ii)
}

func TestBuild_StructuralValidity(t *testing.T) {
	t.Parallel()

	limits := builder.DefaultLimits()

	for seed := range int64(20) {
		bld, err := builder.New(random.NewSource(seed), limits)
		require.NoError(t, err)

		for _, kind := range models.Kinds {
			for range 8 {
				g, err := bld.Build(kind)
				require.NoError(t, err)
				require.Equal(t, kind, g.Kind())
				checkGeometry(t, limits, g)
			}
		}
	}
}

func checkGeometry(t *testing.T, limits builder.Limits, g models.Geometry) {
	t.Helper()

	switch g := g.(type) {
	case models.Point:
		assert.InDelta(t, 0, g.Coord.X, 1)
		assert.InDelta(t, 0, g.Coord.Y, 1)
	case models.LineString:
		assert.GreaterOrEqual(t, len(g.Coords), limits.MinLineString)
		assert.LessOrEqual(t, len(g.Coords), limits.MaxLineString)
	case models.Polygon:
		require.NotEmpty(t, g.Rings)
		assert.LessOrEqual(t, len(g.Interiors()), limits.MaxInteriorRings)
		for _, ring := range g.Rings {
			assert.GreaterOrEqual(t, len(ring)-1, limits.MinRing)
			assert.LessOrEqual(t, len(ring)-1, limits.MaxRing)
			assert.Equal(t, ring[0], ring[len(ring)-1], "ring must be closed")
		}
	case models.MultiPoint:
		checkMembers(t, limits, len(g.Points))
	case models.MultiLineString:
		checkMembers(t, limits, len(g.LineStrings))
		for _, ls := range g.LineStrings {
			checkGeometry(t, limits, ls)
		}
	case models.MultiPolygon:
		checkMembers(t, limits, len(g.Polygons))
		for _, p := range g.Polygons {
			checkGeometry(t, limits, p)
		}
	default:
		t.Fatalf("unexpected geometry %T", g)
	}
}

func checkMembers(t *testing.T, limits builder.Limits, n int) {
	t.Helper()
	assert.GreaterOrEqual(t, n, limits.MinMembers)
	assert.LessOrEqual(t, n, limits.MaxMembers)
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := builder.New(random.NewSource(11), builder.DefaultLimits())
	require.NoError(t, err)
	second, err := builder.New(random.NewSource(11), builder.DefaultLimits())
	require.NoError(t, err)

	for _, kind := range models.Kinds {
		a, err := first.Build(kind)
		require.NoError(t, err)
		b, err := second.Build(kind)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	t.Parallel()

	bld, err := builder.New(random.NewSource(0), builder.DefaultLimits())
	require.NoError(t, err)

	g, err := bld.Build(models.Kind(99))

	require.Nil(t, g)
	require.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestLimits_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*builder.Limits)
	}{
		{"line string below minimum", func(l *builder.Limits) { l.MinLineString = 1 }},
		{"line string inverted", func(l *builder.Limits) { l.MaxLineString = 1 }},
		{"ring below minimum", func(l *builder.Limits) { l.MinRing = 2 }},
		{"ring inverted", func(l *builder.Limits) { l.MinRing, l.MaxRing = 5, 4 }},
		{"negative interior rings", func(l *builder.Limits) { l.MaxInteriorRings = -1 }},
		{"no members", func(l *builder.Limits) { l.MinMembers = 0 }},
		{"members inverted", func(l *builder.Limits) { l.MinMembers, l.MaxMembers = 3, 2 }},
	}

	require.NoError(t, builder.DefaultLimits().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			limits := builder.DefaultLimits()
			tt.mutate(&limits)

			bld, err := builder.New(random.NewSource(0), limits)

			require.Nil(t, bld)
			require.ErrorIs(t, err, builder.ErrInvalidLimits)
		})
	}
}
