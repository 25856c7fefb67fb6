package models_test

import (
	"testing"

	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ring(coords ...models.Coordinate) []models.Coordinate {
	return append(coords, coords[0])
}

func TestNestedDepthByKind(t *testing.T) {
	t.Parallel()

	a := models.Coordinate{X: 0.5, Y: -0.25}
	b := models.Coordinate{X: 0.1, Y: 0.1}
	c := models.Coordinate{X: -1, Y: 1}
	point := models.Point{Coord: a}
	line := models.LineString{Coords: []models.Coordinate{a, b}}
	polygon := models.Polygon{Rings: [][]models.Coordinate{ring(a, b, c)}}

	tests := []struct {
		name     string
		geometry models.Geometry
		kind     models.Kind
		depth    int
	}{
		{"point", point, models.KindPoint, 0},
		{"line string", line, models.KindLineString, 1},
		{"polygon", polygon, models.KindPolygon, 2},
		{"multi point", models.MultiPoint{Points: []models.Point{point, point}}, models.KindMultiPoint, 1},
		{"multi line string", models.MultiLineString{LineStrings: []models.LineString{line}}, models.KindMultiLineString, 2},
		{"multi polygon", models.MultiPolygon{Polygons: []models.Polygon{polygon}}, models.KindMultiPolygon, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.geometry.Kind())
			assert.Equal(t, tt.depth, tt.geometry.Nested().Depth())
		})
	}
}

func TestNestedStructure(t *testing.T) {
	t.Parallel()

	a := models.Coordinate{X: 0.5, Y: -0.25}
	b := models.Coordinate{X: 0.1, Y: 0.1}

	nested := models.MultiPoint{Points: []models.Point{{Coord: a}, {Coord: b}}}.Nested()

	require.Len(t, nested.Children(), 2)
	assert.Equal(t, 0, nested.Children()[0].Depth())
	assert.Equal(t, a, nested.Children()[0].Coordinate())
	assert.Equal(t, b, nested.Children()[1].Coordinate())
}

func TestSequencePanics(t *testing.T) {
	t.Parallel()

	leaf := models.Leaf(models.Coordinate{})

	assert.PanicsWithValue(t, "models: sequence child has mismatched depth", func() {
		models.Sequence(2, leaf)
	})
	assert.PanicsWithValue(t, "models: sequence depth must be positive", func() {
		models.Sequence(0)
	})
}

func TestKindString(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(models.Kinds))
	for _, kind := range models.Kinds {
		assert.True(t, kind.Valid())
		names = append(names, kind.String())
	}

	assert.Equal(t,
		[]string{"Point", "LineString", "Polygon", "MultiPoint", "MultiLineString", "MultiPolygon"},
		names,
	)
	assert.False(t, models.Kind(0).Valid())
	assert.Equal(t, "Unknown", models.Kind(42).String())
}

func TestPolygonRings(t *testing.T) {
	t.Parallel()

	exterior := ring(models.Coordinate{X: 0, Y: 0}, models.Coordinate{X: 1, Y: 0}, models.Coordinate{X: 0, Y: 1})
	hole := ring(models.Coordinate{X: 0.1, Y: 0.1}, models.Coordinate{X: 0.2, Y: 0.1}, models.Coordinate{X: 0.1, Y: 0.2})

	assert.Nil(t, models.Polygon{Rings: [][]models.Coordinate{exterior}}.Interiors())

	polygon := models.Polygon{Rings: [][]models.Coordinate{exterior, hole}}
	assert.Equal(t, exterior, polygon.Exterior())
	assert.Equal(t, [][]models.Coordinate{hole}, polygon.Interiors())
}

func TestTableCountByKind(t *testing.T) {
	t.Parallel()

	point := models.Point{Coord: models.Coordinate{X: 1, Y: 2}}
	polygon := models.Polygon{Rings: [][]models.Coordinate{ring(
		models.Coordinate{X: 0, Y: 0}, models.Coordinate{X: 1, Y: 0}, models.Coordinate{X: 0, Y: 1},
	)}}

	table := models.Table{Records: []models.Record{
		{Geometry: point},
		{Geometry: point},
		{Geometry: polygon},
	}}

	counts := table.CountByKind()

	assert.Equal(t, 2, counts[models.KindPoint])
	assert.Equal(t, 1, counts[models.KindPolygon])
	assert.Zero(t, counts[models.KindMultiPolygon])
}

func TestRecordKind(t *testing.T) {
	t.Parallel()

	line := models.LineString{Coords: []models.Coordinate{{X: 0.5, Y: -0.25}, {X: 0.1, Y: 0.1}}}
	multi := models.MultiLineString{LineStrings: []models.LineString{line}}

	assert.Equal(t, models.KindLineString, models.Record{Geometry: line}.Kind())
	assert.Equal(t, models.KindMultiLineString, models.Record{Geometry: multi}.Kind())
	assert.Equal(t, models.Kind(0), models.Record{}.Kind())
	assert.False(t, models.Record{}.Kind().Valid())
}
