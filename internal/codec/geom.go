package codec

import (
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// GeomCodec implements the Codec interface using github.com/twpayne/go-geom.
// WKB is written little-endian (NDR) without SRID; WKT uses the default precision.
type GeomCodec struct {
	log *slog.Logger // Logger for logging operations
}

// NewGeomCodec creates a go-geom backed codec.
func NewGeomCodec(log *slog.Logger) *GeomCodec {
	return &GeomCodec{log: log}
}

// Name returns the codec type.
func (gc *GeomCodec) Name() string {
	return string(TypeGeom)
}

// MarshalWKB encodes g as NDR WKB.
func (gc *GeomCodec) MarshalWKB(g models.Geometry) ([]byte, error) {
	t, err := ToGeom(g)
	if err != nil {
		return nil, codecError(gc.Name(), "build", g.Kind(), err)
	}

	data, err := wkb.Marshal(t, wkb.NDR)
	if err != nil {
		return nil, codecError(gc.Name(), "marshal wkb", g.Kind(), err)
	}
	gc.log.Debug("Encoded WKB", "codec", gc.Name(), "kind", g.Kind().String(), "bytes", len(data))

	return data, nil
}

// MarshalWKT encodes g as WKT.
func (gc *GeomCodec) MarshalWKT(g models.Geometry) (string, error) {
	t, err := ToGeom(g)
	if err != nil {
		return "", codecError(gc.Name(), "build", g.Kind(), err)
	}

	text, err := wkt.Marshal(t)
	if err != nil {
		return "", codecError(gc.Name(), "marshal wkt", g.Kind(), err)
	}

	return text, nil
}

// UnmarshalWKB decodes WKB into a geometry.
func (gc *GeomCodec) UnmarshalWKB(data []byte) (models.Geometry, error) {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s unmarshal wkb: %w", ErrCodec, gc.Name(), err)
	}

	return FromGeom(t)
}

// UnmarshalWKT decodes WKT into a geometry.
func (gc *GeomCodec) UnmarshalWKT(s string) (models.Geometry, error) {
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s unmarshal wkt: %w", ErrCodec, gc.Name(), err)
	}

	return FromGeom(t)
}

// ToGeom converts g into the equivalent go-geom value with the XY layout.
func ToGeom(g models.Geometry) (geom.T, error) {
	switch g := g.(type) {
	case models.Point:
		return geom.NewPoint(geom.XY).SetCoords(toGeomCoord(g.Coord))
	case models.LineString:
		return geom.NewLineString(geom.XY).SetCoords(toGeomCoords(g.Coords))
	case models.Polygon:
		return geom.NewPolygon(geom.XY).SetCoords(toGeomRings(g.Rings))
	case models.MultiPoint:
		coords := make([]geom.Coord, len(g.Points))
		for i, p := range g.Points {
			coords[i] = toGeomCoord(p.Coord)
		}
		return geom.NewMultiPoint(geom.XY).SetCoords(coords)
	case models.MultiLineString:
		lines := make([][]geom.Coord, len(g.LineStrings))
		for i, ls := range g.LineStrings {
			lines[i] = toGeomCoords(ls.Coords)
		}
		return geom.NewMultiLineString(geom.XY).SetCoords(lines)
	case models.MultiPolygon:
		polygons := make([][][]geom.Coord, len(g.Polygons))
		for i, p := range g.Polygons {
			polygons[i] = toGeomRings(p.Rings)
		}
		return geom.NewMultiPolygon(geom.XY).SetCoords(polygons)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}

// FromGeom converts an XY go-geom value back into a geometry.
func FromGeom(t geom.T) (models.Geometry, error) {
	if t.Layout() != geom.XY {
		return nil, fmt.Errorf("%w: layout %v", ErrUnsupportedGeometry, t.Layout())
	}

	switch t := t.(type) {
	case *geom.Point:
		return models.Point{Coord: fromGeomCoord(t.Coords())}, nil
	case *geom.LineString:
		return models.LineString{Coords: fromGeomCoords(t.Coords())}, nil
	case *geom.Polygon:
		return models.Polygon{Rings: fromGeomRings(t.Coords())}, nil
	case *geom.MultiPoint:
		coords := t.Coords()
		points := make([]models.Point, len(coords))
		for i, c := range coords {
			points[i] = models.Point{Coord: fromGeomCoord(c)}
		}
		return models.MultiPoint{Points: points}, nil
	case *geom.MultiLineString:
		coords := t.Coords()
		lines := make([]models.LineString, len(coords))
		for i, c := range coords {
			lines[i] = models.LineString{Coords: fromGeomCoords(c)}
		}
		return models.MultiLineString{LineStrings: lines}, nil
	case *geom.MultiPolygon:
		coords := t.Coords()
		polygons := make([]models.Polygon, len(coords))
		for i, c := range coords {
			polygons[i] = models.Polygon{Rings: fromGeomRings(c)}
		}
		return models.MultiPolygon{Polygons: polygons}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, t)
	}
}

func toGeomCoord(c models.Coordinate) geom.Coord {
	return geom.Coord{c.X, c.Y}
}

func toGeomCoords(coords []models.Coordinate) []geom.Coord {
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		out[i] = toGeomCoord(c)
	}

	return out
}

func toGeomRings(rings [][]models.Coordinate) [][]geom.Coord {
	out := make([][]geom.Coord, len(rings))
	for i, ring := range rings {
		out[i] = toGeomCoords(ring)
	}

	return out
}

func fromGeomCoord(c geom.Coord) models.Coordinate {
	return models.Coordinate{X: c.X(), Y: c.Y()}
}

func fromGeomCoords(coords []geom.Coord) []models.Coordinate {
	out := make([]models.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = fromGeomCoord(c)
	}

	return out
}

func fromGeomRings(rings [][]geom.Coord) [][]models.Coordinate {
	out := make([][]models.Coordinate, len(rings))
	for i, ring := range rings {
		out[i] = fromGeomCoords(ring)
	}

	return out
}
