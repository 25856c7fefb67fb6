package codec

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
)

// OrbCodec implements the Codec interface using github.com/paulmach/orb.
type OrbCodec struct {
	log *slog.Logger // Logger for logging operations
}

// NewOrbCodec creates an orb backed codec.
func NewOrbCodec(log *slog.Logger) *OrbCodec {
	return &OrbCodec{log: log}
}

// Name returns the codec type.
func (oc *OrbCodec) Name() string {
	return string(TypeOrb)
}

// MarshalWKB encodes g as little-endian WKB.
func (oc *OrbCodec) MarshalWKB(g models.Geometry) ([]byte, error) {
	og, err := ToOrb(g)
	if err != nil {
		return nil, codecError(oc.Name(), "build", g.Kind(), err)
	}

	data, err := wkb.Marshal(og, binary.LittleEndian)
	if err != nil {
		return nil, codecError(oc.Name(), "marshal wkb", g.Kind(), err)
	}
	oc.log.Debug("Encoded WKB", "codec", oc.Name(), "kind", g.Kind().String(), "bytes", len(data))

	return data, nil
}

// MarshalWKT encodes g as WKT.
func (oc *OrbCodec) MarshalWKT(g models.Geometry) (string, error) {
	og, err := ToOrb(g)
	if err != nil {
		return "", codecError(oc.Name(), "build", g.Kind(), err)
	}

	return wkt.MarshalString(og), nil
}

// UnmarshalWKB decodes WKB into a geometry.
func (oc *OrbCodec) UnmarshalWKB(data []byte) (models.Geometry, error) {
	og, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s unmarshal wkb: %w", ErrCodec, oc.Name(), err)
	}

	return FromOrb(og)
}

// UnmarshalWKT decodes WKT into a geometry.
func (oc *OrbCodec) UnmarshalWKT(s string) (models.Geometry, error) {
	og, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s unmarshal wkt: %w", ErrCodec, oc.Name(), err)
	}

	return FromOrb(og)
}

// ToOrb converts g into the equivalent orb geometry.
func ToOrb(g models.Geometry) (orb.Geometry, error) {
	switch g := g.(type) {
	case models.Point:
		return toOrbPoint(g.Coord), nil
	case models.LineString:
		return toOrbLineString(g.Coords), nil
	case models.Polygon:
		return toOrbPolygon(g.Rings), nil
	case models.MultiPoint:
		points := make(orb.MultiPoint, len(g.Points))
		for i, p := range g.Points {
			points[i] = toOrbPoint(p.Coord)
		}
		return points, nil
	case models.MultiLineString:
		lines := make(orb.MultiLineString, len(g.LineStrings))
		for i, ls := range g.LineStrings {
			lines[i] = toOrbLineString(ls.Coords)
		}
		return lines, nil
	case models.MultiPolygon:
		polygons := make(orb.MultiPolygon, len(g.Polygons))
		for i, p := range g.Polygons {
			polygons[i] = toOrbPolygon(p.Rings)
		}
		return polygons, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}

// FromOrb converts an orb geometry back into a geometry.
func FromOrb(og orb.Geometry) (models.Geometry, error) {
	switch og := og.(type) {
	case orb.Point:
		return models.Point{Coord: fromOrbPoint(og)}, nil
	case orb.LineString:
		return models.LineString{Coords: fromOrbPoints(og)}, nil
	case orb.Polygon:
		return fromOrbPolygon(og), nil
	case orb.MultiPoint:
		points := make([]models.Point, len(og))
		for i, p := range og {
			points[i] = models.Point{Coord: fromOrbPoint(p)}
		}
		return models.MultiPoint{Points: points}, nil
	case orb.MultiLineString:
		lines := make([]models.LineString, len(og))
		for i, ls := range og {
			lines[i] = models.LineString{Coords: fromOrbPoints(ls)}
		}
		return models.MultiLineString{LineStrings: lines}, nil
	case orb.MultiPolygon:
		polygons := make([]models.Polygon, len(og))
		for i, p := range og {
			polygons[i] = fromOrbPolygon(p)
		}
		return models.MultiPolygon{Polygons: polygons}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, og)
	}
}

func toOrbPoint(c models.Coordinate) orb.Point {
	return orb.Point{c.X, c.Y}
}

func toOrbLineString(coords []models.Coordinate) orb.LineString {
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = toOrbPoint(c)
	}

	return ls
}

func toOrbPolygon(rings [][]models.Coordinate) orb.Polygon {
	polygon := make(orb.Polygon, len(rings))
	for i, ring := range rings {
		polygon[i] = orb.Ring(toOrbLineString(ring))
	}

	return polygon
}

func fromOrbPoint(p orb.Point) models.Coordinate {
	return models.Coordinate{X: p.X(), Y: p.Y()}
}

func fromOrbPoints(points []orb.Point) []models.Coordinate {
	coords := make([]models.Coordinate, len(points))
	for i, p := range points {
		coords[i] = fromOrbPoint(p)
	}

	return coords
}

func fromOrbPolygon(p orb.Polygon) models.Polygon {
	rings := make([][]models.Coordinate, len(p))
	for i, ring := range p {
		rings[i] = fromOrbPoints(ring)
	}

	return models.Polygon{Rings: rings}
}
