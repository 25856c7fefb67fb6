package models

// Kind identifies one of the six supported geometry variants.
type Kind int

const (
	KindPoint Kind = iota + 1
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
)

// Kinds lists every geometry kind in fixture emission order.
var Kinds = []Kind{
	KindPoint,
	KindLineString,
	KindPolygon,
	KindMultiPoint,
	KindMultiLineString,
	KindMultiPolygon,
}

// String returns the OGC type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the six supported kinds.
func (k Kind) Valid() bool {
	return k >= KindPoint && k <= KindMultiPolygon
}

// Geometry is a closed set of geometry variants. Only the types declared in
// this package implement it.
type Geometry interface {
	Kind() Kind
	Nested() Nested
	sealed()
}

// Point is a single position.
type Point struct {
	Coord Coordinate
}

// LineString is an ordered sequence of at least two positions.
type LineString struct {
	Coords []Coordinate
}

// Polygon is an exterior ring followed by zero or more interior rings.
// Rings are closed: the last coordinate repeats the first.
type Polygon struct {
	Rings [][]Coordinate
}

// MultiPoint is a non-empty collection of points.
type MultiPoint struct {
	Points []Point
}

// MultiLineString is a non-empty collection of line strings.
type MultiLineString struct {
	LineStrings []LineString
}

// MultiPolygon is a non-empty collection of polygons.
type MultiPolygon struct {
	Polygons []Polygon
}

func (Point) Kind() Kind           { return KindPoint }
func (LineString) Kind() Kind      { return KindLineString }
func (Polygon) Kind() Kind         { return KindPolygon }
func (MultiPoint) Kind() Kind      { return KindMultiPoint }
func (MultiLineString) Kind() Kind { return KindMultiLineString }
func (MultiPolygon) Kind() Kind    { return KindMultiPolygon }

func (Point) sealed()           {}
func (LineString) sealed()      {}
func (Polygon) sealed()         {}
func (MultiPoint) sealed()      {}
func (MultiLineString) sealed() {}
func (MultiPolygon) sealed()    {}

// Nested returns the depth 0 structure of the point.
func (g Point) Nested() Nested {
	return Leaf(g.Coord)
}

// Nested returns the depth 1 structure of the line string.
func (g LineString) Nested() Nested {
	return Coordinates(g.Coords)
}

// Nested returns the depth 2 structure of the polygon rings.
func (g Polygon) Nested() Nested {
	rings := make([]Nested, len(g.Rings))
	for i, ring := range g.Rings {
		rings[i] = Coordinates(ring)
	}

	return Sequence(2, rings...)
}

// Nested returns the depth 1 structure of the member positions.
func (g MultiPoint) Nested() Nested {
	points := make([]Nested, len(g.Points))
	for i, p := range g.Points {
		points[i] = p.Nested()
	}

	return Sequence(1, points...)
}

// Nested returns the depth 2 structure of the member line strings.
func (g MultiLineString) Nested() Nested {
	lines := make([]Nested, len(g.LineStrings))
	for i, ls := range g.LineStrings {
		lines[i] = ls.Nested()
	}

	return Sequence(2, lines...)
}

// Nested returns the depth 3 structure of the member polygons.
func (g MultiPolygon) Nested() Nested {
	polygons := make([]Nested, len(g.Polygons))
	for i, p := range g.Polygons {
		polygons[i] = p.Nested()
	}

	return Sequence(3, polygons...)
}

// Exterior returns the exterior ring of the polygon.
func (g Polygon) Exterior() []Coordinate {
	if len(g.Rings) == 0 {
		return nil
	}

	return g.Rings[0]
}

// Interiors returns the interior rings of the polygon.
func (g Polygon) Interiors() [][]Coordinate {
	if len(g.Rings) <= 1 {
		return nil
	}

	return g.Rings[1:]
}
