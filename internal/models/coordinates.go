package models

// Coordinate represents a planar position defined by its X and Y components.
type Coordinate struct {
	X float64 // X is the first ordinate (easting, longitude).
	Y float64 // Y is the second ordinate (northing, latitude).
}

// Nested is a coordinate structure of a statically known depth: a single
// coordinate at depth 0, or a sequence of structures one level shallower.
type Nested struct {
	depth    int
	coord    Coordinate
	children []Nested
}

// Leaf returns a depth 0 structure holding a single coordinate.
func Leaf(c Coordinate) Nested {
	return Nested{coord: c}
}

// Sequence returns a structure of the given depth wrapping children.
// Every child must be exactly one level shallower, otherwise Sequence panics.
func Sequence(depth int, children ...Nested) Nested {
	if depth < 1 {
		panic("models: sequence depth must be positive")
	}
	for _, child := range children {
		if child.depth != depth-1 {
			panic("models: sequence child has mismatched depth")
		}
	}

	return Nested{depth: depth, children: children}
}

// Coordinates returns the depth 1 structure of coords.
func Coordinates(coords []Coordinate) Nested {
	leaves := make([]Nested, len(coords))
	for i, c := range coords {
		leaves[i] = Leaf(c)
	}

	return Sequence(1, leaves...)
}

// Depth returns the nesting depth of the structure.
func (n Nested) Depth() int {
	return n.depth
}

// Coordinate returns the coordinate held by a depth 0 structure.
func (n Nested) Coordinate() Coordinate {
	return n.coord
}

// Children returns the members of a structure of depth 1 or more.
func (n Nested) Children() []Nested {
	return n.children
}
