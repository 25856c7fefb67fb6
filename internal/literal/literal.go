// Package literal renders geometries as Go source expressions.
package literal

import (
	"strconv"
	"strings"

	"github.com/UnknownOlympus/fixturegen/internal/models"
)

// Flatten renders a nested coordinate structure as a brace literal whose
// nesting matches the structure depth, e.g. {{0.5, -0.25}, {0.1, 0.1}}.
func Flatten(n models.Nested) string {
	var b strings.Builder
	flatten(&b, n)

	return b.String()
}

func flatten(b *strings.Builder, n models.Nested) {
	b.WriteByte('{')
	if n.Depth() == 0 {
		c := n.Coordinate()
		b.WriteString(FormatFloat(c.X))
		b.WriteString(", ")
		b.WriteString(FormatFloat(c.Y))
	} else {
		for i, child := range n.Children() {
			if i != 0 {
				b.WriteString(", ")
			}
			flatten(b, child)
		}
	}
	b.WriteByte('}')
}

// FormatFloat returns the shortest decimal text that parses back to v exactly.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CoordType returns the go-geom element type for a structure of depth depth,
// e.g. [][]geom.Coord for depth 2.
func CoordType(depth int) string {
	return strings.Repeat("[]", depth) + "geom.Coord"
}

// Expression returns the go-geom construction expression for g, e.g.
// geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0.5, -0.25}, {0.1, 0.1}}).
func Expression(g models.Geometry) string {
	nested := g.Nested()

	return "geom.New" + g.Kind().String() + "(geom.XY).MustSetCoords(" +
		CoordType(nested.Depth()) + Flatten(nested) + ")"
}
