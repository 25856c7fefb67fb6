// Package codec converts geometries to and from WKB and WKT through an
// external geometry library.
package codec

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/fixturegen/internal/models"
)

// Codec is an external WKB/WKT implementation. Every method works on the
// closed models.Geometry set and converts to the library's own types at the edge.
type Codec interface {
	Name() string
	MarshalWKB(g models.Geometry) ([]byte, error)
	MarshalWKT(g models.Geometry) (string, error)
	UnmarshalWKB(data []byte) (models.Geometry, error)
	UnmarshalWKT(s string) (models.Geometry, error)
}

// Common codec errors.
var (
	// ErrCodec is returned when a library refuses to encode or decode a geometry.
	ErrCodec = errors.New("codec rejected geometry")
	// ErrUnsupportedGeometry is returned for geometries outside the six supported kinds.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)

func codecError(codec, op string, kind models.Kind, err error) error {
	return fmt.Errorf("%w: %s %s %s: %w", ErrCodec, codec, op, kind, err)
}
