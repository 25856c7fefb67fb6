package codec

import (
	"errors"
	"fmt"
	"log/slog"
)

// Type represents the geometry library backing a Codec.
type Type string

const (
	// TypeGeom represents github.com/twpayne/go-geom.
	TypeGeom Type = "geom"
	// TypeOrb represents github.com/paulmach/orb.
	TypeOrb Type = "orb"
)

// ErrUnsupportedCodec is returned by NewCodec for unknown codec types.
var ErrUnsupportedCodec = errors.New("unsupported codec type")

// Config holds configuration for creating a codec.
type Config struct {
	Type   Type         // Type of codec to create
	Logger *slog.Logger // Logger for the codec
}

// NewCodec creates a codec based on the provided configuration.
//
// Supported codec types:
// - "geom": github.com/twpayne/go-geom, the library the fixtures are written for
// - "orb": github.com/paulmach/orb
func NewCodec(config Config) (Codec, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch config.Type {
	case TypeGeom:
		return NewGeomCodec(logger), nil
	case TypeOrb:
		return NewOrbCodec(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, config.Type)
	}
}

// Counterpart returns the other supported codec type, used as an independent
// decoder when checking records produced by t.
func Counterpart(t Type) Type {
	if t == TypeOrb {
		return TypeGeom
	}

	return TypeOrb
}
