package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/fixturegen/internal/models"
)

// ErrMalformedEscape is returned by Unescape for text that is not a run of \xHH sequences.
var ErrMalformedEscape = errors.New("malformed byte escape")

// escapeWidth is the length of one \xHH sequence.
const escapeWidth = 4

// Encoding holds every serialized view of one geometry.
type Encoding struct {
	WKB     []byte // WKB is the little-endian well-known binary without SRID.
	Hex     string // Hex is WKB as lowercase hexadecimal.
	Escaped string // Escaped is WKB as uppercase \xHH escapes.
	WKT     string // WKT is the well-known text.
}

// Encode derives WKB, its hex and escaped forms, and WKT from g in one call.
func Encode(c Codec, g models.Geometry) (Encoding, error) {
	data, err := c.MarshalWKB(g)
	if err != nil {
		return Encoding{}, err
	}

	text, err := c.MarshalWKT(g)
	if err != nil {
		return Encoding{}, err
	}

	return Encoding{
		WKB:     data,
		Hex:     hex.EncodeToString(data),
		Escaped: Escape(data),
		WKT:     text,
	}, nil
}

// Escape renders data as \xHH sequences with uppercase hex digits.
func Escape(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * escapeWidth)
	for _, c := range data {
		fmt.Fprintf(&b, `\x%02X`, c)
	}

	return b.String()
}

// Unescape parses a run of \xHH sequences back into bytes.
func Unescape(s string) ([]byte, error) {
	if len(s)%escapeWidth != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMalformedEscape, len(s))
	}

	data := make([]byte, 0, len(s)/escapeWidth)
	for i := 0; i < len(s); i += escapeWidth {
		if s[i] != '\\' || s[i+1] != 'x' {
			return nil, fmt.Errorf("%w: at offset %d", ErrMalformedEscape, i)
		}
		b, err := hex.DecodeString(s[i+2 : i+escapeWidth])
		if err != nil {
			return nil, fmt.Errorf("%w: at offset %d: %w", ErrMalformedEscape, i, err)
		}
		data = append(data, b[0])
	}

	return data, nil
}

// DecodeHex parses lowercase or uppercase hexadecimal WKB.
func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}

	return data, nil
}
