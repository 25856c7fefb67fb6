// Package verify checks that the views of a fixture record describe the same geometry.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/fixturegen/internal/codec"
	"github.com/UnknownOlympus/fixturegen/internal/literal"
	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/google/go-cmp/cmp"
)

// ErrInconsistent is returned when two views of a record disagree.
var ErrInconsistent = errors.New("fixture views are inconsistent")

// Verifier decodes every view of a record and compares it with the source geometry.
type Verifier struct {
	primary   codec.Codec  // Codec the record was encoded with
	reference codec.Codec  // Independent codec used for a second WKB decode, may be nil
	log       *slog.Logger // Logger for logging operations
}

// New creates a Verifier. A nil reference codec disables the independent decode.
func New(primary, reference codec.Codec, log *slog.Logger) *Verifier {
	return &Verifier{primary: primary, reference: reference, log: log}
}

// VerifyTable verifies every record and stops at the first inconsistency.
func (v *Verifier) VerifyTable(table models.Table) error {
	for i, rec := range table.Records {
		if err := v.Verify(rec); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, rec.Kind(), err)
		}
	}
	v.log.Debug("Fixture table verified", "records", len(table.Records), "codec", v.primary.Name())

	return nil
}

// Verify checks a single record:
//   - the hex and escaped forms decode to the WKB bytes;
//   - the literal is the construction expression of the geometry;
//   - WKB and WKT decode to the geometry, and re-encoding the decoded value
//     reproduces both exactly;
//   - the reference codec, when set, decodes the WKB to the same geometry.
func (v *Verifier) Verify(rec models.Record) error {
	if rec.Geometry == nil {
		return fmt.Errorf("%w: record has no geometry", ErrInconsistent)
	}

	if err := checkBytes(rec); err != nil {
		return err
	}

	if expr := literal.Expression(rec.Geometry); expr != rec.Literal {
		return fmt.Errorf("%w: literal %q, want %q", ErrInconsistent, rec.Literal, expr)
	}

	decoded, err := v.decode(v.primary, rec.WKB, rec.Geometry)
	if err != nil {
		return err
	}

	text, err := v.primary.MarshalWKT(decoded)
	if err != nil {
		return fmt.Errorf("%w: failed to re-encode wkt: %w", ErrInconsistent, err)
	}
	if text != rec.WKT {
		return fmt.Errorf("%w: decoded wkb renders as %q, want %q", ErrInconsistent, text, rec.WKT)
	}

	data, err := v.primary.MarshalWKB(decoded)
	if err != nil {
		return fmt.Errorf("%w: failed to re-encode wkb: %w", ErrInconsistent, err)
	}
	if !bytes.Equal(data, rec.WKB) {
		return fmt.Errorf("%w: re-encoded wkb differs", ErrInconsistent)
	}

	fromWKT, err := v.primary.UnmarshalWKT(rec.WKT)
	if err != nil {
		return fmt.Errorf("%w: failed to decode wkt: %w", ErrInconsistent, err)
	}
	if diff := cmp.Diff(rec.Geometry, fromWKT); diff != "" {
		return fmt.Errorf("%w: wkt decodes to a different geometry (-want +got):\n%s", ErrInconsistent, diff)
	}

	if v.reference != nil {
		if _, err = v.decode(v.reference, rec.WKB, rec.Geometry); err != nil {
			return err
		}
	}

	return nil
}

func (v *Verifier) decode(c codec.Codec, data []byte, want models.Geometry) (models.Geometry, error) {
	got, err := c.UnmarshalWKB(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode wkb with %s: %w", ErrInconsistent, c.Name(), err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return nil, fmt.Errorf("%w: %s decodes wkb to a different geometry (-want +got):\n%s",
			ErrInconsistent, c.Name(), diff)
	}

	return got, nil
}

func checkBytes(rec models.Record) error {
	fromHex, err := codec.DecodeHex(rec.WKBHex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistent, err)
	}
	if !bytes.Equal(fromHex, rec.WKB) {
		return fmt.Errorf("%w: hex does not match wkb", ErrInconsistent)
	}
	if rec.WKBHex != strings.ToLower(rec.WKBHex) {
		return fmt.Errorf("%w: hex is not lowercase", ErrInconsistent)
	}

	unescaped, err := codec.Unescape(rec.WKBEscaped)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistent, err)
	}
	if !bytes.Equal(unescaped, rec.WKB) {
		return fmt.Errorf("%w: escaped bytes do not match wkb", ErrInconsistent)
	}

	return nil
}
