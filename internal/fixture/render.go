package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"text/template"

	"github.com/UnknownOlympus/fixturegen/internal/models"
)

// ErrInvalidOptions is returned for package or variable names that are not Go identifiers.
var ErrInvalidOptions = errors.New("invalid render options")

// Options controls the Go source artifact.
type Options struct {
	Package  string // Package is the package clause of the artifact.
	Variable string // Variable is the name of the fixture slice.
	Command  string // Command is the //go:generate command that recreates the artifact.
}

// DefaultOptions returns the options of the checked-in fixture file.
func DefaultOptions() Options {
	return Options{
		Package:  "testdata",
		Variable: "Random",
		Command:  "go run github.com/UnknownOlympus/fixturegen/cmd",
	}
}

var sourceTemplate = template.Must(template.New("fixtures").Parse(`// Code generated by fixturegen. DO NOT EDIT.

package {{.Package}}

//go:generate {{.Command}}

import "github.com/twpayne/go-geom"

// {{.Variable}} holds {{len .Records}} random geometries generated from seed {{.Seed}}.
var {{.Variable}} = []struct {
	G   geom.T
	Hex string
	WKB []byte
	WKT string
}{
{{- range .Records}}
	{
		{{.Literal}},
		{{printf "%q" .WKBHex}},
		[]byte("{{.WKBEscaped}}"),
		{{printf "%q" .WKT}},
	},
{{- end}}
}
`))

// Render produces the gofmt-formatted Go source of table. Rendering the same
// table twice yields identical bytes.
func Render(table models.Table, opts Options) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) || !token.IsIdentifier(opts.Variable) {
		return nil, fmt.Errorf("%w: package %q, variable %q", ErrInvalidOptions, opts.Package, opts.Variable)
	}

	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		Options
		models.Table
	}{opts, table})
	if err != nil {
		return nil, fmt.Errorf("failed to execute fixture template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format fixture source: %w", err)
	}

	return src, nil
}
