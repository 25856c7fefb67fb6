package models

// Record is one fixture: four views of the same geometry.
type Record struct {
	Geometry   Geometry // Geometry is the value every view was derived from.
	Literal    string   // Literal is the Go construction expression.
	WKBHex     string   // WKBHex is the lowercase hexadecimal WKB.
	WKB        []byte   // WKB is the little-endian well-known binary.
	WKBEscaped string   // WKBEscaped is WKB as \xHH escapes for a string literal.
	WKT        string   // WKT is the well-known text.
}

// Kind returns the geometry variant of the record, or 0 when it holds no geometry.
func (r Record) Kind() Kind {
	if r.Geometry == nil {
		return 0
	}

	return r.Geometry.Kind()
}

// Table is an ordered collection of fixtures produced by one generation run.
type Table struct {
	Seed    int64    // Seed is the random seed the table was generated from.
	Records []Record // Records are grouped by kind in emission order.
}

// CountByKind returns the number of records of each kind.
func (t Table) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, rec := range t.Records {
		counts[rec.Kind()]++
	}

	return counts
}
