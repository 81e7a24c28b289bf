// Package fmps implements the FMPS structured-value text encoding used to
// pack multi-valued extended fields (rating, play count, score, optional
// per-user sub-values) into a single native tag slot.
//
// The encoding is a top-level sequence of rows separated by ";;", each row a
// sequence of typed scalars separated by "::". The characters '\', ':' and
// ';' are escaped with a leading backslash. A scalar that parses as a
// floating point number is numeric, anything else is text. The numeric value
// in row position 0 is the canonical value; positions >= 1 carry
// caller-interpreted secondary values such as a per-user rating.
package fmps

import (
	"errors"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed fmps value")

// Value is one typed scalar: a float or a text string.
type Value struct {
	num   float64
	str   string
	isNum bool
}

// Float returns a numeric scalar.
func Float(v float64) Value { return Value{num: v, isNum: true} }

// Text returns a text scalar.
func Text(v string) Value { return Value{str: v} }

// IsNum reports whether the scalar is numeric.
func (v Value) IsNum() bool { return v.isNum }

// Num returns the numeric value, or 0 for text scalars.
func (v Value) Num() float64 { return v.num }

// Str returns the text value, or "" for numeric scalars.
func (v Value) Str() string { return v.str }

func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Row is one row of scalars.
type Row []Value

// Parse decodes text into rows of typed scalars. It never panics; malformed
// input yields a nil result and ErrMalformed, and an empty input yields an
// empty result. Callers treat both the same way: field absent.
func Parse(text string) ([]Row, error) {
	if text == "" {
		return nil, nil
	}

	var rows []Row
	var row Row
	var cur strings.Builder
	escaped := false // current value needed unescaping

	endValue := func() {
		row = append(row, typed(cur.String(), escaped))
		cur.Reset()
		escaped = false
	}

	for i := 0; i < len(text); {
		switch c := text[i]; c {
		case '\\':
			if i+1 >= len(text) {
				return nil, ErrMalformed
			}
			switch n := text[i+1]; n {
			case '\\', ':', ';':
				cur.WriteByte(n)
				escaped = true
				i += 2
			default:
				return nil, ErrMalformed
			}
		case ':', ';':
			// separators only ever appear doubled
			if i+1 >= len(text) || text[i+1] != c {
				return nil, ErrMalformed
			}
			endValue()
			if c == ';' {
				rows = append(rows, row)
				row = nil
			}
			i += 2
		default:
			cur.WriteByte(c)
			i++
		}
	}
	endValue()
	rows = append(rows, row)

	return rows, nil
}

// Serialize is the encoding inverse of Parse. Anything Serialize produces
// parses back to the same rows, with one caveat: a text scalar whose content
// happens to look like a number comes back numeric. The engine only ever
// writes numeric scalars, so the round-trip law holds where it matters.
func Serialize(rows []Row) string {
	var b strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			b.WriteString(";;")
		}
		for vi, v := range row {
			if vi > 0 {
				b.WriteString("::")
			}
			if v.isNum {
				b.WriteString(strconv.FormatFloat(v.num, 'f', -1, 64))
			} else {
				b.WriteString(escape(v.str))
			}
		}
	}
	return b.String()
}

var escaper = strings.NewReplacer(`\`, `\\`, `:`, `\:`, `;`, `\;`)

func escape(s string) string { return escaper.Replace(s) }

func typed(s string, escaped bool) Value {
	if !escaped {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}
	return Text(s)
}

// NumAt extracts the numeric scalar at the given position of the first row.
// Every extraction site treats "no usable first row" as field absent.
func NumAt(rows []Row, pos int) (float64, bool) {
	if len(rows) == 0 || len(rows[0]) <= pos {
		return 0, false
	}
	v := rows[0][pos]
	if !v.IsNum() {
		return 0, false
	}
	return v.Num(), true
}
