package fmps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		exp  []Row
	}{
		{"single float", "0.8", []Row{{Float(0.8)}}},
		{"single text", "Willow", []Row{{Text("Willow")}}},
		{"two values", "Alice Lastname::0.6", []Row{{Text("Alice Lastname"), Float(0.6)}}},
		{"two rows", "0.8;;0.4", []Row{{Float(0.8)}, {Float(0.4)}}},
		{
			"rows of pairs", "Alice::0.6;;Bob::0.2",
			[]Row{{Text("Alice"), Float(0.6)}, {Text("Bob"), Float(0.2)}},
		},
		{"escaped separators", `a\:b\;c\\d`, []Row{{Text(`a:b;c\d`)}}},
		{"empty value", "::0.5", []Row{{Text(""), Float(0.5)}}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	got, err := Parse("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		":",   // lone separator
		"a:b", // separators must be doubled
		"a;b",
		"0.5;;a;b",
		`a\`,  // dangling escape
		`a\x`, // unknown escape
	} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, got)
		})
	}
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	rows := []Row{{Text("Alice"), Float(0.6)}, {Text(`x:y;z\`), Float(1)}}
	text := Serialize(rows)
	assert.Equal(t, `Alice::0.6;;x\:y\;z\\::1`, text)

	back, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestNumAt(t *testing.T) {
	t.Parallel()

	rows, err := Parse("Alice::0.6;;Bob::0.2")
	require.NoError(t, err)

	_, ok := NumAt(rows, 0)
	assert.False(t, ok, "position 0 is text")

	v, ok := NumAt(rows, 1)
	require.True(t, ok)
	assert.Equal(t, 0.6, v)

	_, ok = NumAt(rows, 2)
	assert.False(t, ok, "past the end of the row")

	_, ok = NumAt(nil, 0)
	assert.False(t, ok)
}
