// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},
		{"AlphanumericIDFn_high", builder.AlphanumericIDFn, 35, "z", false},
		{"AlphanumericIDFn_neg", builder.AlphanumericIDFn, -5, "", true},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"HexIDFn_ten", builder.HexIDFn, 10, "a", false},
		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("v"), 7, "v7", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDScheme(t *testing.T) {
	for name, want := range map[string]string{
		"":         "12",
		"decimal":  "12",
		"letter":   "M",
		"excel":    "M",
		"hex":      "c",
		"base36":   "c",
		"prefix:u": "u12",
	} {
		fn, err := builder.IDScheme(name)
		require.NoError(t, err, name)
		require.Equal(t, want, fn(12), name)
	}

	_, err := builder.IDScheme("roman")
	require.ErrorIs(t, err, builder.ErrUnknownKind)
}
