// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be deterministic: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns idx in base 36, e.g. 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name of idx: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns idx in lowercase hexadecimal. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// IDScheme resolves a scheme name: decimal, letter, excel, hex, base36, or
// "prefix:<p>" for SymbolNumberIDFn(p).
func IDScheme(name string) (IDFn, error) {
	if p, ok := strings.CutPrefix(name, "prefix:"); ok {
		return SymbolNumberIDFn(p), nil
	}
	switch strings.ToLower(name) {
	case "", "decimal":
		return DefaultIDFn, nil
	case "letter":
		return SymbolIDFn, nil
	case "excel":
		return ExcelColumnIDFn, nil
	case "hex":
		return HexIDFn, nil
	case "base36":
		return AlphanumericIDFn, nil
	default:
		return nil, fmt.Errorf("IDScheme(%q): %w", name, ErrUnknownKind)
	}
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbolNumberIDs sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbolNumberIDs(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
