// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a bus ID from its zero-based index. It must be pure:
// the same index always yields the same ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns an uppercase letter for idx in [0,25], e.g. 0→"A".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet-style column names, e.g. 0→"A",
// 25→"Z", 26→"AA". Panics if idx < 0.
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

// PrefixIDFn returns prefix followed by the decimal index, e.g. "b0", "b1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs names buses "A", "B", ...
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs names buses "A", ..., "Z", "AA", ...
func WithExcelColumnIDs() Option { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs names buses prefix+index.
func WithPrefixIDs(prefix string) Option { return WithIDScheme(PrefixIDFn(prefix)) }
