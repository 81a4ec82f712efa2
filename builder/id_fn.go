// Package builder provides internal helper functions and types
// for configuring node labels in constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node label (the string payload) from its zero-based id.
// It must be pure: the same idx always yields the same label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns the lowercase Latin letter for idx in [0..25], e.g. 0→"a", 7→"h".
// Panics if idx is out of range.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LetterIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('a' + rune(idx))
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
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
