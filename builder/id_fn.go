// SPDX-License-Identifier: MIT
// Package: volcanium/builder
//
// id_fn.go — node ID schemes for generated valves.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// ValveID returns a two-letter scan-report style ID: 0→"AA", 1→"AB", 26→"BA".
// Indices beyond 675 fall back to ExcelColumnID with an "Z" prefix so IDs stay unique.
// Panics if idx < 0.
func ValveID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ValveID: idx must be ≥ 0, got %d", idx))
	}
	if idx >= 26*26 {
		return "Z" + ExcelColumnID(idx)
	}

	return string([]byte{byte('A' + idx/26), byte('A' + idx%26)})
}

// DecimalID returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnID returns the spreadsheet column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnID: idx must be ≥ 0, got %d", idx))
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
