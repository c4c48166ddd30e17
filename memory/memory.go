// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the sparse memory of the docking computer.
package memory

import (
	"iter"
	"maps"
	"math/big"
	"math/bits"
	"slices"
)

// Store is a sparse address to value memory. A later write to an address
// replaces the earlier value.
type Store struct {
	Cells map[uint64]uint64 // Written cells, by address.
}

// Reset clears all written cells.
func (st *Store) Reset() {
	clear(st.Cells)
}

// Write sets the value of a cell.
func (st *Store) Write(addr uint64, value uint64) {
	if st.Cells == nil {
		st.Cells = make(map[uint64]uint64)
	}
	st.Cells[addr] = value
}

// Read gets the value of a cell, and if it was ever written.
func (st *Store) Read(addr uint64) (value uint64, ok bool) {
	value, ok = st.Cells[addr]
	return
}

// Len returns the number of written cells.
func (st *Store) Len() int {
	return len(st.Cells)
}

// Sum returns the sum of all written cell values.
func (st *Store) Sum() (sum *big.Int) {
	sum = new(big.Int)

	var hi, lo uint64
	for _, value := range st.Cells {
		var carry uint64
		lo, carry = bits.Add64(lo, value, 0)
		hi += carry
	}

	sum.SetUint64(hi)
	sum.Lsh(sum, 64)
	sum.Or(sum, new(big.Int).SetUint64(lo))

	return
}

// All returns the iterator over all cells, in address order.
func (st *Store) All() iter.Seq2[uint64, uint64] {
	return func(yield func(addr uint64, value uint64) bool) {
		for _, addr := range slices.Sorted(maps.Keys(st.Cells)) {
			if !yield(addr, st.Cells[addr]) {
				return
			}
		}
	}
}
