// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mask

import (
	"iter"
	"math/bits"
)

const (
	BITS      = 36                      // Width of a mask, in bits.
	BITS_MASK = (uint64(1) << BITS) - 1 // Bits covered by a mask.
)

// Mask is a parsed decoder mask.
type Mask struct {
	Text  string // Mask as written, most-significant bit first.
	Ones  uint64 // Bits forced to 1.
	Zeros uint64 // Bits marked '0'.
	Float uint64 // Floating bits.

	floats []uint8 // Bit positions of Float, least-significant first.
}

// Parse parses a mask of exactly BITS symbols.
func Parse(text string) (mask *Mask, err error) {
	m := &Mask{Text: text}

	// Only valid single byte symbols precede an invalid one, so n is
	// also the symbol index.
	for n, c := range text {
		var bit uint64
		if pos := len(text) - 1 - n; pos >= 0 && pos < 64 {
			bit = uint64(1) << pos
		}
		switch c {
		case '1':
			m.Ones |= bit
		case '0':
			m.Zeros |= bit
		case 'X':
			m.Float |= bit
		default:
			err = ErrMaskCharacter{Rune: c, Position: n}
			return
		}
	}

	if len(text) != BITS {
		err = ErrMaskLength
		return
	}

	for pos := range BITS {
		if m.Float&(uint64(1)<<pos) != 0 {
			m.floats = append(m.floats, uint8(pos))
		}
	}

	mask = m

	return
}

// String returns the mask as written.
func (m *Mask) String() string {
	return m.Text
}

// Floating returns the number of floating bits.
func (m *Mask) Floating() int {
	return bits.OnesCount64(m.Float)
}

// Count returns the number of addresses Expand yields.
func (m *Mask) Count() uint64 {
	return uint64(1) << m.Floating()
}

// Apply masks a value, as done by decoder version 1.
func (m *Mask) Apply(value uint64) uint64 {
	return (value &^ m.Zeros) | m.Ones
}

// Fixed returns the address bits shared by every expanded address.
// Floating bits, and bits above BITS, are cleared.
func (m *Mask) Fixed(base uint64) uint64 {
	return (base | m.Ones) &^ m.Float & BITS_MASK
}

// Expand returns the iterator over every address denoted by the mask and a
// base address. Addresses are BITS wide; higher base address bits are dropped.
func (m *Mask) Expand(base uint64) iter.Seq[uint64] {
	fixed := m.Fixed(base)
	count := m.Count()

	return func(yield func(addr uint64) bool) {
		for n := range count {
			addr := fixed
			for bit, pos := range m.floats {
				addr |= ((n >> bit) & 1) << pos
			}
			if !yield(addr) {
				return
			}
		}
	}
}
