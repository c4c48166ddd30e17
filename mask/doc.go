// Package mask implements the 36-bit decoder masks of the docking computer.
//
// A mask is written most-significant bit first using the symbols '0', '1'
// and 'X'. Applied to an address, '1' forces the bit set, '0' passes the
// address bit through, and 'X' floats: the bit takes both values, so a mask
// with k floating bits denotes 2^k addresses. Applied to a value (decoder
// version 1), '1' and '0' force the bit and 'X' passes it through.
package mask
