// Package decoder implements the docking computer initialization program
// interpreter.
//
// A program is a sequence of lines that either set the current mask:
//
//	mask = 000000000000000000000000000000X1001X
//
// or write a value to memory:
//
//	mem[42] = 100
//
// The Decoder executes the instructions in order against a sparse memory.
// Version 2 decoders (the default) expand the address through the mask and
// write every resulting address. Version 1 decoders mask the value instead.
package decoder
