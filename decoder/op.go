package decoder

type Op int

//go:generate go tool stringer -type=Op
const (
	OP_NONE = Op(0) // Ignored line.
	OP_MASK = Op(1) // Replace the current mask.
	OP_MEM  = Op(2) // Write a value through the current mask.
)
