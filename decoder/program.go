package decoder

import (
	"iter"
	"slices"
)

// Program is the parsed contents of a single source.
type Program struct {
	Source       string        // Name of the source.
	Instructions []Instruction // Instructions, in source order.
}

// All returns the iterator over the program's instructions.
func (prog *Program) All() iter.Seq[Instruction] {
	return slices.Values(prog.Instructions)
}
