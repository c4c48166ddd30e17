// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package decoder

import (
	"io"
	"iter"
	"log"
	"math/big"

	"github.com/ezrec/docking/internal"
	"github.com/ezrec/docking/mask"
	"github.com/ezrec/docking/memory"
)

const (
	VERSION_1 = 1 // Mask the value, write the base address.
	VERSION_2 = 2 // Expand the address, write the value.
)

// Decoder state. Current mask + memory.
type Decoder struct {
	Verbose bool         // If set, enables verbose logging.
	Version int          // Decoder chip version.
	Mask    *mask.Mask   // Current mask, nil until set.
	Memory  memory.Store // Memory written by the program.
}

// NewDecoder creates a new version 2 decoder.
func NewDecoder() (dec *Decoder) {
	dec = &Decoder{
		Version: VERSION_2,
	}

	return
}

// Reset clears the current mask and memory.
func (dec *Decoder) Reset() {
	dec.Mask = nil
	dec.Memory.Reset()
}

// Step executes a single instruction.
func (dec *Decoder) Step(inst Instruction) (err error) {
	switch inst.Op {
	case OP_MASK:
		if inst.Mask == nil {
			err = ErrMaskSyntax
			return
		}
		dec.Mask = inst.Mask
		if dec.Verbose {
			log.Printf("%4d %-8v %v floating:%d\n", inst.LineNo, inst.Op, dec.Mask, dec.Mask.Floating())
		}
	case OP_MEM:
		if dec.Mask == nil {
			err = ErrMaskUninitialized
			return
		}
		switch dec.Version {
		case VERSION_1:
			value := dec.Mask.Apply(inst.Value)
			dec.Memory.Write(inst.Address, value)
			if dec.Verbose {
				log.Printf("%4d %-8v 0x%09x <- %v\n", inst.LineNo, inst.Op, inst.Address, value)
			}
		case VERSION_2:
			for addr := range dec.Mask.Expand(inst.Address) {
				dec.Memory.Write(addr, inst.Value)
			}
			if dec.Verbose {
				log.Printf("%4d %-8v 0x%09x x%d <- %v\n", inst.LineNo, inst.Op, dec.Mask.Fixed(inst.Address), dec.Mask.Count(), inst.Value)
			}
		default:
			err = ErrVersion
			return
		}
	}

	return
}

// Execute runs programs in order, stopping at the first error.
func (dec *Decoder) Execute(progs ...*Program) (err error) {
	if dec.Version != VERSION_1 && dec.Version != VERSION_2 {
		err = ErrVersion
		return
	}

	seqs := make([]iter.Seq[Instruction], len(progs))
	for n, prog := range progs {
		seqs[n] = prog.All()
	}

	for inst := range internal.IterSeqConcat(seqs...) {
		err = dec.Step(inst)
		if err != nil {
			err = &ErrRuntime{Source: inst.Source, LineNo: inst.LineNo, Err: err}
			return
		}
	}

	return
}

// Sum returns the sum of all values in memory.
func (dec *Decoder) Sum() *big.Int {
	return dec.Memory.Sum()
}

// Run parses and executes an input stream, and returns the memory sum.
func (dec *Decoder) Run(source string, input io.Reader) (sum *big.Int, err error) {
	ps := &Parser{Verbose: dec.Verbose}
	prog, err := ps.Parse(source, input)
	if err != nil {
		return
	}

	err = dec.Execute(prog)
	if err != nil {
		return
	}

	sum = dec.Sum()

	return
}
