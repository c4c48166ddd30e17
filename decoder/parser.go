// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package decoder

import (
	"bufio"
	"io"
	"log"
)

// Parser reads programs from text.
type Parser struct {
	Verbose bool // If set, logs each line parsed.
}

// Parse parses an input stream into a Program. Ignored lines are dropped.
func (ps *Parser) Parse(source string, input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{Source: source, LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{Source: source}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if ps.Verbose {
			log.Printf("%v:%v: %v\n", source, lineno, line)
		}

		var inst Instruction
		inst, err = ParseLine(line)
		if err != nil {
			prog = nil
			return
		}

		if inst.Op == OP_NONE {
			continue
		}

		inst.Source = source
		inst.LineNo = lineno
		prog.Instructions = append(prog.Instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
		return
	}

	return
}
