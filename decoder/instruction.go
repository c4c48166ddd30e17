// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package decoder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/docking/mask"
)

// Instruction is a single parsed program line.
type Instruction struct {
	Source  string     // Name of the source.
	LineNo  int        // Line number in the source.
	Line    string     // Line text, trimmed.
	Op      Op         // Operation.
	Mask    *mask.Mask // OP_MASK: New mask.
	Address uint64     // OP_MEM: Base address.
	Value   uint64     // OP_MEM: Value to write.
}

var memRegexp = regexp.MustCompile(`^mem\[(\d+)\] = (\d+)$`)

// parseNumber parses an unsigned decimal number.
func parseNumber(word string) (value uint64, err error) {
	value, err = strconv.ParseUint(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// ParseLine classifies a single line by its prefix. Lines that neither set
// a mask nor write memory parse as OP_NONE.
func ParseLine(line string) (inst Instruction, err error) {
	line = strings.TrimSpace(line)
	inst.Line = line

	switch {
	case strings.HasPrefix(line, "mask"):
		_, text, ok := strings.Cut(line, " = ")
		if !ok {
			err = ErrMaskSyntax
			return
		}
		inst.Mask, err = mask.Parse(text)
		if err != nil {
			return
		}
		inst.Op = OP_MASK
	case strings.HasPrefix(line, "mem"):
		match := memRegexp.FindStringSubmatch(line)
		if match == nil {
			err = ErrMemSyntax
			return
		}
		inst.Address, err = parseNumber(match[1])
		if err != nil {
			return
		}
		inst.Value, err = parseNumber(match[2])
		if err != nil {
			return
		}
		inst.Op = OP_MEM
	default:
		inst.Op = OP_NONE
	}

	return
}
