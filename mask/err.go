package mask

import (
	"errors"

	"github.com/ezrec/docking/translate"
)

var f = translate.From

var (
	ErrMaskLength = errors.New(f("mask length is not %d", BITS))
)

// ErrMaskCharacter reports a mask symbol other than '0', '1' or 'X'.
type ErrMaskCharacter struct {
	Rune     rune
	Position int
}

func (err ErrMaskCharacter) Error() string {
	return f("invalid mask character %q at position %d", err.Rune, err.Position)
}

func (err ErrMaskCharacter) Is(target error) (ok bool) {
	_, ok = target.(ErrMaskCharacter)
	return
}
