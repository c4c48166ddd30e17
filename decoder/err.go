package decoder

import (
	"errors"

	"github.com/ezrec/docking/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrMaskSyntax = errors.New(f("mask syntax"))
	ErrMemSyntax  = errors.New(f("mem syntax"))

	// Runtime errors
	ErrMaskUninitialized = errors.New(f("mask not initialized"))
	ErrVersion           = errors.New(f("decoder version unsupported"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSyntax indicates the location of a parse error.
type ErrSyntax struct {
	Source string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("%v:%d '%v' %v", err.Source, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Source string
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("%v:%d %v", err.Source, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
