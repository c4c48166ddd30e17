package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("mask not initialized", From("mask not initialized"))
	assert.Equal("line 3 'mem[1]' bad", From("line %d '%v' %v", 3, "mem[1]", "bad"))
	assert.Equal("rune 'Z' at 4", From("rune %q at %d", 'Z', 4))
}
