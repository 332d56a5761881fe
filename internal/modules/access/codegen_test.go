package access

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomCode_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := randomCode(8)
		assert.NoError(t, err)
		assert.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q in %s", r, code)
		}
	}
}

func TestRandomCode_NoAmbiguousCharacters(t *testing.T) {
	for _, forbidden := range "0O1IÍ" {
		assert.False(t, strings.ContainsRune(codeAlphabet, forbidden))
	}
}
