package access

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet deliberately drops 0/O, 1/I and vowel lookalikes so codes
// stay human-typable over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// randomCode is the pure generator half of code generation: it draws a
// code of the given length and knows nothing about uniqueness. The store
// probe and the retry budget live in Service.GenerateCode.
func randomCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
