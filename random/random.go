package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// Ambiguous glyphs (0/O, 1/I) are left out so codes can be read aloud.
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Code returns a random code of the given length drawn from an uppercase
// alphabet, suitable for order references shown to customers.
func Code(length int) (string, error) {
	b := make([]byte, length)
	l := big.NewInt(int64(len(charset)))
	for i := range b {
		num, err := crand.Int(crand.Reader, l)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		b[i] = charset[num.Int64()]
	}
	return string(b), nil
}
