// Package random generates random alphanumeric strings.
package random

import (
	"crypto/rand"
	"math/big"
)

var seq [62]rune

func init() {
	for i := 0; i < 10; i++ {
		seq[i] = rune('0' + i)
	}
	for i := 0; i < 26; i++ {
		seq[10+i] = rune('a' + i)
		seq[36+i] = rune('A' + i)
	}
}

// Seq generates a random string of length n containing numbers, lowercase
// and uppercase letters.
func Seq(n int) string {
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(seq))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		runes[i] = seq[idx.Int64()]
	}
	return string(runes)
}
