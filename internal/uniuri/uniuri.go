package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen gives about 95 bits of entropy with StdChars.
	StdLen = 16

	byteRange = 256
	chunk     = 64
)

// StdChars are the characters New draws from.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a random string of StdLen characters from StdChars.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewLen returns a random string of length characters from StdChars.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a random string of length characters from chars.
// chars must hold between 2 and 256 characters.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	n := len(chars)
	if n < 2 || n > byteRange {
		panic("uniuri: wrong charset length")
	}

	// bytes at or above limit are dropped so every character is equally likely
	limit := byteRange - byteRange%n
	out := make([]byte, 0, length)
	buf := make([]byte, chunk)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, chars[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
