package uniuri

import (
	"crypto/rand"
)

// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
const StdLen = 16

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

const (
	maxByteValue = 255
	byteRange    = 256
)

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	if length == 0 {
		return ""
	}

	clen := len(StdChars)
	maxRb := maxByteValue - (byteRange % clen)

	out := make([]byte, length)
	buf := make([]byte, length+(length/2)) // spare room for rejected bytes

	i := 0
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				// Skip this number to avoid modulo bias.
				continue
			}

			out[i] = StdChars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
