package identity

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

const (
	fnvOffsetBasis32 uint32 = 0x811c9dc5
	fnvPrime32       uint32 = 0x01000193

	// FingerprintWidth is the number of base-36 digits kept from the hash.
	FingerprintWidth = 6
)

// Hash32 returns the 32-bit FNV-1a hash of s computed over its UTF-16 code
// units, so characters outside the BMP contribute their surrogate pair.
func Hash32(s string) uint32 {
	h := fnvOffsetBasis32
	for _, unit := range utf16.Encode([]rune(s)) {
		h ^= uint32(unit)
		h *= fnvPrime32
	}
	return h
}

// Fingerprint renders Hash32(normalized) in base 36 and keeps the
// FingerprintWidth least-significant digits, left-padding with '0' when the
// rendering is shorter.
func Fingerprint(normalized string) string {
	digits := strconv.FormatUint(uint64(Hash32(normalized)), 36)
	if len(digits) > FingerprintWidth {
		return digits[len(digits)-FingerprintWidth:]
	}
	return strings.Repeat("0", FingerprintWidth-len(digits)) + digits
}
