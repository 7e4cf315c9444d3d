package coupon

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"
)

var ErrCodeGeneration = errors.New("coupon code generation failed")

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 6
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]{6}$`)

type Code string

// maxUnbiasedByte is the largest multiple of the alphabet size that fits in a
// byte. Bytes at or above it are rejected; reducing them modulo the alphabet
// would skew the draw toward the low characters.
const maxUnbiasedByte = byte(len(codeAlphabet) * (256 / len(codeAlphabet)))

// GenerateCode draws a fresh human-enterable code: the configured prefix, a
// dash, and six characters uniform over [A-Z0-9]. The 36^6 code space makes
// collisions negligible at this issuance volume; the unique index on the
// coupon table is the backstop.
func GenerateCode(prefix string) (Code, error) {
	var b strings.Builder
	b.WriteString(strings.ToUpper(prefix))
	b.WriteByte('-')

	buf := make([]byte, codeLength)
	for written := 0; written < codeLength; {
		if _, err := rand.Read(buf); err != nil {
			return "", ErrCodeGeneration
		}
		for _, c := range buf {
			if c >= maxUnbiasedByte {
				continue
			}
			b.WriteByte(codeAlphabet[int(c)%len(codeAlphabet)])
			written++
			if written == codeLength {
				break
			}
		}
	}
	return Code(b.String()), nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) IsWellFormed() bool {
	return codeRegex.MatchString(string(c))
}
