//go:build unit

package coupon_test

import (
	"regexp"
	"strings"
	"testing"

	"wheel-promo-api/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	t.Run("matches the redeemable format", func(t *testing.T) {
		code, err := coupon.GenerateCode("WHEEL")
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^WHEEL-[A-Z0-9]{6}$`), code.String())
		assert.True(t, code.IsWellFormed())
	})

	t.Run("prefix is uppercased", func(t *testing.T) {
		code, err := coupon.GenerateCode("wheel")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(code.String(), "WHEEL-"))
		assert.True(t, code.IsWellFormed())
	})

	t.Run("successive codes differ", func(t *testing.T) {
		seen := make(map[coupon.Code]struct{})
		for range 50 {
			code, err := coupon.GenerateCode("WHEEL")
			require.NoError(t, err)
			seen[code] = struct{}{}
		}
		// 50 draws from a 36^6 space colliding would point at a broken source.
		assert.Len(t, seen, 50)
	})

	t.Run("characters are drawn uniformly", func(t *testing.T) {
		const codes = 12000
		counts := make(map[byte]int, 36)
		for range codes {
			code, err := coupon.GenerateCode("WHEEL")
			require.NoError(t, err)
			for _, c := range []byte(strings.TrimPrefix(code.String(), "WHEEL-")) {
				counts[c]++
			}
		}

		// 72000 draws, 2000 expected per character. A reduction biased toward
		// the low digits lands well outside a 10% band.
		const expected = codes * 6 / 36
		for _, c := range []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
			assert.InDelta(t, expected, counts[c], 0.1*expected,
				"character %q drawn %d times", c, counts[c])
		}
	})
}

func TestCodeIsWellFormed(t *testing.T) {
	valid := []string{
		"WHEEL-A1B2C3",
		"X-000000",
		"PROMO2026-ZZZZZZ",
	}
	for _, v := range valid {
		t.Run(v, func(t *testing.T) {
			assert.True(t, coupon.Code(v).IsWellFormed())
		})
	}

	invalid := []string{
		"",
		"WHEEL-",
		"WHEEL-A1B2C",   // suffix too short
		"WHEEL-A1B2C3D", // suffix too long
		"-A1B2C3",       // missing prefix
		"wheel-a1b2c3",  // lowercase
		"WHEEL_A1B2C3",  // wrong separator
		"WHEEL-A1B2C!",
		"WHEEL-A1B2C3-X",
	}
	for _, v := range invalid {
		t.Run("invalid "+v, func(t *testing.T) {
			assert.False(t, coupon.Code(v).IsWellFormed())
		})
	}
}
