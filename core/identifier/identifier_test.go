package identifier_test

import (
	"strings"
	"testing"

	"stock-check/core/identifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Lowercase", "abc12345", "ABC12345"},
		{"Surrounding whitespace", "  jqhp813  ", "JQHP813"},
		{"Scanner suffix", "abc12345\r\n", "ABC12345"},
		{"Embedded control chars", "ab\x00c\x1b123", "ABC123"},
		{"Control before space", "\x00 abc", "ABC"},
		{"Numeric asset tag", "9856", "9856"},
		{"Exactly minimum", "ab1", "AB1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identifier.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := identifier.Normalize("")
		assert.ErrorIs(t, err, identifier.ErrEmptyInput)
	})

	t.Run("Whitespace only", func(t *testing.T) {
		_, err := identifier.Normalize(" \t\r\n ")
		assert.ErrorIs(t, err, identifier.ErrEmptyInput)
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := identifier.Normalize(" ab ")
		assert.ErrorIs(t, err, identifier.ErrTooShort)
		assert.NotErrorIs(t, err, identifier.ErrEmptyInput)
	})

	t.Run("Short after control chars removed", func(t *testing.T) {
		_, err := identifier.Normalize("a\x00\x01b")
		assert.ErrorIs(t, err, identifier.ErrTooShort)
	})
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"abc12345", " MiXeD-case 01 ", "\x02abc\x03", "çãoxyz", "9856.0", "\x00 abc \x00"}

	for _, raw := range inputs {
		first, err := identifier.Normalize(raw)
		require.NoError(t, err, raw)

		second, err := identifier.Normalize(first)
		require.NoError(t, err, raw)

		assert.Equal(t, first, second, raw)
		assert.Equal(t, strings.ToUpper(first), first, raw)
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "", identifier.Canonical("\r\n"))
	assert.Equal(t, "AB", identifier.Canonical(" ab "))
}
