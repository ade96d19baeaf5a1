package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestCodeGenerator_Generate(t *testing.T) {
	g := NewCodeGenerator()

	code, err := g.Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)

	for _, c := range code {
		assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q", c)
	}
}

func TestCodeGenerator_Uniqueness(t *testing.T) {
	g := NewCodeGenerator()
	codes := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		codes[code] = true
	}

	// 62^6 possible codes, collisions in 1000 draws are practically impossible
	assert.Len(t, codes, 1000)
}

func TestCodeGenerator_CoversAlphabet(t *testing.T) {
	g := NewCodeGenerator()
	seen := make(map[rune]bool)

	for i := 0; i < 2000; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		for _, c := range code {
			seen[c] = true
		}
	}

	assert.Len(t, seen, len(Alphabet))
}

func TestCodeGenerator_SourceError(t *testing.T) {
	g := &CodeGenerator{source: failingReader{}, length: DefaultLength}

	_, err := g.Generate()
	assert.Error(t, err)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{name: "lowercase", code: "abc123", expected: true},
		{name: "mixed case", code: "AbC9", expected: true},
		{name: "single char", code: "x", expected: true},
		{name: "max length", code: strings.Repeat("a", MaxLength), expected: true},
		{name: "empty", code: "", expected: false},
		{name: "too long", code: strings.Repeat("a", MaxLength+1), expected: false},
		{name: "dash", code: "my-link", expected: false},
		{name: "slash", code: "a/b", expected: false},
		{name: "unicode", code: "città", expected: false},
		{name: "reserved api", code: "api", expected: false},
		{name: "reserved 404", code: "404", expected: false},
		{name: "reserved is case sensitive", code: "API", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValid(tt.code))
		})
	}
}
