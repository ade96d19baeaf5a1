package encoder

import (
	"crypto/rand"
	"io"
	"math/big"
)

const (
	// Alphabet is the character set short codes are drawn from
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength is the length of generated short codes
	DefaultLength = 6
	// MaxLength is the longest short code a user may request
	MaxLength = 32
)

// reserved holds path segments served by the router itself
var reserved = map[string]struct{}{
	"api":     {},
	"ws":      {},
	"health":  {},
	"swagger": {},
	"404":     {},
}

// CodeGenerator produces random short codes
type CodeGenerator struct {
	source io.Reader
	length int
}

// NewCodeGenerator creates a generator backed by crypto/rand
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{source: rand.Reader, length: DefaultLength}
}

// Generate returns a code drawn uniformly from Alphabet
func (g *CodeGenerator) Generate() (string, error) {
	code := make([]byte, g.length)
	alphabetLen := big.NewInt(int64(len(Alphabet)))

	for i := range code {
		idx, err := rand.Int(g.source, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = Alphabet[idx.Int64()]
	}

	return string(code), nil
}

// IsValid checks if a requested code can be used as a short code
func IsValid(code string) bool {
	if len(code) == 0 || len(code) > MaxLength {
		return false
	}
	if _, ok := reserved[code]; ok {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}
