// Package shortcode generates random shortcodes for shortened links.
//
// Generated codes draw from an alphabet that excludes the visually
// confusable glyphs 0, O, 1, l and I. The validation side independently
// rejects those glyphs in user-supplied codes; the two rules attack the
// same problem from opposite ends and are intentionally kept separate.
package shortcode

import (
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

// Alphabet is the 58-glyph charset used for generated codes.
const Alphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	minLength = 6
	maxLength = 8
)

// Generator produces random shortcodes of length 6 to 8.
//
// Repeated calls are not guaranteed unique; the caller must reconcile
// against the record store (insert-if-absent with retry).
type Generator struct {
	rand RandomSource
	// One crypto-backed generator per length; nil when running on the
	// weak tier.
	strong [maxLength - minLength + 1]func() string
}

// New creates a Generator backed by a cryptographically strong random
// source. If the strong source is unavailable it falls back to a seeded
// pseudo-random source; this is a degraded-security mode and is logged as
// such rather than treated as equivalent.
func New(logger *zap.Logger) *Generator {
	g := &Generator{}

	strongOK := true

	for i := range g.strong {
		gen, err := nanoid.CustomASCII(Alphabet, minLength+i)
		if err != nil {
			strongOK = false

			break
		}

		g.strong[i] = gen
	}

	if strongOK {
		g.rand = NewCryptoSource()

		return g
	}

	logger.Warn("crypto random source unavailable, falling back to pseudo-random shortcode generation")

	g.strong = [maxLength - minLength + 1]func() string{}
	g.rand = NewPseudoSource()

	return g
}

// NewWithSource creates a Generator that draws every choice from the given
// source. Used by tests and by the weak tier.
func NewWithSource(rand RandomSource) *Generator {
	return &Generator{rand: rand}
}

// Generate returns a new random shortcode of length 6, 7 or 8.
func (g *Generator) Generate() string {
	idx := g.rand.IntN(maxLength - minLength + 1)

	if gen := g.strong[idx]; gen != nil {
		return gen()
	}

	length := minLength + idx
	code := make([]byte, length)

	for i := range code {
		code[i] = Alphabet[g.rand.IntN(len(Alphabet))]
	}

	return string(code)
}
