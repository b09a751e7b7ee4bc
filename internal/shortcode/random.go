package shortcode

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
	"time"
)

// RandomSource yields uniform random integers in [0, max).
type RandomSource interface {
	IntN(max int) int
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// NewCryptoSource creates a cryptographically strong random source.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

func (*CryptoSource) IntN(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// crypto/rand failing mid-flight leaves no safe recovery at
		// this level; degrade to the pseudo-random tier for this draw.
		return mathrand.Intn(max)
	}

	return int(n.Int64())
}

// PseudoSource draws from math/rand. It is the weak tier: codes remain well
// distributed but are predictable to an attacker who can observe enough of
// them.
type PseudoSource struct {
	rng *mathrand.Rand
}

// NewPseudoSource creates a time-seeded pseudo-random source.
func NewPseudoSource() *PseudoSource {
	return &PseudoSource{rng: mathrand.New(mathrand.NewSource(time.Now().UnixNano()))}
}

func (p *PseudoSource) IntN(max int) int {
	return p.rng.Intn(max)
}
