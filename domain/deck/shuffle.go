package deck

import (
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Shuffle applies a uniform random permutation to the deck.
func (d *Deck[C]) Shuffle() {
	r := rand.New(d.shuffleSource())
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// shuffleSource returns the configured source, or a ChaCha8 generator keyed
// with 32 bytes taken from the suite random stream.
func (d *Deck[C]) shuffleSource() rand.Source {
	if d.source != nil {
		return d.source
	}
	var seed [32]byte
	suite.RandomStream().XORKeyStream(seed[:], seed[:])
	return rand.NewChaCha8(seed)
}
