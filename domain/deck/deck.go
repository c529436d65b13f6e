package deck

import (
	"errors"
	"math/rand/v2"
)

// ErrExhausted is returned when drawing from an empty deck.
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered pile of cards. The last element of the pile is the top
// of the deck, so drawing pops from the end.
type Deck[C any] struct {
	cards  []C
	source rand.Source
}

type Option func(deckConfig) deckConfig

type deckConfig struct {
	source rand.Source
}

// WithSource makes the deck shuffle with the given source instead of fresh
// entropy. Mostly useful to get reproducible decks in tests.
func WithSource(source rand.Source) Option {
	return func(c deckConfig) deckConfig {
		c.source = source
		return c
	}
}

// New returns a deck holding a copy of cards, bottom first. The order is kept
// as is: call Shuffle to randomize it.
func New[C any](cards []C, opts ...Option) *Deck[C] {
	var c deckConfig
	for _, opt := range opts {
		c = opt(c)
	}
	pile := make([]C, len(cards))
	copy(pile, cards)
	return &Deck[C]{
		cards:  pile,
		source: c.source,
	}
}

// Draw removes and returns the card on top of the deck.
func (d *Deck[C]) Draw() (C, error) {
	var card C
	if len(d.cards) == 0 {
		return card, ErrExhausted
	}
	last := len(d.cards) - 1
	card = d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// Remaining returns how many cards are left.
func (d *Deck[C]) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the pile, bottom first.
func (d *Deck[C]) Cards() []C {
	out := make([]C, len(d.cards))
	copy(out, d.cards)
	return out
}
