package war

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/paulhankin/poker"
)

// ErrInvalidCard is returned when a suit/value pair does not describe a card
// of the deck.
var ErrInvalidCard = errors.New("invalid card")

// Suit of a card. Special is only used by Jokers.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
	Special
)

// StandardSuits lists the four suits in deck generation order.
var StandardSuits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
	Special:  "Special",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "Suit(" + strconv.Itoa(int(s)) + ")"
}

// ParseSuit is the inverse of Suit.String.
func ParseSuit(name string) (Suit, error) {
	for s, n := range suitNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, name)
}

// Value is either a numeric value in [MinValue, MaxValue] or the Joker marker.
// The zero Value is the Joker.
type Value uint8

const (
	Joker Value = 0

	MinValue Value = 2
	Jack     Value = 11
	Queen    Value = 12
	King     Value = 13
	Ace      Value = 14
	MaxValue Value = Ace
)

// JokerName is how the Joker value is written out.
const JokerName = "Joker"

// IsJoker reports whether v is the Joker marker.
func (v Value) IsJoker() bool {
	return v == Joker
}

func (v Value) String() string {
	switch v {
	case Joker:
		return JokerName
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(v))
}

// Card is an immutable suit/value pair.
type Card struct {
	suit  Suit
	value Value
}

// NewCard creates a standard card.
//
// Parameters:
//   - suit: Hearts, Diamonds, Clubs or Spades
//   - value: 2-14 (Jack=11, Queen=12, King=13, Ace=14)
//
// Use NewJoker for the Special suit.
func NewCard(suit Suit, value Value) (Card, error) {
	c := Card{suit: suit, value: value}
	if _, err := c.Poker(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// NewJoker returns a Joker card.
func NewJoker() Card {
	return Card{suit: Special, value: Joker}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Value() Value {
	return c.value
}

// IsJoker reports whether the card is a Joker.
func (c Card) IsJoker() bool {
	return c.value.IsJoker()
}

// IsAceOfHearts reports whether the card is the Ace of Hearts.
func (c Card) IsAceOfHearts() bool {
	return c.suit == Hearts && c.value == Ace
}

// Poker converts a standard card to its paulhankin/poker representation,
// where aces have rank 1. poker.MakeCard is the range check for suits and
// ranks, so Jokers and out-of-range values come back as ErrInvalidCard.
func (c Card) Poker() (poker.Card, error) {
	var none poker.Card
	if c.IsJoker() {
		return none, fmt.Errorf("%w: %s of %s has no poker equivalent", ErrInvalidCard, c.value, c.suit)
	}
	s := poker.Suit(c.suit)
	switch c.suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	case Spades:
		s = poker.Spade
	}
	var rank poker.Rank
	switch {
	case c.value == Ace:
		rank = 1
	case c.value >= MinValue:
		rank = poker.Rank(c.value)
	}
	pc, err := poker.MakeCard(s, rank)
	if err != nil {
		return none, fmt.Errorf("%w: %s of %s: %v", ErrInvalidCard, c.value, c.suit, err)
	}
	return pc, nil
}

// String returns a short form such as "A♥", "10♠" or "Joker".
func (c Card) String() string {
	if c.IsJoker() {
		return JokerName
	}
	var suit string
	switch c.suit {
	case Hearts:
		suit = "♥"
	case Diamonds:
		suit = "♦"
	case Clubs:
		suit = "♣"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}
	return c.value.String() + suit
}

// StandardCards returns the 54 cards of a fresh deck in generation order:
// suit by suit, values 2 to 14, with the two Jokers last.
func StandardCards() []Card {
	cards := make([]Card, 0, 54)
	for _, s := range StandardSuits {
		for v := MinValue; v <= MaxValue; v++ {
			cards = append(cards, Card{suit: s, value: v})
		}
	}
	return append(cards, NewJoker(), NewJoker())
}
