package war

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON writes numeric values as integers and the Joker as "Joker".
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsJoker() {
		return json.Marshal(JokerName)
	}
	return json.Marshal(int(v))
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != JokerName {
			return fmt.Errorf("%w: unknown value %q", ErrInvalidCard, name)
		}
		*v = Joker
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: value %s is neither a number nor %q", ErrInvalidCard, data, JokerName)
	}
	if n < int(MinValue) || n > int(MaxValue) {
		return fmt.Errorf("%w: value %d out of range", ErrInvalidCard, n)
	}
	*v = Value(n)
	return nil
}

func (s Suit) MarshalJSON() ([]byte, error) {
	if _, ok := suitNames[s]; !ok {
		return nil, fmt.Errorf("%w: unknown suit %d", ErrInvalidCard, s)
	}
	return json.Marshal(s.String())
}

func (s *Suit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: suit %s is not a string", ErrInvalidCard, data)
	}
	suit, err := ParseSuit(name)
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

// MarshalJSON writes the card as a two element [suit, value] array, e.g.
// ["Hearts", 14] or ["Special", "Joker"].
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{c.suit, c.value})
}

// UnmarshalJSON reads the [suit, value] form and validates the pair.
func (c *Card) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: card %s is not a [suit, value] pair", ErrInvalidCard, data)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: card has %d fields, expected 2", ErrInvalidCard, len(pair))
	}
	var suit Suit
	if err := json.Unmarshal(pair[0], &suit); err != nil {
		return err
	}
	var value Value
	if err := json.Unmarshal(pair[1], &value); err != nil {
		return err
	}
	if suit == Special || value.IsJoker() {
		if suit != Special || !value.IsJoker() {
			return fmt.Errorf("%w: %s of %s", ErrInvalidCard, value, suit)
		}
		*c = NewJoker()
		return nil
	}
	card, err := NewCard(suit, value)
	if err != nil {
		return err
	}
	*c = card
	return nil
}
