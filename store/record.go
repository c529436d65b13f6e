package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/card-war/domain/deck"
	"github.com/luca-patrignani/card-war/domain/war"
)

var (
	// ErrRecordNotFound is returned when nothing has been saved yet.
	ErrRecordNotFound = errors.New("no saved game found")

	// ErrRecordCorrupt is returned when a record cannot be turned back into
	// a session.
	ErrRecordCorrupt = errors.New("saved game is corrupt")
)

const maxJokers = 2

// Record is the persisted form of a session.
type Record struct {
	Deck    []war.Card     `json:"deck"`
	Players []PlayerRecord `json:"players"`
}

// PlayerRecord fields are pointers so that a missing key can be told apart
// from an empty name or a zero score.
type PlayerRecord struct {
	Name  *string `json:"name"`
	Score *int    `json:"score"`
}

// Encode serializes the deck and players of a session.
func Encode(s *war.Session) ([]byte, error) {
	r := Record{
		Deck:    s.Deck.Cards(),
		Players: make([]PlayerRecord, 0, len(s.Players)),
	}
	for _, p := range s.Players {
		name, score := p.Name, int(p.Score())
		r.Players = append(r.Players, PlayerRecord{Name: &name, Score: &score})
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	return data, nil
}

// Decode rebuilds a session from a record. Any malformed part makes the
// whole record rejected with ErrRecordCorrupt.
func Decode(data []byte, opts ...war.Option) (*war.Session, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupt, err)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupt, err)
	}
	var players [2]war.Player
	for i, pr := range r.Players {
		p, err := war.RestorePlayer(*pr.Name, uint(*pr.Score))
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %v", ErrRecordCorrupt, i+1, err)
		}
		players[i] = p
	}
	return war.NewSession(deck.New(r.Deck), players[0], players[1], opts...), nil
}

// validate checks what the JSON decoding alone cannot: the deck must be a
// part of a fresh deck and there must be exactly two players.
func (r Record) validate() error {
	if r.Deck == nil {
		return errors.New("missing deck")
	}
	if len(r.Deck) > len(war.StandardCards()) {
		return fmt.Errorf("deck holds %d cards", len(r.Deck))
	}
	jokers := 0
	seen := make(map[war.Card]bool, len(r.Deck))
	for _, c := range r.Deck {
		if c.IsJoker() {
			jokers++
			continue
		}
		if seen[c] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if jokers > maxJokers {
		return fmt.Errorf("deck holds %d jokers", jokers)
	}
	if len(r.Players) != 2 {
		return fmt.Errorf("expected 2 players, got %d", len(r.Players))
	}
	for i, p := range r.Players {
		if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
			return fmt.Errorf("player %d has no name", i+1)
		}
		if p.Score == nil {
			return fmt.Errorf("player %d has no score", i+1)
		}
		if *p.Score < 0 {
			return fmt.Errorf("player %d has negative score %d", i+1, *p.Score)
		}
	}
	return nil
}
