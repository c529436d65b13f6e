package war

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/luca-patrignani/card-war/domain/deck"
	"github.com/luca-patrignani/card-war/ledger"
)

var (
	// ErrCannotContinue is returned by PlayRound when the deck holds fewer
	// than two cards. It matches deck.ErrExhausted.
	ErrCannotContinue = fmt.Errorf("not enough cards to continue: %w", deck.ErrExhausted)

	// ErrInvalidRoundLimit is returned for round limits that are not a
	// non-negative integer.
	ErrInvalidRoundLimit = errors.New("invalid round limit")
)

// Session is a game between two players sharing one deck.
type Session struct {
	Deck    *deck.Deck[Card]
	Players [2]Player

	rounds      int
	history     *ledger.Ledger[Outcome]
	logger      *slog.Logger
	onRound     func(Outcome)
	deckOptions []deck.Option
}

// Result is the final state of a Run.
type Result struct {
	Rounds    int
	Scores    [2]uint
	Winner    int  // 0 or 1, NoWinner on a tie
	Exhausted bool // the deck ran out before the round limit
}

// Tie reports whether the game ended with equal scores.
func (r Result) Tie() bool {
	return r.Winner == NoWinner
}

type Option func(Session) Session

// WithLogger sets the logger used for round and session events.
func WithLogger(logger *slog.Logger) Option {
	return func(s Session) Session {
		s.logger = logger
		return s
	}
}

// OnRound registers a callback invoked after every played round.
func OnRound(fn func(Outcome)) Option {
	return func(s Session) Session {
		s.onRound = fn
		return s
	}
}

// WithShuffleSource makes New shuffle the fresh deck with source.
func WithShuffleSource(source rand.Source) Option {
	return func(s Session) Session {
		s.deckOptions = append(s.deckOptions, deck.WithSource(source))
		return s
	}
}

// NewDeck builds the 54 cards of a fresh game and shuffles them.
func NewDeck(opts ...deck.Option) *deck.Deck[Card] {
	d := deck.New(StandardCards(), opts...)
	d.Shuffle()
	return d
}

// New starts a game between two freshly named players on a new shuffled deck.
func New(name1, name2 string, opts ...Option) (*Session, error) {
	p1, err := NewPlayer(name1)
	if err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}
	p2, err := NewPlayer(name2)
	if err != nil {
		return nil, fmt.Errorf("player 2: %w", err)
	}
	s := NewSession(nil, p1, p2, opts...)
	s.Deck = NewDeck(s.deckOptions...)
	return s, nil
}

// NewSession assembles a session from an existing deck and players, for
// instance ones restored from a save. Round counting starts from zero.
func NewSession(d *deck.Deck[Card], p1, p2 Player, opts ...Option) *Session {
	s := Session{
		Deck:    d,
		Players: [2]Player{p1, p2},
		history: ledger.New[Outcome](),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// PlayRound draws one card for each player, the first player's card first,
// and applies the round rules. With fewer than two cards left it returns
// ErrCannotContinue and leaves the session untouched.
func (s *Session) PlayRound() (Outcome, error) {
	if s.Deck.Remaining() < 2 {
		return Outcome{}, ErrCannotContinue
	}
	card1, err := s.Deck.Draw()
	if err != nil {
		return Outcome{}, err
	}
	card2, err := s.Deck.Draw()
	if err != nil {
		return Outcome{}, err
	}
	out := Resolve(card1, card2, &s.Players[0], &s.Players[1])
	s.rounds++
	out.Round = s.rounds

	if _, err := s.history.Append(out); err != nil {
		s.logger.Warn("round not recorded", "round", out.Round, "error", err)
	}
	s.logger.Debug("round played",
		"round", out.Round,
		"cards", fmt.Sprintf("%s/%s", card1, card2),
		"effect", out.Effect,
		"winner", out.Winner,
		"remaining", s.Deck.Remaining(),
	)
	if s.onRound != nil {
		s.onRound(out)
	}
	return out, nil
}

// Run plays rounds until limit rounds have been played or the deck cannot
// supply two more cards, then compares the final scores.
func (s *Session) Run(limit int) (Result, error) {
	if limit < 0 {
		return Result{}, fmt.Errorf("%w: %d is negative", ErrInvalidRoundLimit, limit)
	}
	var res Result
	for res.Rounds < limit {
		if _, err := s.PlayRound(); err != nil {
			if !errors.Is(err, deck.ErrExhausted) {
				return res, err
			}
			res.Exhausted = true
			break
		}
		res.Rounds++
	}
	res.Scores = s.Scores()
	res.Winner = s.Leader()
	s.logger.Debug("session finished", "rounds", res.Rounds, "winner", res.Winner, "exhausted", res.Exhausted)
	return res, nil
}

// Scores returns the current scores of both players.
func (s *Session) Scores() [2]uint {
	return [2]uint{s.Players[0].Score(), s.Players[1].Score()}
}

// Leader returns the index of the player with the strictly higher score, or
// NoWinner when the scores are equal.
func (s *Session) Leader() int {
	switch {
	case s.Players[0].Score() > s.Players[1].Score():
		return 0
	case s.Players[1].Score() > s.Players[0].Score():
		return 1
	default:
		return NoWinner
	}
}

// Rounds returns the number of rounds played since the session was created.
func (s *Session) Rounds() int {
	return s.rounds
}

// History returns the outcomes of the rounds played so far.
func (s *Session) History() []Outcome {
	return s.history.Entries()
}

// VerifyHistory checks the integrity of the round ledger.
func (s *Session) VerifyHistory() error {
	return s.history.Verify()
}

// ParseRoundLimit converts user input into a round limit.
func ParseRoundLimit(text string) (int, error) {
	text = strings.TrimSpace(text)
	limit, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRoundLimit, text)
	}
	if limit < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidRoundLimit, limit)
	}
	return limit, nil
}
