package store

import (
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/card-war/domain/war"
)

// Backend keeps a single serialized record.
type Backend interface {
	// Read returns the last written record, or ErrRecordNotFound.
	Read() ([]byte, error)
	// Write replaces the record as a whole.
	Write(data []byte) error
}

// Store saves and loads sessions through a Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// Save writes the deck and players of the session.
func (s *Store) Save(session *war.Session) error {
	data, err := Encode(session)
	if err != nil {
		return err
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("failed to write saved game: %w", err)
	}
	s.logger.Debug("game saved", "cards", session.Deck.Remaining(), "bytes", len(data))
	return nil
}

// Load restores the last saved session. The options are applied to the
// restored session.
func (s *Store) Load(opts ...war.Option) (*war.Session, error) {
	data, err := s.backend.Read()
	if err != nil {
		return nil, err
	}
	session, err := Decode(data, opts...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("game loaded", "cards", session.Deck.Remaining(),
		"player1", session.Players[0].Name, "player2", session.Players[1].Name)
	return session, nil
}
