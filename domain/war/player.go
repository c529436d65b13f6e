package war

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a player is created without a name.
var ErrEmptyName = errors.New("player name must not be empty")

// Player is a named participant holding a score. The score only moves
// through AddPoint and ResetScore.
type Player struct {
	Name  string
	score uint
}

// NewPlayer creates a player with a zero score.
func NewPlayer(name string) (Player, error) {
	return RestorePlayer(name, 0)
}

// RestorePlayer creates a player with a score carried over from a saved game.
func RestorePlayer(name string, score uint) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, ErrEmptyName
	}
	return Player{Name: name, score: score}, nil
}

func (p Player) Score() uint {
	return p.score
}

// AddPoint increments the score by one.
func (p *Player) AddPoint() {
	p.score++
}

// ResetScore sets the score back to zero.
func (p *Player) ResetScore() {
	p.score = 0
}
