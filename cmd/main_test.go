package main

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/card-war/config"
	"github.com/luca-patrignani/card-war/domain/deck"
	"github.com/luca-patrignani/card-war/domain/war"
)

var names = [2]string{"Alice", "Bob"}

func TestRoundMessage(t *testing.T) {
	cases := []struct {
		outcome war.Outcome
		want    string
	}{
		{war.Outcome{Verdict: war.Verdict{Effect: war.EffectJokerReset, Winner: war.NoWinner}},
			"A Joker was drawn! Both players' scores are reset to 0!"},
		{war.Outcome{Verdict: war.Verdict{Effect: war.EffectAceBonus, Winner: 1}},
			"Bob drew the Ace of Hearts and gets an extra point!"},
		{war.Outcome{Verdict: war.Verdict{Effect: war.EffectCompare, Winner: 0}},
			"Alice wins this round!"},
		{war.Outcome{Verdict: war.Verdict{Effect: war.EffectCompare, Winner: war.NoWinner}},
			"It's a tie!"},
	}
	for _, c := range cases {
		if got := roundMessage(names, c.outcome); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}

func TestWinnerMessage(t *testing.T) {
	if got := winnerMessage(names, war.Result{Winner: 1}); got != "Bob is the overall winner!" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := winnerMessage(names, war.Result{Winner: war.NoWinner}); got != "The game is a tie!" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestHistoryTable(t *testing.T) {
	ten, err := war.NewCard(war.Spades, 10)
	if err != nil {
		t.Fatal(err)
	}
	five, err := war.NewCard(war.Clubs, 5)
	if err != nil {
		t.Fatal(err)
	}
	p1, _ := war.NewPlayer("Alice")
	p2, _ := war.NewPlayer("Bob")
	s := war.NewSession(deck.New([]war.Card{five, ten}), p1, p2)
	if _, err := s.PlayRound(); err != nil {
		t.Fatal(err)
	}
	data := historyTable(s)
	if len(data) != 2 {
		t.Fatalf("expected header and one row, got %d rows", len(data))
	}
	row := data[1]
	if row[1] != "10♠" || row[2] != "5♣" || row[3] != "compare" || row[4] != "1 - 0" {
		t.Fatalf("unexpected row %v", row)
	}
}

func TestOpenFileStore(t *testing.T) {
	cfg := config.Default()
	cfg.SavePath = t.TempDir() + "/save.json"
	st, closeStore, err := openStore(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()
	if st == nil {
		t.Fatal("expected a store")
	}
}

func TestResolveConfigKeepsValidFlags(t *testing.T) {
	cfg, problems := resolveConfig(config.Default(), flagValues{
		backend:  "redis",
		savePath: "mine.json",
		slot:     "friday",
		debug:    true,
	})
	if len(problems) != 1 || !errors.Is(problems[0], config.ErrInvalid) {
		t.Fatalf("expected one backend problem, got %v", problems)
	}
	if cfg.Backend != config.BackendFile {
		t.Fatalf("expected the file backend, got %q", cfg.Backend)
	}
	if cfg.SavePath != "mine.json" || cfg.Slot != "friday" || !cfg.Debug {
		t.Fatalf("valid flags dropped: %+v", cfg)
	}
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	base := config.Default()
	base.Backend = "redis"
	cfg, problems := resolveConfig(base, flagValues{backend: config.BackendSQLite, dbPath: "games.db"})
	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
	if cfg.Backend != config.BackendSQLite || cfg.DBPath != "games.db" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}
