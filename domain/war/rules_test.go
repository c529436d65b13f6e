package war

import "testing"

func players() (*Player, *Player) {
	return &Player{Name: "Alice"}, &Player{Name: "Bob"}
}

func TestJokerResetsScores(t *testing.T) {
	p1, p2 := players()
	p1.score, p2.score = 3, 5
	out := Resolve(NewJoker(), mustCard(t, Diamonds, 7), p1, p2)
	if out.Effect != EffectJokerReset {
		t.Fatalf("expected joker reset, got %s", out.Effect)
	}
	if p1.score != 0 || p2.score != 0 {
		t.Fatalf("expected scores reset, got %d and %d", p1.score, p2.score)
	}
	if out.Winner != NoWinner {
		t.Fatalf("expected no winner, got %d", out.Winner)
	}
}

func TestJokerBeatsAceOfHearts(t *testing.T) {
	p1, p2 := players()
	p1.score, p2.score = 2, 2
	out := Resolve(NewJoker(), mustCard(t, Hearts, Ace), p1, p2)
	if out.Effect != EffectJokerReset {
		t.Fatalf("expected joker reset, got %s", out.Effect)
	}
	if out.Scores != [2]uint{0, 0} {
		t.Fatalf("expected 0-0, got %v", out.Scores)
	}

	p1.score, p2.score = 2, 2
	out = Resolve(mustCard(t, Hearts, Ace), NewJoker(), p1, p2)
	if out.Effect != EffectJokerReset || out.Scores != [2]uint{0, 0} {
		t.Fatalf("expected joker reset on the second card, got %s %v", out.Effect, out.Scores)
	}
}

func TestAceOfHeartsBonusNotCompare(t *testing.T) {
	p1, p2 := players()
	out := Resolve(mustCard(t, Hearts, Ace), mustCard(t, Spades, King), p1, p2)
	if out.Effect != EffectAceBonus {
		t.Fatalf("expected ace bonus, got %s", out.Effect)
	}
	if out.Winner != 0 || out.Scores != [2]uint{1, 0} {
		t.Fatalf("expected player 1 to score, got winner %d scores %v", out.Winner, out.Scores)
	}
}

func TestAceOfHeartsFirstPlayerChecked(t *testing.T) {
	// player two holds a higher-looking ace of another suit: the bonus still wins
	p1, p2 := players()
	out := Resolve(mustCard(t, Hearts, Ace), mustCard(t, Spades, Ace), p1, p2)
	if out.Effect != EffectAceBonus || out.Winner != 0 {
		t.Fatalf("expected ace bonus for player 1, got %s winner %d", out.Effect, out.Winner)
	}
}

func TestAceOfHeartsSecondPlayer(t *testing.T) {
	p1, p2 := players()
	out := Resolve(mustCard(t, Clubs, 14), mustCard(t, Hearts, Ace), p1, p2)
	if out.Effect != EffectAceBonus || out.Winner != 1 {
		t.Fatalf("expected ace bonus for player 2, got %s winner %d", out.Effect, out.Winner)
	}
	if p1.score != 0 || p2.score != 1 {
		t.Fatalf("expected 0-1, got %d-%d", p1.score, p2.score)
	}
}

func TestCompareHigherWins(t *testing.T) {
	p1, p2 := players()
	out := Resolve(mustCard(t, Clubs, 4), mustCard(t, Diamonds, Queen), p1, p2)
	if out.Effect != EffectCompare || out.Winner != 1 {
		t.Fatalf("expected compare won by player 2, got %s winner %d", out.Effect, out.Winner)
	}
	if out.Scores != [2]uint{0, 1} {
		t.Fatalf("expected 0-1, got %v", out.Scores)
	}
}

func TestTie(t *testing.T) {
	p1, p2 := players()
	p1.score, p2.score = 1, 4
	out := Resolve(mustCard(t, Clubs, 9), mustCard(t, Spades, 9), p1, p2)
	if !out.Tie() {
		t.Fatalf("expected a tie, got %s winner %d", out.Effect, out.Winner)
	}
	if out.Scores != [2]uint{1, 4} {
		t.Fatalf("expected scores unchanged, got %v", out.Scores)
	}
}

func TestJudgeIsDeterministic(t *testing.T) {
	cards := StandardCards()
	for _, a := range cards {
		for _, b := range cards {
			if Judge(a, b) != Judge(a, b) {
				t.Fatalf("judge changed its mind on %s/%s", a, b)
			}
		}
	}
}

func TestRoundSequence(t *testing.T) {
	p1, p2 := players()
	rounds := [][2]Card{
		{mustCard(t, Spades, 10), mustCard(t, Clubs, 5)},
		{NewJoker(), mustCard(t, Diamonds, 7)},
		{mustCard(t, Hearts, Ace), mustCard(t, Clubs, 2)},
	}
	effects := []Effect{EffectCompare, EffectJokerReset, EffectAceBonus}
	for i, r := range rounds {
		out := Resolve(r[0], r[1], p1, p2)
		if out.Effect != effects[i] {
			t.Fatalf("round %d: expected %s, got %s", i+1, effects[i], out.Effect)
		}
	}
	if p1.score != 1 || p2.score != 0 {
		t.Fatalf("expected final 1-0, got %d-%d", p1.score, p2.score)
	}
}
