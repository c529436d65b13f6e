package war

// Effect names the rule that decided a round.
type Effect string

const (
	EffectJokerReset Effect = "joker_reset"
	EffectAceBonus   Effect = "ace_bonus"
	EffectCompare    Effect = "compare"
)

// NoWinner is the winner index of rounds where nobody scores.
const NoWinner = -1

// Verdict is the decision taken on a pair of cards, before it is applied to
// the players.
type Verdict struct {
	Effect Effect
	Winner int // 0 or 1 for the scoring player, NoWinner otherwise
}

// Judge decides a round from the card of player one and the card of player
// two. Rules are checked in order and the first match wins:
//  1. a Joker on either side resets both scores
//  2. the Ace of Hearts of player one gives player one a point
//  3. the Ace of Hearts of player two gives player two a point
//  4. otherwise the higher value scores, equal values tie
func Judge(card1, card2 Card) Verdict {
	switch {
	case card1.IsJoker() || card2.IsJoker():
		return Verdict{Effect: EffectJokerReset, Winner: NoWinner}
	case card1.IsAceOfHearts():
		return Verdict{Effect: EffectAceBonus, Winner: 0}
	case card2.IsAceOfHearts():
		return Verdict{Effect: EffectAceBonus, Winner: 1}
	case card1.Value() > card2.Value():
		return Verdict{Effect: EffectCompare, Winner: 0}
	case card2.Value() > card1.Value():
		return Verdict{Effect: EffectCompare, Winner: 1}
	default:
		return Verdict{Effect: EffectCompare, Winner: NoWinner}
	}
}

// Tie reports whether the verdict is a value comparison with equal values.
func (v Verdict) Tie() bool {
	return v.Effect == EffectCompare && v.Winner == NoWinner
}

// Apply mutates the scores of the two players according to the verdict.
func (v Verdict) Apply(p1, p2 *Player) {
	if v.Effect == EffectJokerReset {
		p1.ResetScore()
		p2.ResetScore()
		return
	}
	switch v.Winner {
	case 0:
		p1.AddPoint()
	case 1:
		p2.AddPoint()
	}
}

// Outcome describes a resolved round.
type Outcome struct {
	Round int
	Cards [2]Card
	Verdict
	Scores [2]uint
}

// Resolve judges the two cards, applies the verdict to the players and
// returns what happened. The round number is left to the caller.
func Resolve(card1, card2 Card, p1, p2 *Player) Outcome {
	v := Judge(card1, card2)
	v.Apply(p1, p2)
	return Outcome{
		Cards:   [2]Card{card1, card2},
		Verdict: v,
		Scores:  [2]uint{p1.Score(), p2.Score()},
	}
}
