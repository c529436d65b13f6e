package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/card-war/domain/war"
)

func playerNames(s *war.Session) [2]string {
	return [2]string{s.Players[0].Name, s.Players[1].Name}
}

// styledCard colours red suits and jokers.
func styledCard(c war.Card) string {
	switch {
	case c.IsJoker():
		return pterm.LightMagenta(c.String())
	case c.Suit() == war.Hearts || c.Suit() == war.Diamonds:
		return pterm.LightRed(c.String())
	default:
		return c.String()
	}
}

// roundMessage describes which rule decided the round.
func roundMessage(names [2]string, o war.Outcome) string {
	switch o.Effect {
	case war.EffectJokerReset:
		return "A Joker was drawn! Both players' scores are reset to 0!"
	case war.EffectAceBonus:
		return fmt.Sprintf("%s drew the Ace of Hearts and gets an extra point!", names[o.Winner])
	}
	if o.Tie() {
		return "It's a tie!"
	}
	return fmt.Sprintf("%s wins this round!", names[o.Winner])
}

func winnerMessage(names [2]string, res war.Result) string {
	if res.Tie() {
		return "The game is a tie!"
	}
	return fmt.Sprintf("%s is the overall winner!", names[res.Winner])
}

func scoreLine(names [2]string, scores [2]uint) string {
	return fmt.Sprintf("Scores: %s: %d, %s: %d", names[0], scores[0], names[1], scores[1])
}

func getRoundPanel(s *war.Session, o war.Outcome) pterm.Panel {
	names := playerNames(s)
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%s drew %s, %s drew %s", pterm.LightCyan(names[0]), styledCard(o.Cards[0]),
		pterm.LightCyan(names[1]), styledCard(o.Cards[1]))
	body += pterm.Sprintfln("%s", roundMessage(names, o))
	body += scoreLine(names, o.Scores)
	title := pterm.LightYellow("|ROUND " + strconv.Itoa(o.Round) + "|")
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)}
}

func getResultPanel(s *war.Session, res war.Result) pterm.Panel {
	names := playerNames(s)
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%d rounds played, %d cards left", res.Rounds, s.Deck.Remaining())
	if res.Exhausted {
		body += pterm.Sprintfln("%s", pterm.LightRed("Not enough cards to continue."))
	}
	body += pterm.Sprintfln("%s", scoreLine(names, res.Scores))
	body += pterm.LightGreen(winnerMessage(names, res))
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|FINAL|")).WithTitleTopCenter().Sprint(body)}
}

func printRound(s *war.Session, o war.Outcome) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getRoundPanel(s, o)}}).Render()
}

func printResult(s *war.Session, res war.Result) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getResultPanel(s, res)}}).Render()
}

func historyTable(s *war.Session) pterm.TableData {
	names := playerNames(s)
	data := pterm.TableData{{"Round", names[0], names[1], "Rule", "Score"}}
	for _, o := range s.History() {
		data = append(data, []string{
			strconv.Itoa(o.Round),
			o.Cards[0].String(),
			o.Cards[1].String(),
			string(o.Effect),
			fmt.Sprintf("%d - %d", o.Scores[0], o.Scores[1]),
		})
	}
	return data
}

func printHistory(s *war.Session) {
	if len(s.History()) == 0 {
		return
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(historyTable(s)).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}
