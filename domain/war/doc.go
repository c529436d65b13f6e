// Package war implements a two-player card comparison game played with a
// 54-card deck: the 52 standard cards plus two Jokers.
//
// # Core Types
//
// Card: an immutable suit/value pair. Value is either 2-14 (Ace=14) or the
// Joker marker, which only appears with the Special suit.
//
// Player: a name and a score.
//
// Session: two players sharing one deck, with the count and ledger of the
// rounds played.
//
// # Rounds
//
// Every round draws one card per player, the first player's card first. The
// pair is judged by the first matching rule:
//
//  1. a Joker on either side resets both scores to zero
//  2. an Ace of Hearts gives its owner a point, player one checked first
//  3. the higher value scores a point, equal values tie
//
// A round needs two cards; when fewer are left the game stops and any single
// card left in the deck is never played.
package war
