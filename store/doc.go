// Package store saves and restores game sessions.
//
// A session is written as a JSON record with two fields: "deck", the cards
// left as [suit, value] pairs from the bottom of the deck to the top, and
// "players", the name and score of each player. Round counters and the
// round ledger are not part of the record, so a restored session counts
// rounds from zero again.
//
// The record itself is kept by a Backend: a plain file or a SQLite table.
package store
