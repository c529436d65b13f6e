// Package ledger keeps an append-only, hash-linked log of the rounds played
// in a game session.
//
// Each Block stores one entry together with its index, the time it was
// appended and the hash of the previous block, so that Verify can detect any
// entry rewritten after the fact. The ledger lives in memory only: it
// describes the current session and is dropped when the session ends.
package ledger
