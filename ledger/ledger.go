package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

const genesisPrevHash = "0"

// Ledger is an append-only chain of blocks. The first block is a genesis
// block carrying the zero entry.
type Ledger[E any] struct {
	blocks []Block[E]
	now    func() time.Time
}

// New creates a ledger with an initialized genesis block.
func New[E any]() *Ledger[E] {
	l := &Ledger[E]{now: time.Now}
	genesis := Block[E]{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  genesisPrevHash,
	}
	// the zero entry of any JSON encodable type always marshals
	genesis.Hash, _ = calculateHash(genesis)
	l.blocks = []Block[E]{genesis}
	return l
}

// Append links a new block holding entry to the end of the chain.
func (l *Ledger[E]) Append(entry E) (Block[E], error) {
	latest := l.blocks[len(l.blocks)-1]
	b := Block[E]{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Entry:     entry,
	}
	hash, err := calculateHash(b)
	if err != nil {
		return Block[E]{}, fmt.Errorf("failed to hash block %d: %w", b.Index, err)
	}
	b.Hash = hash
	if err := validateBlock(b, latest); err != nil {
		return Block[E]{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return b, nil
}

// Latest returns the most recently appended block.
func (l *Ledger[E]) Latest() Block[E] {
	return l.blocks[len(l.blocks)-1]
}

// Len returns the number of entries, genesis excluded.
func (l *Ledger[E]) Len() int {
	return len(l.blocks) - 1
}

// Entries returns the appended entries in order, genesis excluded.
func (l *Ledger[E]) Entries() []E {
	out := make([]E, 0, l.Len())
	for _, b := range l.blocks[1:] {
		out = append(out, b.Entry)
	}
	return out
}

// Verify checks the genesis block and the index, hash and linkage of every
// following block.
func (l *Ledger[E]) Verify() error {
	if l.blocks[0].PrevHash != genesisPrevHash {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock[E any](current, previous Block[E]) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expected, err := calculateHash(current)
	if err != nil {
		return err
	}
	if current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of the index, timestamp, previous hash
// and JSON encoded entry of a block.
func calculateHash[E any](b Block[E]) (string, error) {
	entry, err := json.Marshal(b.Entry)
	if err != nil {
		return "", err
	}
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, entry)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:]), nil
}
