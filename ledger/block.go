package ledger

// Block is a single link of the ledger.
type Block[E any] struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Entry     E      `json:"entry"`
}
