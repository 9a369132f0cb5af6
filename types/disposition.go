package types

// BlockInfo describes the rollup block that carries an operation. It is
// passed through to callers untouched.
type BlockInfo struct {
	BlockNumber int64 `json:"blockNumber"`
	Committed   bool  `json:"committed"`
	Verified    bool  `json:"verified"`
}

// Disposition is the outcome of a single status query against the rollup
// network for one identifier at one confirmation level.
type Disposition struct {
	// Resolved is false while the network has not reached the requested
	// confirmation level for the operation. All other fields are only
	// meaningful when Resolved is true.
	Resolved   bool
	Success    bool
	FailReason string
	Block      *BlockInfo
}

// Receipt is returned by tracker awaits once the requested confirmation
// level is reached.
type Receipt struct {
	Level ConfirmationLevel
	Block *BlockInfo
}
