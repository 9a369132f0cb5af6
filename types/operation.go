package types

const (
	OpKindPriority = "priority"
	OpKindTx       = "tx"
)

// TrackedOperation is the journal record of one operation the daemon is
// following.
type TrackedOperation struct {
	// Kind is OpKindPriority for operations entering through the outer
	// chain, OpKindTx for rollup-native transactions.
	Kind string

	// Identifier is the outer-chain tx hash for priority operations and
	// the rollup tx hash otherwise.
	Identifier string

	// SerialID is only meaningful for priority operations. It is -1 until
	// the submitting transaction is mined.
	SerialID int64

	State      string
	FailReason string
}
