package types

import "fmt"

// RejectionError means the rollup network explicitly reported that an
// operation did not succeed. It is a semantic outcome, not a transient
// fault, and is never retried.
type RejectionError struct {
	Reason string
	Block  *BlockInfo
}

func NewRejectionError(reason string, block *BlockInfo) error {
	return &RejectionError{
		Reason: reason,
		Block:  block,
	}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("operation rejected by the rollup network: %s", e.Reason)
}

// ExtractionError means the inclusion receipt of an outer-chain transaction
// did not carry the expected priority request log, so the priority operation
// serial id could never be established. Fatal for the whole operation.
type ExtractionError struct {
	TxHash string
	Reason string
}

func NewExtractionError(txHash, reason string) error {
	return &ExtractionError{
		TxHash: txHash,
		Reason: reason,
	}
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract priority request from receipt of tx %s: %s", e.TxHash, e.Reason)
}

// InclusionError means the outer chain never reported the submitting
// transaction as included.
type InclusionError struct {
	TxHash string
	Cause  error
}

func NewInclusionError(txHash string, cause error) error {
	return &InclusionError{
		TxHash: txHash,
		Cause:  cause,
	}
}

func (e *InclusionError) Error() string {
	return fmt.Sprintf("tx %s was not included on the outer chain: %v", e.TxHash, e.Cause)
}

func (e *InclusionError) Unwrap() error {
	return e.Cause
}

// ObservationError means repeated status polls against the rollup network
// failed at the transport level and the retry budget is exhausted.
type ObservationError struct {
	Attempts int
	Cause    error
}

func NewObservationError(attempts int, cause error) error {
	return &ObservationError{
		Attempts: attempts,
		Cause:    cause,
	}
}

func (e *ObservationError) Error() string {
	return fmt.Sprintf("status poll failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *ObservationError) Unwrap() error {
	return e.Cause
}
