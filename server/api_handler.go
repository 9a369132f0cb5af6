package server

import (
	"github.com/sisu-network/zeyes/core"
	"github.com/sisu-network/zeyes/types"
)

type ApiHandler struct {
	processor *core.Processor
}

func NewApi(processor *core.Processor) *ApiHandler {
	return &ApiHandler{
		processor: processor,
	}
}

// Empty function for checking health only.
func (api *ApiHandler) CheckHealth() {
}

// TrackPriorityOp starts following an operation submitted through the outer
// chain, identified by the hash of the submitting transaction.
func (api *ApiHandler) TrackPriorityOp(l1TxHash string) error {
	return api.processor.TrackPriorityOp(l1TxHash)
}

// TrackTx starts following a rollup-native transaction by its hash.
func (api *ApiHandler) TrackTx(txHash string) error {
	return api.processor.TrackTx(txHash)
}

// OperationStatus returns the journal record of a followed operation.
func (api *ApiHandler) OperationStatus(kind, identifier string) (*types.TrackedOperation, error) {
	return api.processor.OperationStatus(kind, identifier)
}
