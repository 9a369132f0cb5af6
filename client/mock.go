package client

import (
	"context"

	"github.com/sisu-network/zeyes/types"
)

type MockProvider struct {
	PriorityOpDispositionFunc func(ctx context.Context, serialID uint64,
		level types.ConfirmationLevel) (*types.Disposition, error)
	TxDispositionFunc func(ctx context.Context, txHash string,
		level types.ConfirmationLevel) (*types.Disposition, error)
	ContractAddressFunc func(ctx context.Context) (string, error)
}

func (mock *MockProvider) PriorityOpDisposition(ctx context.Context, serialID uint64,
	level types.ConfirmationLevel) (*types.Disposition, error) {
	if mock.PriorityOpDispositionFunc != nil {
		return mock.PriorityOpDispositionFunc(ctx, serialID, level)
	}

	return nil, nil
}

func (mock *MockProvider) TxDisposition(ctx context.Context, txHash string,
	level types.ConfirmationLevel) (*types.Disposition, error) {
	if mock.TxDispositionFunc != nil {
		return mock.TxDispositionFunc(ctx, txHash, level)
	}

	return nil, nil
}

func (mock *MockProvider) ContractAddress(ctx context.Context) (string, error) {
	if mock.ContractAddressFunc != nil {
		return mock.ContractAddressFunc(ctx)
	}

	return "", nil
}
