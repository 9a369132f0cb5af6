package eth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type MockEthClient struct {
	BlockNumberFunc        func(ctx context.Context) (uint64, error)
	TransactionReceiptFunc func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

func (mock *MockEthClient) BlockNumber(ctx context.Context) (uint64, error) {
	if mock.BlockNumberFunc != nil {
		return mock.BlockNumberFunc(ctx)
	}

	return 0, nil
}

func (mock *MockEthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	if mock.TransactionReceiptFunc != nil {
		return mock.TransactionReceiptFunc(ctx, txHash)
	}

	return nil, nil
}

type MockInclusionWaiter struct {
	WaitForReceiptFunc func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

func (mock *MockInclusionWaiter) WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	if mock.WaitForReceiptFunc != nil {
		return mock.WaitForReceiptFunc(ctx, txHash)
	}

	return nil, nil
}
