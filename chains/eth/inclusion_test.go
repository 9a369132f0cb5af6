package eth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/sisu-network/zeyes/types"
)

func TestInclusionWaiter_ReceiptAfterRetries(t *testing.T) {
	calls := 0
	client := &MockEthClient{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			calls++
			if calls < 3 {
				return nil, fmt.Errorf("not found")
			}

			return &ethtypes.Receipt{TxHash: txHash}, nil
		},
	}

	waiter := NewInclusionWaiter(client, time.Millisecond)
	receipt, err := waiter.WaitForReceipt(context.Background(), common.Hash{1})
	require.Nil(t, err)
	require.Equal(t, common.Hash{1}, receipt.TxHash)
	require.Equal(t, 3, calls)
}

func TestInclusionWaiter_ContextCancelled(t *testing.T) {
	client := &MockEthClient{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			return nil, fmt.Errorf("not found")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	waiter := NewInclusionWaiter(client, time.Millisecond)
	_, err := waiter.WaitForReceipt(ctx, common.Hash{1})
	require.NotNil(t, err)
	require.IsType(t, &types.InclusionError{}, err)
}

func TestInclusionWaiter_AttemptsExhausted(t *testing.T) {
	client := &MockEthClient{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
			return nil, fmt.Errorf("not found")
		},
	}

	waiter := NewInclusionWaiter(client, time.Millisecond).(*defaultInclusionWaiter)
	waiter.maxRetry = 2

	_, err := waiter.WaitForReceipt(context.Background(), common.Hash{1})
	require.NotNil(t, err)
	require.IsType(t, &types.InclusionError{}, err)
}
