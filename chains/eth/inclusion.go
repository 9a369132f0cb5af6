package eth

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/zeyes/types"
)

const (
	MaxReceiptRetry = 120
)

// InclusionWaiter blocks until the outer chain reports a transaction as
// included and returns its receipt.
type InclusionWaiter interface {
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

type defaultInclusionWaiter struct {
	client    EthClient
	retryTime time.Duration
	maxRetry  int
}

func NewInclusionWaiter(client EthClient, retryTime time.Duration) InclusionWaiter {
	return &defaultInclusionWaiter{
		client:    client,
		retryTime: retryTime,
		maxRetry:  MaxReceiptRetry,
	}
}

func (w *defaultInclusionWaiter) WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	for retry := 0; retry < w.maxRetry; retry++ {
		receipt, err := w.client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		if ctx.Err() != nil {
			return nil, types.NewInclusionError(txHash.String(), ctx.Err())
		}

		log.Verbose("No receipt yet for tx ", txHash.String(), ", retrying")

		select {
		case <-ctx.Done():
			return nil, types.NewInclusionError(txHash.String(), ctx.Err())
		case <-time.After(w.retryTime):
		}
	}

	return nil, types.NewInclusionError(txHash.String(),
		fmt.Errorf("transaction was not included after %d attempts", w.maxRetry))
}
