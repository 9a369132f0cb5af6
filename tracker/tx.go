package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/sisu-network/zeyes/client"
	"github.com/sisu-network/zeyes/types"
)

// TxTracker follows a transaction submitted directly to the rollup network.
// Unlike a priority operation there is no log-parsing phase: the identifier
// is the transaction hash and is known from the moment of submission.
type TxTracker struct {
	txHash   string
	provider client.Provider
	interval time.Duration

	state         State
	lastErr       error
	commitReceipt *types.Receipt
	verifyReceipt *types.Receipt
}

func NewTxTracker(txHash string, provider client.Provider) *TxTracker {
	return &TxTracker{
		txHash:   txHash,
		provider: provider,
		interval: DefaultPollInterval,
		state:    StateSent,
	}
}

func (t *TxTracker) State() State {
	return t.state
}

// SetPollInterval overrides the default spacing between status polls.
func (t *TxTracker) SetPollInterval(d time.Duration) {
	t.interval = d
}

func (t *TxTracker) TxHash() string {
	return t.txHash
}

// LastError is non-nil exactly when the tracker is in StateFailed.
func (t *TxTracker) LastError() error {
	return t.lastErr
}

// AwaitCommit blocks until the rollup network reports the transaction
// included and executed. A disposition marked unsuccessful is a semantic
// rejection, not a transient fault: the tracker fails carrying the network's
// reason verbatim and never retries.
func (t *TxTracker) AwaitCommit(ctx context.Context) (*types.Receipt, error) {
	if t.state == StateFailed {
		return nil, t.lastErr
	}
	if t.commitReceipt != nil {
		return t.commitReceipt, nil
	}

	disposition, err := awaitResolved(ctx, t.interval, func(ctx context.Context) (*types.Disposition, error) {
		return t.provider.TxDisposition(ctx, t.txHash, types.LevelCommit)
	})
	if err != nil {
		return nil, t.fail(err)
	}

	if !disposition.Success {
		return nil, t.fail(types.NewRejectionError(disposition.FailReason, disposition.Block))
	}

	t.commitReceipt = &types.Receipt{Level: types.LevelCommit, Block: disposition.Block}
	t.state = StateCommitted

	return t.commitReceipt, nil
}

// AwaitVerify blocks until the block carrying the transaction is proven on
// the outer chain. The success flag is carried over from commit and not
// re-evaluated, but an unexpected terminal failure disposition or an
// observer-level error still fails the tracker.
func (t *TxTracker) AwaitVerify(ctx context.Context) (*types.Receipt, error) {
	if t.state == StateFailed {
		return nil, t.lastErr
	}
	if t.verifyReceipt != nil {
		return t.verifyReceipt, nil
	}

	if _, err := t.AwaitCommit(ctx); err != nil {
		return nil, err
	}

	disposition, err := awaitResolved(ctx, t.interval, func(ctx context.Context) (*types.Disposition, error) {
		return t.provider.TxDisposition(ctx, t.txHash, types.LevelVerify)
	})
	if err != nil {
		return nil, t.fail(err)
	}

	if !disposition.Success {
		return nil, t.fail(types.NewRejectionError(disposition.FailReason, disposition.Block))
	}

	t.verifyReceipt = &types.Receipt{Level: types.LevelVerify, Block: disposition.Block}
	t.state = StateVerified

	return t.verifyReceipt, nil
}

func (t *TxTracker) fail(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	t.state = StateFailed
	t.lastErr = err

	return err
}
