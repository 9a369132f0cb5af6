package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/zeyes/chains/eth"
	"github.com/sisu-network/zeyes/client"
	"github.com/sisu-network/zeyes/types"
)

// PriorityOpTracker follows an operation that enters the rollup through an
// outer-chain transaction, e.g. a deposit or a full exit. The priority
// operation serial id is unknown until that transaction is mined; it is
// extracted from the NewPriorityRequest log in the inclusion receipt and
// from then on used for all status polls.
//
// A tracker is owned by the caller that created it. It spawns no goroutines
// and holds no resources; it only does work inside the Await calls. Distinct
// trackers are independent and may be awaited concurrently.
type PriorityOpTracker struct {
	txHash   common.Hash
	waiter   eth.InclusionWaiter
	provider client.Provider
	interval time.Duration

	state         State
	serialID      uint64
	serialKnown   bool
	lastErr       error
	commitReceipt *types.Receipt
	verifyReceipt *types.Receipt
}

func NewPriorityOpTracker(txHash common.Hash, waiter eth.InclusionWaiter,
	provider client.Provider) *PriorityOpTracker {
	return &PriorityOpTracker{
		txHash:   txHash,
		waiter:   waiter,
		provider: provider,
		interval: DefaultPollInterval,
		state:    StateSubmitted,
	}
}

func (t *PriorityOpTracker) State() State {
	return t.state
}

// SetPollInterval overrides the default spacing between status polls.
func (t *PriorityOpTracker) SetPollInterval(d time.Duration) {
	t.interval = d
}

// SerialID returns the priority operation serial id. The second value is
// false until the submitting transaction has been mined.
func (t *PriorityOpTracker) SerialID() (uint64, bool) {
	return t.serialID, t.serialKnown
}

// LastError is non-nil exactly when the tracker is in StateFailed.
func (t *PriorityOpTracker) LastError() error {
	return t.lastErr
}

// AwaitMined blocks until the outer chain includes the submitting
// transaction and the serial id is known. A receipt without the expected
// NewPriorityRequest log fails the whole operation: no identifier can ever
// be established, so nothing can be polled.
func (t *PriorityOpTracker) AwaitMined(ctx context.Context) (uint64, error) {
	if t.state == StateFailed {
		return 0, t.lastErr
	}
	if t.state >= StateMined {
		return t.serialID, nil
	}

	receipt, err := t.waiter.WaitForReceipt(ctx, t.txHash)
	if err != nil {
		return 0, t.fail(err)
	}

	serialID, err := eth.ExtractSerialID(receipt)
	if err != nil {
		return 0, t.fail(err)
	}

	t.serialID = serialID
	t.serialKnown = true
	t.state = StateMined

	return serialID, nil
}

// AwaitCommit blocks until the rollup network reports it processed the
// operation. Re-awaiting a reached level returns the cached receipt without
// any network activity.
func (t *PriorityOpTracker) AwaitCommit(ctx context.Context) (*types.Receipt, error) {
	if t.state == StateFailed {
		return nil, t.lastErr
	}
	if t.commitReceipt != nil {
		return t.commitReceipt, nil
	}

	if _, err := t.AwaitMined(ctx); err != nil {
		return nil, err
	}

	disposition, err := awaitResolved(ctx, t.interval, func(ctx context.Context) (*types.Disposition, error) {
		return t.provider.PriorityOpDisposition(ctx, t.serialID, types.LevelCommit)
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

// AwaitVerify blocks until the block carrying the operation is proven on the
// outer chain. It sequences through commit first; a commit-level failure
// short-circuits and no verify-level poll is ever issued.
func (t *PriorityOpTracker) AwaitVerify(ctx context.Context) (*types.Receipt, error) {
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
		return t.provider.PriorityOpDisposition(ctx, t.serialID, types.LevelVerify)
	})
	if err != nil {
		return nil, t.fail(err)
	}

	// A committed priority operation is not expected to fail at verify
	// level, but a terminal failure disposition still wins.
	if !disposition.Success {
		return nil, t.fail(types.NewRejectionError(disposition.FailReason, disposition.Block))
	}

	t.verifyReceipt = &types.Receipt{Level: types.LevelVerify, Block: disposition.Block}
	t.state = StateVerified

	return t.verifyReceipt, nil
}

// fail moves the tracker to StateFailed and pins the error, except for
// context cancellation: the caller gave up waiting, the operation itself has
// not failed, and a later await with a fresh context may still succeed.
func (t *PriorityOpTracker) fail(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	t.state = StateFailed
	t.lastErr = err

	return err
}
