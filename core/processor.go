package core

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/zeyes/chains/eth"
	"github.com/sisu-network/zeyes/client"
	"github.com/sisu-network/zeyes/config"
	"github.com/sisu-network/zeyes/database"
	"github.com/sisu-network/zeyes/tracker"
	"github.com/sisu-network/zeyes/types"
)

// lifecycleTracker is the part of both tracker kinds the processor drives.
type lifecycleTracker interface {
	AwaitVerify(ctx context.Context) (*types.Receipt, error)
	State() tracker.State
	LastError() error
}

// Processor owns one tracker per followed operation, drives each to its
// terminal state in a goroutine and journals the outcome. Trackers stay
// resource-free; all persistence happens here.
type Processor struct {
	cfg      config.Zeyes
	db       database.Database
	waiter   eth.InclusionWaiter
	provider client.Provider

	lock     *sync.RWMutex
	trackers map[string]lifecycleTracker

	ready atomic.Value
}

func NewProcessor(cfg config.Zeyes, db database.Database, waiter eth.InclusionWaiter,
	provider client.Provider) *Processor {
	return &Processor{
		cfg:      cfg,
		db:       db,
		waiter:   waiter,
		provider: provider,
		lock:     &sync.RWMutex{},
		trackers: make(map[string]lifecycleTracker),
	}
}

func (p *Processor) Start() {
	log.Info("Starting operation processor...")

	ops, err := p.db.LoadUnfinishedOperations()
	if err != nil {
		log.Error("Cannot load unfinished operations, err = ", err)
	} else {
		for _, op := range ops {
			log.Info("Resuming operation ", op.Kind, "/", op.Identifier)
			if err := p.resume(op); err != nil {
				log.Error("Cannot resume operation, err = ", err)
			}
		}
	}

	p.ready.Store(true)
}

func (p *Processor) IsReady() bool {
	ready, ok := p.ready.Load().(bool)
	return ok && ready
}

// TrackPriorityOp starts following an operation that entered the rollup
// through the outer-chain transaction with the given hash.
func (p *Processor) TrackPriorityOp(l1TxHash string) error {
	op := &types.TrackedOperation{
		Kind:       types.OpKindPriority,
		Identifier: l1TxHash,
		SerialID:   -1,
		State:      tracker.StateSubmitted.String(),
	}

	if err := p.db.SaveOperation(op); err != nil {
		return err
	}

	return p.resume(op)
}

// TrackTx starts following a transaction submitted directly to the rollup.
func (p *Processor) TrackTx(txHash string) error {
	op := &types.TrackedOperation{
		Kind:       types.OpKindTx,
		Identifier: txHash,
		SerialID:   -1,
		State:      tracker.StateSent.String(),
	}

	if err := p.db.SaveOperation(op); err != nil {
		return err
	}

	return p.resume(op)
}

// OperationStatus reports the current state of a followed operation, falling
// back to the journal for operations finished in an earlier run.
func (p *Processor) OperationStatus(kind, identifier string) (*types.TrackedOperation, error) {
	p.lock.RLock()
	t, ok := p.trackers[trackerKey(kind, identifier)]
	p.lock.RUnlock()

	if ok {
		op := &types.TrackedOperation{
			Kind:       kind,
			Identifier: identifier,
			SerialID:   serialIDOf(t),
			State:      t.State().String(),
		}
		if err := t.LastError(); err != nil {
			op.FailReason = err.Error()
		}

		return op, nil
	}

	op, err := p.db.LoadOperation(kind, identifier)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, fmt.Errorf("unknown operation %s/%s", kind, identifier)
	}

	return op, nil
}

func (p *Processor) resume(op *types.TrackedOperation) error {
	var t lifecycleTracker

	switch op.Kind {
	case types.OpKindPriority:
		pt := tracker.NewPriorityOpTracker(common.HexToHash(op.Identifier), p.waiter, p.provider)
		pt.SetPollInterval(p.pollInterval())
		t = pt
	case types.OpKindTx:
		tt := tracker.NewTxTracker(op.Identifier, p.provider)
		tt.SetPollInterval(p.pollInterval())
		t = tt
	default:
		return fmt.Errorf("unknown operation kind %s", op.Kind)
	}

	p.lock.Lock()
	p.trackers[trackerKey(op.Kind, op.Identifier)] = t
	p.lock.Unlock()

	go p.follow(op, t)

	return nil
}

// follow drives one tracker to a terminal state and journals the outcome.
func (p *Processor) follow(op *types.TrackedOperation, t lifecycleTracker) {
	_, err := t.AwaitVerify(context.Background())

	op.SerialID = serialIDOf(t)
	op.State = t.State().String()
	if err != nil {
		log.Error("Operation ", op.Kind, "/", op.Identifier, " failed, err = ", err)
		op.FailReason = err.Error()
	} else {
		log.Info("Operation ", op.Kind, "/", op.Identifier, " is verified")
	}

	if dbErr := p.db.UpdateOperation(op); dbErr != nil {
		log.Error("Cannot journal operation outcome, err = ", dbErr)
	}
}

func (p *Processor) pollInterval() time.Duration {
	return time.Duration(p.cfg.PollInterval) * time.Millisecond
}

func trackerKey(kind, identifier string) string {
	return kind + "/" + identifier
}

func serialIDOf(t lifecycleTracker) int64 {
	if pt, ok := t.(*tracker.PriorityOpTracker); ok {
		if serialID, known := pt.SerialID(); known {
			return int64(serialID)
		}
	}

	return -1
}
