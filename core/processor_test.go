package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sisu-network/zeyes/client"
	"github.com/sisu-network/zeyes/config"
	"github.com/sisu-network/zeyes/database"
	"github.com/sisu-network/zeyes/types"
)

func TestProcessor_TrackTxToVerified(t *testing.T) {
	updated := make(chan *types.TrackedOperation, 1)
	db := &database.MockDb{
		UpdateOperationFunc: func(op *types.TrackedOperation) error {
			updated <- op
			return nil
		},
	}

	provider := &client.MockProvider{
		TxDispositionFunc: func(ctx context.Context, txHash string,
			level types.ConfirmationLevel) (*types.Disposition, error) {
			return &types.Disposition{Resolved: true, Success: true,
				Block: &types.BlockInfo{Committed: true, Verified: true}}, nil
		},
	}

	p := NewProcessor(config.Zeyes{PollInterval: 1}, db, nil, provider)
	require.Nil(t, p.TrackTx("sync-tx:abcd"))

	select {
	case op := <-updated:
		require.Equal(t, "verified", op.State)
		require.Equal(t, "", op.FailReason)
	case <-time.After(5 * time.Second):
		t.Fatal("operation never reached a terminal state")
	}

	status, err := p.OperationStatus(types.OpKindTx, "sync-tx:abcd")
	require.Nil(t, err)
	require.Equal(t, "verified", status.State)
}

func TestProcessor_TrackTxRejection(t *testing.T) {
	updated := make(chan *types.TrackedOperation, 1)
	db := &database.MockDb{
		UpdateOperationFunc: func(op *types.TrackedOperation) error {
			updated <- op
			return nil
		},
	}

	provider := &client.MockProvider{
		TxDispositionFunc: func(ctx context.Context, txHash string,
			level types.ConfirmationLevel) (*types.Disposition, error) {
			return &types.Disposition{
				Resolved:   true,
				Success:    false,
				FailReason: "insufficient balance",
			}, nil
		},
	}

	p := NewProcessor(config.Zeyes{PollInterval: 1}, db, nil, provider)
	require.Nil(t, p.TrackTx("sync-tx:abcd"))

	select {
	case op := <-updated:
		require.Equal(t, "failed", op.State)
		require.Contains(t, op.FailReason, "insufficient balance")
	case <-time.After(5 * time.Second):
		t.Fatal("operation never reached a terminal state")
	}
}

func TestProcessor_UnknownOperation(t *testing.T) {
	p := NewProcessor(config.Zeyes{PollInterval: 1}, &database.MockDb{}, nil, &client.MockProvider{})

	_, err := p.OperationStatus(types.OpKindTx, "nope")
	require.NotNil(t, err)
}
