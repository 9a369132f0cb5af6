package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sisu-network/zeyes/config"
	"github.com/sisu-network/zeyes/types"
)

func getTestDb(t *testing.T) Database {
	db := NewDb(config.Zeyes{InMemory: true})
	require.Nil(t, db.Init())

	return db
}

func TestDb_SaveAndLoadOperation(t *testing.T) {
	db := getTestDb(t)

	op := &types.TrackedOperation{
		Kind:       types.OpKindPriority,
		Identifier: "0xabc",
		SerialID:   -1,
		State:      "submitted",
	}
	require.Nil(t, db.SaveOperation(op))

	loaded, err := db.LoadOperation(types.OpKindPriority, "0xabc")
	require.Nil(t, err)
	require.Equal(t, op, loaded)

	missing, err := db.LoadOperation(types.OpKindTx, "0xabc")
	require.Nil(t, err)
	require.Nil(t, missing)
}

func TestDb_UpdateOperation(t *testing.T) {
	db := getTestDb(t)

	op := &types.TrackedOperation{
		Kind:       types.OpKindTx,
		Identifier: "sync-tx:abcd",
		SerialID:   -1,
		State:      "sent",
	}
	require.Nil(t, db.SaveOperation(op))

	op.State = "failed"
	op.FailReason = "insufficient balance"
	require.Nil(t, db.UpdateOperation(op))

	loaded, err := db.LoadOperation(types.OpKindTx, "sync-tx:abcd")
	require.Nil(t, err)
	require.Equal(t, "failed", loaded.State)
	require.Equal(t, "insufficient balance", loaded.FailReason)
}

func TestDb_LoadUnfinishedOperations(t *testing.T) {
	db := getTestDb(t)

	require.Nil(t, db.SaveOperation(&types.TrackedOperation{
		Kind: types.OpKindTx, Identifier: "a", SerialID: -1, State: "sent",
	}))
	require.Nil(t, db.SaveOperation(&types.TrackedOperation{
		Kind: types.OpKindTx, Identifier: "b", SerialID: -1, State: "verified",
	}))
	require.Nil(t, db.SaveOperation(&types.TrackedOperation{
		Kind: types.OpKindPriority, Identifier: "c", SerialID: 3, State: "committed",
	}))

	ops, err := db.LoadUnfinishedOperations()
	require.Nil(t, err)
	require.Equal(t, 2, len(ops))
}
