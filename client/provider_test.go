package client

import (
	"sync"
	"testing"

	"github.com/golang/groupcache/lru"
	"github.com/stretchr/testify/require"

	"github.com/sisu-network/zeyes/types"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestProvider_ToDisposition(t *testing.T) {
	// Not executed yet: pending at every level.
	d := toDisposition(&opStatusResponse{}, types.LevelCommit)
	require.False(t, d.Resolved)

	// Executed and committed but not verified.
	resp := &opStatusResponse{
		Executed: true,
		Success:  boolPtr(true),
		Block:    &types.BlockInfo{BlockNumber: 8, Committed: true},
	}
	d = toDisposition(resp, types.LevelCommit)
	require.True(t, d.Resolved)
	require.True(t, d.Success)
	require.Equal(t, int64(8), d.Block.BlockNumber)

	d = toDisposition(resp, types.LevelVerify)
	require.False(t, d.Resolved)

	// An explicit failure resolves immediately, whatever the level.
	resp = &opStatusResponse{
		Executed:   true,
		Success:    boolPtr(false),
		FailReason: "insufficient balance",
		Block:      &types.BlockInfo{BlockNumber: 8, Committed: true},
	}
	for _, level := range []types.ConfirmationLevel{types.LevelCommit, types.LevelVerify} {
		d = toDisposition(resp, level)
		require.True(t, d.Resolved)
		require.False(t, d.Success)
		require.Equal(t, "insufficient balance", d.FailReason)
	}

	// A failure without block data is still terminal.
	resp = &opStatusResponse{
		Executed:   true,
		Success:    boolPtr(false),
		FailReason: "invalid priority operation",
	}
	d = toDisposition(resp, types.LevelCommit)
	require.True(t, d.Resolved)
	require.False(t, d.Success)
	require.Nil(t, d.Block)

	// Executed without block data and no failure flag stays pending.
	d = toDisposition(&opStatusResponse{Executed: true}, types.LevelCommit)
	require.False(t, d.Resolved)
}

func TestProvider_CacheKeepsTerminalOnly(t *testing.T) {
	p := &jsonRpcProvider{
		lock:  &sync.Mutex{},
		cache: lru.New(DispositionCacheSize),
	}

	p.remember("tx/abc/commit", &types.Disposition{})
	_, ok := p.cached("tx/abc/commit")
	require.False(t, ok)

	p.remember("tx/abc/commit", &types.Disposition{Resolved: true, Success: true})
	d, ok := p.cached("tx/abc/commit")
	require.True(t, ok)
	require.True(t, d.Success)
}
