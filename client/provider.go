package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/sisu-network/lib/log"
	"github.com/ybbus/jsonrpc/v3"

	"github.com/sisu-network/zeyes/types"
)

const (
	// Number of terminal dispositions memoized so that repeated queries for
	// a finished operation skip the wire.
	DispositionCacheSize = 1_000
)

// Provider asks the rollup network for the current disposition of one
// operation. Every call is a single round trip and a pure query: it is safe
// to repeat and has no side effect on the network. Retrying across
// unresolved polls is the trackers' job, not the provider's.
type Provider interface {
	// PriorityOpDisposition reports the disposition of a priority operation
	// identified by its serial id.
	PriorityOpDisposition(ctx context.Context, serialID uint64,
		level types.ConfirmationLevel) (*types.Disposition, error)

	// TxDisposition reports the disposition of a rollup-native transaction
	// identified by its hash.
	TxDisposition(ctx context.Context, txHash string,
		level types.ConfirmationLevel) (*types.Disposition, error)

	// ContractAddress returns the rollup contract address on the outer
	// chain.
	ContractAddress(ctx context.Context) (string, error)
}

// Wire format of the rollup network's status responses.
type opStatusResponse struct {
	Executed   bool             `json:"executed"`
	Success    *bool            `json:"success"`
	FailReason string           `json:"failReason"`
	Block      *types.BlockInfo `json:"block"`
}

type contractAddressResponse struct {
	MainContract string `json:"mainContract"`
}

type jsonRpcProvider struct {
	client jsonrpc.RPCClient

	lock  *sync.Mutex
	cache *lru.Cache
}

func NewJsonRpcProvider(url string) Provider {
	log.Info("Creating rollup status provider at rpc: ", url)

	return &jsonRpcProvider{
		client: jsonrpc.NewClient(url),
		lock:   &sync.Mutex{},
		cache:  lru.New(DispositionCacheSize),
	}
}

func (p *jsonRpcProvider) PriorityOpDisposition(ctx context.Context, serialID uint64,
	level types.ConfirmationLevel) (*types.Disposition, error) {
	key := fmt.Sprintf("ethop/%d/%s", serialID, level)
	if d, ok := p.cached(key); ok {
		return d, nil
	}

	resp := new(opStatusResponse)
	err := p.client.CallFor(ctx, resp, "ethop_info", serialID)
	if err != nil {
		return nil, err
	}

	d := toDisposition(resp, level)
	p.remember(key, d)

	return d, nil
}

func (p *jsonRpcProvider) TxDisposition(ctx context.Context, txHash string,
	level types.ConfirmationLevel) (*types.Disposition, error) {
	key := fmt.Sprintf("tx/%s/%s", txHash, level)
	if d, ok := p.cached(key); ok {
		return d, nil
	}

	resp := new(opStatusResponse)
	err := p.client.CallFor(ctx, resp, "tx_info", txHash)
	if err != nil {
		return nil, err
	}

	d := toDisposition(resp, level)
	p.remember(key, d)

	return d, nil
}

func (p *jsonRpcProvider) ContractAddress(ctx context.Context) (string, error) {
	resp := new(contractAddressResponse)
	err := p.client.CallFor(ctx, resp, "contract_address")
	if err != nil {
		return "", err
	}

	return resp.MainContract, nil
}

func (p *jsonRpcProvider) cached(key string) (*types.Disposition, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if value, ok := p.cache.Get(key); ok {
		return value.(*types.Disposition), true
	}

	return nil, false
}

func (p *jsonRpcProvider) remember(key string, d *types.Disposition) {
	// Only terminal dispositions are immutable; pending ones must hit the
	// wire again.
	if !d.Resolved {
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.cache.Add(key, d)
}

// toDisposition maps one wire response onto the disposition at the requested
// confirmation level. The network reports both the committed and verified
// flags in a single response; the level picks which one gates resolution.
func toDisposition(resp *opStatusResponse, level types.ConfirmationLevel) *types.Disposition {
	if !resp.Executed {
		return &types.Disposition{}
	}

	// An executed failure is terminal even if the server sent no block data;
	// waiting for a block that will never come would poll forever.
	if resp.Success != nil && !*resp.Success {
		return &types.Disposition{
			Resolved:   true,
			Success:    false,
			FailReason: resp.FailReason,
			Block:      resp.Block,
		}
	}

	if resp.Block == nil {
		return &types.Disposition{}
	}

	resolved := resp.Block.Committed
	if level == types.LevelVerify {
		resolved = resp.Block.Verified
	}

	return &types.Disposition{
		Resolved: resolved,
		Success:  true,
		Block:    resp.Block,
	}
}
