package eth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sisu-network/lib/log"
)

// A wrapper around eth.client so that we can mock in tracker tests.
type EthClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

type defaultEthClient struct {
	client *ethclient.Client
}

func Dial(rawurl string) (EthClient, error) {
	client, err := ethclient.Dial(rawurl)
	if err != nil {
		return nil, err
	}

	log.Info("Connected to outer chain node at rpc: ", rawurl)

	return &defaultEthClient{
		client: client,
	}, nil
}

func (c *defaultEthClient) BlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

func (c *defaultEthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	return c.client.TransactionReceipt(ctx, txHash)
}
