package main

import (
	"context"
	"os"
	"time"

	ethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/joho/godotenv"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/zeyes/chains/eth"
	"github.com/sisu-network/zeyes/client"
	"github.com/sisu-network/zeyes/config"
	"github.com/sisu-network/zeyes/core"
	"github.com/sisu-network/zeyes/database"
	"github.com/sisu-network/zeyes/server"
)

func initializeDb(cfg config.Zeyes) database.Database {
	db := database.NewDb(cfg)
	err := db.Init()
	if err != nil {
		panic(err)
	}

	return db
}

func setupApiServer(cfg config.Zeyes, processor *core.Processor) *server.Server {
	handler := ethRpc.NewServer()
	err := handler.RegisterName("zeyes", server.NewApi(processor))
	if err != nil {
		panic(err)
	}

	return server.NewServer(handler, cfg.ServerPort)
}

func main() {
	err := godotenv.Load()
	if err != nil {
		panic(err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./zeyes.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	db := initializeDb(cfg)

	ethClient, err := eth.Dial(cfg.L1RpcUrl)
	if err != nil {
		panic(err)
	}
	waiter := eth.NewInclusionWaiter(ethClient, time.Duration(cfg.ReceiptWaitTime)*time.Millisecond)

	provider := client.NewJsonRpcProvider(cfg.L2RpcUrl)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	contract, err := provider.ContractAddress(ctx)
	cancel()
	if err != nil {
		log.Error("Cannot fetch rollup contract address, err = ", err)
	} else {
		log.Info("Rollup contract on the outer chain: ", contract)
	}

	processor := core.NewProcessor(cfg, db, waiter, provider)
	processor.Start()

	setupApiServer(cfg, processor).Run()
}
