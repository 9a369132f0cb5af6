package config

import (
	"github.com/BurntSushi/toml"
)

const (
	DefaultPollInterval    = 1000
	DefaultReceiptWaitTime = 5000
)

type Zeyes struct {
	DbHost     string `toml:"db_host"`
	DbPort     int    `toml:"db_port"`
	DbUsername string `toml:"db_username"`
	DbPassword string `toml:"db_password"`
	DbSchema   string `toml:"db_schema"`
	InMemory   bool   `toml:"in_memory"`

	ServerPort int `toml:"server_port"`

	// L1RpcUrl points at an outer-chain node, L2RpcUrl at the rollup
	// network's JSON RPC endpoint.
	L1RpcUrl string `toml:"l1_rpc_url"`
	L2RpcUrl string `toml:"l2_rpc_url"`

	// PollInterval is the time in milliseconds between two status polls
	// against the rollup network. ReceiptWaitTime is the time between two
	// receipt queries while waiting for outer-chain inclusion.
	PollInterval    int `toml:"poll_interval"`
	ReceiptWaitTime int `toml:"receipt_wait_time"`
}

func Load(path string) (Zeyes, error) {
	cfg := Zeyes{}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.ReceiptWaitTime == 0 {
		cfg.ReceiptWaitTime = DefaultReceiptWaitTime
	}

	return cfg, nil
}
