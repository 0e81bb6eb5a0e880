package core

import (
	"github.com/multiversx/mx-chain-guarded-tx-go/config"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("core")

// LoadConfig returns a Config by reading the config file provided
func LoadConfig(filepath string) (*config.Config, error) {
	cfg := &config.Config{}
	err := LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
