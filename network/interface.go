package network

import (
	"context"

	coreAPI "github.com/multiversx/mx-chain-core-go/data/api"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
)

// HTTPClientWrapper sends requests to a REST API
type HTTPClientWrapper interface {
	GetHTTP(ctx context.Context, endpoint string) ([]byte, int, error)
	PostHTTP(ctx context.Context, endpoint string, data []byte) ([]byte, int, error)
	IsInterfaceNil() bool
}

// ProxyClient is the client of the network gateway
type ProxyClient interface {
	GetNetworkConfig(ctx context.Context) (*api.NetworkConfig, error)
	GetAccount(ctx context.Context, address []byte) (*api.Account, error)
	GetGuardianData(ctx context.Context, address []byte) (*coreAPI.GuardianData, error)
	SendTransaction(ctx context.Context, tx *coreTx.FrontendTransaction) (string, error)
	IsInterfaceNil() bool
}
