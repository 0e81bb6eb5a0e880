package testscommon

import (
	"context"

	coreAPI "github.com/multiversx/mx-chain-core-go/data/api"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
)

// ProxyClientStub -
type ProxyClientStub struct {
	GetNetworkConfigCalled func(ctx context.Context) (*api.NetworkConfig, error)
	GetAccountCalled       func(ctx context.Context, address []byte) (*api.Account, error)
	GetGuardianDataCalled  func(ctx context.Context, address []byte) (*coreAPI.GuardianData, error)
	SendTransactionCalled  func(ctx context.Context, tx *coreTx.FrontendTransaction) (string, error)
}

// GetNetworkConfig -
func (stub *ProxyClientStub) GetNetworkConfig(ctx context.Context) (*api.NetworkConfig, error) {
	if stub.GetNetworkConfigCalled != nil {
		return stub.GetNetworkConfigCalled(ctx)
	}

	return &api.NetworkConfig{}, nil
}

// GetAccount -
func (stub *ProxyClientStub) GetAccount(ctx context.Context, address []byte) (*api.Account, error) {
	if stub.GetAccountCalled != nil {
		return stub.GetAccountCalled(ctx, address)
	}

	return &api.Account{}, nil
}

// GetGuardianData -
func (stub *ProxyClientStub) GetGuardianData(ctx context.Context, address []byte) (*coreAPI.GuardianData, error) {
	if stub.GetGuardianDataCalled != nil {
		return stub.GetGuardianDataCalled(ctx, address)
	}

	return &coreAPI.GuardianData{}, nil
}

// SendTransaction -
func (stub *ProxyClientStub) SendTransaction(ctx context.Context, tx *coreTx.FrontendTransaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return "", nil
}

// IsInterfaceNil -
func (stub *ProxyClientStub) IsInterfaceNil() bool {
	return stub == nil
}
