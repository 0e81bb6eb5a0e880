package process

import (
	"context"
	"time"

	coreAPI "github.com/multiversx/mx-chain-core-go/data/api"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
)

// GuardianProvider obtains the guardian co-signature of a batch of guarded transactions
type GuardianProvider interface {
	ApplyGuardianSignature(ctx context.Context, txs []*transaction.GuardedTransaction, code string) ([]*transaction.GuardedTransaction, error)
	GuardianAddress() []byte
	IsInterfaceNil() bool
}

// GuardianProviderFactory selects the guardian provider able to co-sign for an account
type GuardianProviderFactory interface {
	CreateProvider(ctx context.Context, ownerAddress []byte) (GuardianProvider, error)
	IsInterfaceNil() bool
}

// GuardianSigVerifier checks guardian and owner signatures of guarded transactions
type GuardianSigVerifier interface {
	VerifyGuardianSignature(gtx *transaction.GuardedTransaction, signature []byte) error
	VerifyOwnerSignature(gtx *transaction.GuardedTransaction) error
	IsInterfaceNil() bool
}

// Signer signs messages with a held ed25519 key
type Signer interface {
	Sign(message []byte) ([]byte, error)
	Address() []byte
	IsInterfaceNil() bool
}

// OTPGenerator produces time-based one-time passwords
type OTPGenerator interface {
	GenerateCode(secret string, timestamp time.Time) (string, error)
	IsInterfaceNil() bool
}

// OTPValidator checks time-based one-time passwords
type OTPValidator interface {
	ValidateCode(secret string, code string, timestamp time.Time) error
	IsInterfaceNil() bool
}

// Broadcaster sends signed transactions to the network
type Broadcaster interface {
	SendTransaction(ctx context.Context, tx *coreTx.FrontendTransaction) (string, error)
	IsInterfaceNil() bool
}

// NetworkProvider reads the network parameters and the account state
type NetworkProvider interface {
	GetNetworkConfig(ctx context.Context) (*api.NetworkConfig, error)
	GetAccount(ctx context.Context, address []byte) (*api.Account, error)
	IsInterfaceNil() bool
}

// GuardianDataProvider reads the on-chain guardian settings of an account
type GuardianDataProvider interface {
	GetGuardianData(ctx context.Context, address []byte) (*coreAPI.GuardianData, error)
	IsInterfaceNil() bool
}
