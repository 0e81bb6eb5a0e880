package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
)

// GuardianProviderStub -
type GuardianProviderStub struct {
	ApplyGuardianSignatureCalled func(ctx context.Context, txs []*transaction.GuardedTransaction, code string) ([]*transaction.GuardedTransaction, error)
	GuardianAddressCalled        func() []byte
}

// ApplyGuardianSignature -
func (stub *GuardianProviderStub) ApplyGuardianSignature(ctx context.Context, txs []*transaction.GuardedTransaction, code string) ([]*transaction.GuardedTransaction, error) {
	if stub.ApplyGuardianSignatureCalled != nil {
		return stub.ApplyGuardianSignatureCalled(ctx, txs, code)
	}

	return txs, nil
}

// GuardianAddress -
func (stub *GuardianProviderStub) GuardianAddress() []byte {
	if stub.GuardianAddressCalled != nil {
		return stub.GuardianAddressCalled()
	}

	return nil
}

// IsInterfaceNil -
func (stub *GuardianProviderStub) IsInterfaceNil() bool {
	return stub == nil
}

// GuardianProviderFactoryStub -
type GuardianProviderFactoryStub struct {
	CreateProviderCalled func(ctx context.Context, ownerAddress []byte) (process.GuardianProvider, error)
}

// CreateProvider -
func (stub *GuardianProviderFactoryStub) CreateProvider(ctx context.Context, ownerAddress []byte) (process.GuardianProvider, error) {
	if stub.CreateProviderCalled != nil {
		return stub.CreateProviderCalled(ctx, ownerAddress)
	}

	return &GuardianProviderStub{}, nil
}

// IsInterfaceNil -
func (stub *GuardianProviderFactoryStub) IsInterfaceNil() bool {
	return stub == nil
}

// GuardianSigVerifierStub -
type GuardianSigVerifierStub struct {
	VerifyGuardianSignatureCalled func(gtx *transaction.GuardedTransaction, signature []byte) error
	VerifyOwnerSignatureCalled    func(gtx *transaction.GuardedTransaction) error
}

// VerifyGuardianSignature -
func (stub *GuardianSigVerifierStub) VerifyGuardianSignature(gtx *transaction.GuardedTransaction, signature []byte) error {
	if stub.VerifyGuardianSignatureCalled != nil {
		return stub.VerifyGuardianSignatureCalled(gtx, signature)
	}

	return nil
}

// VerifyOwnerSignature -
func (stub *GuardianSigVerifierStub) VerifyOwnerSignature(gtx *transaction.GuardedTransaction) error {
	if stub.VerifyOwnerSignatureCalled != nil {
		return stub.VerifyOwnerSignatureCalled(gtx)
	}

	return nil
}

// IsInterfaceNil -
func (stub *GuardianSigVerifierStub) IsInterfaceNil() bool {
	return stub == nil
}
