package guardedtx

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
)

// GuardedTxSigVerifierArgs holds the argument to instantiate a guarded tx signature verifier
type GuardedTxSigVerifierArgs struct {
	SigVerifier crypto.SingleSigner
	KeyGen      crypto.KeyGenerator
	Serializer  transaction.SigningSerializer
}

type guardedTxSigVerifier struct {
	sigVerifier crypto.SingleSigner
	keyGen      crypto.KeyGenerator
	serializer  transaction.SigningSerializer
}

// NewGuardedTxSigVerifier creates a new instance of a guarded transaction signature verifier
func NewGuardedTxSigVerifier(args GuardedTxSigVerifierArgs) (*guardedTxSigVerifier, error) {
	if check.IfNil(args.SigVerifier) {
		return nil, process.ErrNilSingleSigner
	}
	if check.IfNil(args.KeyGen) {
		return nil, process.ErrNilKeyGen
	}
	if check.IfNil(args.Serializer) {
		return nil, process.ErrNilSigningSerializer
	}

	return &guardedTxSigVerifier{
		sigVerifier: args.SigVerifier,
		keyGen:      args.KeyGen,
		serializer:  args.Serializer,
	}, nil
}

// VerifyGuardianSignature verifies the provided guardian signature over the guardian signing payload
func (gtx *guardedTxSigVerifier) VerifyGuardianSignature(tx *transaction.GuardedTransaction, signature []byte) error {
	if tx == nil {
		return process.ErrNilTransaction
	}

	guardianPubKey, err := gtx.GetGuardianPublicKey(tx)
	if err != nil {
		return err
	}

	msgForSigVerification, err := gtx.serializer.ComputeDataForGuardianSigning(tx)
	if err != nil {
		return err
	}

	err = gtx.sigVerifier.Verify(guardianPubKey, msgForSigVerification, signature)
	if err != nil {
		return fmt.Errorf("%w: %s", process.ErrInvalidGuardianSignature, err.Error())
	}

	return nil
}

// VerifyOwnerSignature verifies the owner signature over the guardian-augmented signing payload
func (gtx *guardedTxSigVerifier) VerifyOwnerSignature(tx *transaction.GuardedTransaction) error {
	if tx == nil {
		return process.ErrNilTransaction
	}

	ownerPubKey, err := gtx.keyGen.PublicKeyFromByteArray(tx.Sender())
	if err != nil {
		return err
	}

	msgForSigVerification, err := gtx.serializer.ComputeDataForSigning(tx)
	if err != nil {
		return err
	}

	err = gtx.sigVerifier.Verify(ownerPubKey, msgForSigVerification, tx.Signature())
	if err != nil {
		return fmt.Errorf("%w: %s", process.ErrInvalidOwnerSignature, err.Error())
	}

	return nil
}

// GetGuardianPublicKey returns the guardian public key of the given transaction
func (gtx *guardedTxSigVerifier) GetGuardianPublicKey(tx *transaction.GuardedTransaction) (crypto.PublicKey, error) {
	guardianPubKeyBytes := tx.GuardianAddress()
	if len(guardianPubKeyBytes) == 0 {
		return nil, process.ErrNilGuardianPublicKey
	}

	return gtx.keyGen.PublicKeyFromByteArray(guardianPubKeyBytes)
}

// IsInterfaceNil returns nil if the receiver is nil
func (gtx *guardedTxSigVerifier) IsInterfaceNil() bool {
	return gtx == nil
}
