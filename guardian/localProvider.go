package guardian

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/otp"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
)

// ArgsLocalProvider holds the arguments needed to create a local guardian provider
type ArgsLocalProvider struct {
	GuardianSigner process.Signer
	OTPValidator   process.OTPValidator
	OTPSecret      string
	TimeSource     common.SyncTimer
	Serializer     transaction.SigningSerializer
	SigVerifier    process.GuardianSigVerifier
	StatusHandler  common.StatusHandler
}

type localProvider struct {
	guardianSigner process.Signer
	otpValidator   process.OTPValidator
	otpSecret      string
	timeSource     common.SyncTimer
	serializer     transaction.SigningSerializer
	sigVerifier    process.GuardianSigVerifier
	statusHandler  common.StatusHandler
}

// NewLocalProvider creates the guardian provider that holds the guardian key itself. It checks the one-time code
// against the shared secret before signing
func NewLocalProvider(args ArgsLocalProvider) (*localProvider, error) {
	err := checkLocalArgs(args)
	if err != nil {
		return nil, err
	}

	return &localProvider{
		guardianSigner: args.GuardianSigner,
		otpValidator:   args.OTPValidator,
		otpSecret:      args.OTPSecret,
		timeSource:     args.TimeSource,
		serializer:     args.Serializer,
		sigVerifier:    args.SigVerifier,
		statusHandler:  args.StatusHandler,
	}, nil
}

func checkLocalArgs(args ArgsLocalProvider) error {
	if check.IfNil(args.GuardianSigner) {
		return process.ErrNilSigner
	}
	if check.IfNil(args.OTPValidator) {
		return process.ErrNilOTPValidator
	}
	if len(args.OTPSecret) == 0 {
		return process.ErrEmptyOTPSecret
	}
	if check.IfNil(args.TimeSource) {
		return process.ErrNilSyncTimer
	}
	if check.IfNil(args.Serializer) {
		return process.ErrNilSigningSerializer
	}
	if check.IfNil(args.SigVerifier) {
		return process.ErrNilGuardianSigVerifier
	}
	if check.IfNil(args.StatusHandler) {
		return process.ErrNilStatusHandler
	}

	return nil
}

// ApplyGuardianSignature validates the code and signs the batch with the local guardian key. On any error, no
// transaction of the batch is modified
func (provider *localProvider) ApplyGuardianSignature(
	ctx context.Context,
	txs []*transaction.GuardedTransaction,
	code string,
) ([]*transaction.GuardedTransaction, error) {
	err := checkBatch(txs, provider.guardianSigner.Address())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	signatures, err := provider.sign(ctx, txs, code)
	provider.statusHandler.GuardianRequestDone(outcomeFromError(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	err = verifyAndAttach(txs, signatures, provider.sigVerifier)
	if err != nil {
		return nil, err
	}

	log.Debug("localProvider.ApplyGuardianSignature: co-signed", "num txs", len(txs))

	return txs, nil
}

func (provider *localProvider) sign(ctx context.Context, txs []*transaction.GuardedTransaction, code string) ([][]byte, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	err = provider.otpValidator.ValidateCode(provider.otpSecret, code, provider.timeSource.CurrentTime())
	if isInputError(err) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOtp, err.Error())
	}

	signatures := make([][]byte, 0, len(txs))
	for _, tx := range txs {
		payload, errPayload := provider.serializer.ComputeDataForGuardianSigning(tx)
		if errPayload != nil {
			return nil, errPayload
		}

		signature, errSign := provider.guardianSigner.Sign(payload)
		if errSign != nil {
			return nil, errSign
		}
		signatures = append(signatures, signature)
	}

	return signatures, nil
}

// GuardianAddress returns the address of the locally held guardian key
func (provider *localProvider) GuardianAddress() []byte {
	return provider.guardianSigner.Address()
}

// IsInterfaceNil returns true if there is no value under the interface
func (provider *localProvider) IsInterfaceNil() bool {
	return provider == nil
}

// isInputError returns true for the validation errors caused by the local OTP settings, not by the provided code
func isInputError(err error) bool {
	return errors.Is(err, otp.ErrInvalidSecret) || errors.Is(err, otp.ErrInvalidTimestamp)
}

func isSameAddress(first []byte, second []byte) bool {
	return len(first) > 0 && bytes.Equal(first, second)
}
