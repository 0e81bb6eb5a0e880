package guardedtx

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
	logger "github.com/multiversx/mx-chain-logger-go"
	"golang.org/x/sync/errgroup"
)

var log = logger.GetOrCreate("process/guardedtx")

// ArgsGuardedTxDriver holds the arguments needed to create a guarded transactions driver
type ArgsGuardedTxDriver struct {
	ProviderFactory process.GuardianProviderFactory
	OwnerSigner     process.Signer
	OTPGenerator    process.OTPGenerator
	OTPSecret       string
	TimeSource      common.SyncTimer
	SigVerifier     process.GuardianSigVerifier
	Serializer      transaction.SigningSerializer
	Broadcaster     process.Broadcaster
	StatusHandler   common.StatusHandler
}

type guardedTxDriver struct {
	providerFactory process.GuardianProviderFactory
	ownerSigner     process.Signer
	otpGenerator    process.OTPGenerator
	otpSecret       string
	timeSource      common.SyncTimer
	sigVerifier     process.GuardianSigVerifier
	serializer      transaction.SigningSerializer
	broadcaster     process.Broadcaster
	statusHandler   common.StatusHandler
}

// NewGuardedTxDriver creates the component moving guarded transactions from Built to Submitted
func NewGuardedTxDriver(args ArgsGuardedTxDriver) (*guardedTxDriver, error) {
	err := checkDriverArgs(args)
	if err != nil {
		return nil, err
	}

	return &guardedTxDriver{
		providerFactory: args.ProviderFactory,
		ownerSigner:     args.OwnerSigner,
		otpGenerator:    args.OTPGenerator,
		otpSecret:       args.OTPSecret,
		timeSource:      args.TimeSource,
		sigVerifier:     args.SigVerifier,
		serializer:      args.Serializer,
		broadcaster:     args.Broadcaster,
		statusHandler:   args.StatusHandler,
	}, nil
}

func checkDriverArgs(args ArgsGuardedTxDriver) error {
	if check.IfNil(args.ProviderFactory) {
		return process.ErrNilGuardianProviderFactory
	}
	if check.IfNil(args.OwnerSigner) {
		return process.ErrNilSigner
	}
	if check.IfNil(args.OTPGenerator) {
		return process.ErrNilOTPGenerator
	}
	if len(args.OTPSecret) == 0 {
		return process.ErrEmptyOTPSecret
	}
	if check.IfNil(args.TimeSource) {
		return process.ErrNilSyncTimer
	}
	if check.IfNil(args.SigVerifier) {
		return process.ErrNilGuardianSigVerifier
	}
	if check.IfNil(args.Serializer) {
		return process.ErrNilSigningSerializer
	}
	if check.IfNil(args.Broadcaster) {
		return process.ErrNilBroadcaster
	}
	if check.IfNil(args.StatusHandler) {
		return process.ErrNilStatusHandler
	}

	return nil
}

// CoSign gets the guardian signature of the Built transactions and then the owner signature of the whole batch.
// Transactions already GuardianSigned only get the owner signature
func (driver *guardedTxDriver) CoSign(ctx context.Context, txs []*transaction.GuardedTransaction) ([]*transaction.GuardedTransaction, error) {
	pending, err := driver.checkCoSignBatch(txs)
	if err != nil {
		return nil, err
	}

	if len(pending) > 0 {
		err = driver.applyGuardianSignatures(ctx, pending)
		if err != nil {
			return nil, err
		}
	}

	err = driver.applyOwnerSignatures(ctx, txs)
	if err != nil {
		return nil, err
	}

	return txs, nil
}

// checkCoSignBatch validates the batch and returns the transactions still waiting for the guardian signature
func (driver *guardedTxDriver) checkCoSignBatch(txs []*transaction.GuardedTransaction) ([]*transaction.GuardedTransaction, error) {
	if len(txs) == 0 {
		return nil, process.ErrEmptyTransactionsBatch
	}

	ownerAddress := driver.ownerSigner.Address()
	pending := make([]*transaction.GuardedTransaction, 0, len(txs))
	seen := make(map[*transaction.GuardedTransaction]int, len(txs))
	for idx, tx := range txs {
		if tx == nil {
			return nil, fmt.Errorf("%w at index %d", process.ErrNilTransaction, idx)
		}
		firstIdx, found := seen[tx]
		if found {
			return nil, fmt.Errorf("%w at indexes %d and %d", process.ErrDuplicatedTransaction, firstIdx, idx)
		}
		seen[tx] = idx
		if !bytes.Equal(tx.Sender(), ownerAddress) {
			return nil, fmt.Errorf("%w at index %d", process.ErrSenderMismatch, idx)
		}

		err := tx.CheckGuardedFields()
		if err != nil {
			return nil, fmt.Errorf("%w at index %d", err, idx)
		}

		switch tx.State() {
		case transaction.StateBuilt:
			pending = append(pending, tx)
		case transaction.StateGuardianSigned:
			err = driver.sigVerifier.VerifyGuardianSignature(tx, tx.GuardianSignature())
			if err != nil {
				return nil, fmt.Errorf("%w at index %d", err, idx)
			}
		default:
			return nil, fmt.Errorf("%w at index %d: %s cannot be co-signed", process.ErrInvalidState, idx, tx.State())
		}
	}

	return pending, nil
}

func (driver *guardedTxDriver) applyGuardianSignatures(ctx context.Context, txs []*transaction.GuardedTransaction) error {
	provider, err := driver.providerFactory.CreateProvider(ctx, driver.ownerSigner.Address())
	if err != nil {
		return err
	}

	code, err := driver.otpGenerator.GenerateCode(driver.otpSecret, driver.timeSource.CurrentTime())
	if err != nil {
		return err
	}

	_, err = provider.ApplyGuardianSignature(ctx, txs, code)
	if err != nil {
		return err
	}

	for idx, tx := range txs {
		if tx.State() != transaction.StateGuardianSigned {
			return fmt.Errorf("%w at index %d: guardian phase ended in state %s", process.ErrInvalidState, idx, tx.State())
		}
	}

	log.Debug("guardedTxDriver: guardian signatures applied", "num txs", len(txs))

	return nil
}

// applyOwnerSignatures signs every transaction in parallel and attaches the signatures only if all of them succeeded
func (driver *guardedTxDriver) applyOwnerSignatures(ctx context.Context, txs []*transaction.GuardedTransaction) error {
	signatures := make([][]byte, len(txs))
	group, groupCtx := errgroup.WithContext(ctx)
	for idx := range txs {
		group.Go(func() error {
			err := groupCtx.Err()
			if err != nil {
				return err
			}

			payload, err := driver.serializer.ComputeDataForSigning(txs[idx])
			if err != nil {
				return fmt.Errorf("%w at index %d", err, idx)
			}

			signature, err := driver.ownerSigner.Sign(payload)
			if err != nil {
				return fmt.Errorf("%w at index %d", err, idx)
			}

			signatures[idx] = signature
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return err
	}

	for idx, tx := range txs {
		err = tx.ApplySignature(signatures[idx])
		if err != nil {
			return fmt.Errorf("%w at index %d", err, idx)
		}
		driver.statusHandler.OwnerSignatureDone()
	}

	log.Debug("guardedTxDriver: owner signatures applied", "num txs", len(txs))

	return nil
}

// Submit broadcasts the OwnerSigned transactions in the provided order and returns their hashes. It stops at the
// first failure, the transactions not yet broadcast stay OwnerSigned
func (driver *guardedTxDriver) Submit(ctx context.Context, txs []*transaction.GuardedTransaction) ([]string, error) {
	err := driver.checkSubmitBatch(txs)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, 0, len(txs))
	for idx, tx := range txs {
		txHash, errSend := driver.send(ctx, tx)
		if errSend != nil {
			return hashes, fmt.Errorf("%w at index %d", errSend, idx)
		}

		hashes = append(hashes, txHash)
	}

	return hashes, nil
}

func (driver *guardedTxDriver) checkSubmitBatch(txs []*transaction.GuardedTransaction) error {
	if len(txs) == 0 {
		return process.ErrEmptyTransactionsBatch
	}

	seen := make(map[*transaction.GuardedTransaction]int, len(txs))
	for idx, tx := range txs {
		if tx == nil {
			return fmt.Errorf("%w at index %d", process.ErrNilTransaction, idx)
		}
		firstIdx, found := seen[tx]
		if found {
			return fmt.Errorf("%w at indexes %d and %d", process.ErrDuplicatedTransaction, firstIdx, idx)
		}
		seen[tx] = idx
		if tx.State() != transaction.StateOwnerSigned {
			return fmt.Errorf("%w at index %d: expected %s, got %s",
				process.ErrInvalidState, idx, transaction.StateOwnerSigned, tx.State())
		}

		err := driver.sigVerifier.VerifyOwnerSignature(tx)
		if err != nil {
			return fmt.Errorf("%w at index %d", err, idx)
		}
	}

	return nil
}

func (driver *guardedTxDriver) send(ctx context.Context, tx *transaction.GuardedTransaction) (string, error) {
	ftx, err := driver.serializer.ToFrontendTransaction(tx)
	if err != nil {
		return "", err
	}

	txHash, err := driver.broadcaster.SendTransaction(ctx, ftx)
	if err != nil {
		driver.statusHandler.BroadcastDone(core.OutcomeFailure)
		return "", err
	}
	driver.statusHandler.BroadcastDone(core.OutcomeSuccess)

	driver.crossCheckHash(tx, txHash)

	err = tx.MarkSubmitted(txHash)
	if err != nil {
		return "", err
	}

	log.Info("guarded transaction submitted", "hash", txHash, "nonce", tx.Nonce())

	return txHash, nil
}

func (driver *guardedTxDriver) crossCheckHash(tx *transaction.GuardedTransaction, txHash string) {
	localHash, err := driver.serializer.ComputeHash(tx)
	if err != nil {
		log.Warn("guardedTxDriver: cannot compute the transaction hash", "error", err.Error())
		return
	}

	if hex.EncodeToString(localHash) != txHash {
		log.Warn("guardedTxDriver: the network returned another transaction hash",
			"local", hex.EncodeToString(localHash),
			"network", txHash)
	}
}

// CoSignAndSubmit runs the whole flow on the provided batch
func (driver *guardedTxDriver) CoSignAndSubmit(ctx context.Context, txs []*transaction.GuardedTransaction) ([]string, error) {
	_, err := driver.CoSign(ctx, txs)
	if err != nil {
		return nil, err
	}

	return driver.Submit(ctx, txs)
}

// IsInterfaceNil returns true if there is no value under the interface
func (driver *guardedTxDriver) IsInterfaceNil() bool {
	return driver == nil
}
