package guardian

import (
	"bytes"
	"fmt"

	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
)

// checkBatch validates a batch before anything leaves the process
func checkBatch(txs []*transaction.GuardedTransaction, guardianAddress []byte) error {
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
		if tx.State() != transaction.StateBuilt {
			return fmt.Errorf("%w at index %d: expected %s, got %s",
				process.ErrInvalidState, idx, transaction.StateBuilt, tx.State())
		}

		err := tx.CheckGuardedFields()
		if err != nil {
			return fmt.Errorf("%w at index %d", err, idx)
		}
		if !bytes.Equal(tx.GuardianAddress(), guardianAddress) {
			return fmt.Errorf("%w at index %d", ErrGuardianMismatch, idx)
		}
	}

	return nil
}

// verifyAndAttach attaches the signatures only after every one of them verified
func verifyAndAttach(
	txs []*transaction.GuardedTransaction,
	signatures [][]byte,
	verifier process.GuardianSigVerifier,
) error {
	if len(txs) != len(signatures) {
		return fmt.Errorf("%w: requested %d, got %d", ErrGuardianResponseMismatch, len(txs), len(signatures))
	}

	for idx, tx := range txs {
		err := verifier.VerifyGuardianSignature(tx, signatures[idx])
		if err != nil {
			return fmt.Errorf("%w at index %d", err, idx)
		}
	}

	for idx, tx := range txs {
		err := tx.ApplyGuardianSignature(signatures[idx])
		if err != nil {
			return fmt.Errorf("%w at index %d", err, idx)
		}
	}

	return nil
}

func copyBytes(buff []byte) []byte {
	result := make([]byte, len(buff))
	copy(result, buff)

	return result
}
