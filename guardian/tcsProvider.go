package guardian

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/network"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
)

const signMultipleTransactionsEndpoint = "guardian/sign-multiple-transactions"

var log = logger.GetOrCreate("guardian")

// ArgsTCSProvider holds the arguments needed to create a trusted co-signer service provider
type ArgsTCSProvider struct {
	HTTPClient      network.HTTPClientWrapper
	Marshaller      transaction.Marshaller
	Serializer      transaction.SigningSerializer
	SigVerifier     process.GuardianSigVerifier
	StatusHandler   common.StatusHandler
	GuardianAddress []byte
}

type tcsProvider struct {
	httpClient      network.HTTPClientWrapper
	marshaller      transaction.Marshaller
	serializer      transaction.SigningSerializer
	sigVerifier     process.GuardianSigVerifier
	statusHandler   common.StatusHandler
	guardianAddress []byte
}

// NewTCSProvider creates the guardian provider that asks a trusted co-signer service for the guardian signatures
func NewTCSProvider(args ArgsTCSProvider) (*tcsProvider, error) {
	err := checkTCSArgs(args)
	if err != nil {
		return nil, err
	}

	return &tcsProvider{
		httpClient:      args.HTTPClient,
		marshaller:      args.Marshaller,
		serializer:      args.Serializer,
		sigVerifier:     args.SigVerifier,
		statusHandler:   args.StatusHandler,
		guardianAddress: copyBytes(args.GuardianAddress),
	}, nil
}

func checkTCSArgs(args ArgsTCSProvider) error {
	if check.IfNil(args.HTTPClient) {
		return common.ErrNilHTTPClient
	}
	if check.IfNil(args.Marshaller) {
		return transaction.ErrNilMarshaller
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
	if len(args.GuardianAddress) == 0 {
		return ErrEmptyGuardianAddress
	}

	return nil
}

// ApplyGuardianSignature sends the batch and the code to the co-signer service and attaches the returned
// guardian signatures. On any error, no transaction of the batch is modified
func (provider *tcsProvider) ApplyGuardianSignature(
	ctx context.Context,
	txs []*transaction.GuardedTransaction,
	code string,
) ([]*transaction.GuardedTransaction, error) {
	err := checkBatch(txs, provider.guardianAddress)
	if err != nil {
		return nil, err
	}

	request := &api.SignMultipleTransactionsRequest{
		Code:         code,
		Transactions: make([]*coreTx.FrontendTransaction, 0, len(txs)),
	}
	for _, tx := range txs {
		ftx, errConvert := provider.serializer.ToFrontendTransaction(tx)
		if errConvert != nil {
			return nil, errConvert
		}
		request.Transactions = append(request.Transactions, ftx)
	}

	body, err := provider.marshaller.Marshal(request)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	signatures, err := provider.requestSignatures(ctx, body, len(txs))
	provider.statusHandler.GuardianRequestDone(outcomeFromError(err), time.Since(start))
	if err != nil {
		log.Debug("tcsProvider.ApplyGuardianSignature", "num txs", len(txs), "error", err.Error())
		return nil, err
	}

	err = verifyAndAttach(txs, signatures, provider.sigVerifier)
	if err != nil {
		return nil, err
	}

	log.Debug("tcsProvider.ApplyGuardianSignature: co-signed", "num txs", len(txs))

	return txs, nil
}

func (provider *tcsProvider) requestSignatures(ctx context.Context, body []byte, numTxs int) ([][]byte, error) {
	responseBytes, statusCode, err := provider.httpClient.PostHTTP(ctx, signMultipleTransactionsEndpoint, body)
	if err != nil {
		return nil, err
	}

	response := &api.SignMultipleTransactionsResponse{}
	errDecode := provider.marshaller.Unmarshal(response, responseBytes)
	if statusCode != http.StatusOK || len(response.Error) > 0 {
		return nil, mapServiceError(statusCode, response.Error)
	}
	if errDecode != nil {
		return nil, errors.Wrapf(common.ErrTransportFailure, "%s: decoding response: %s",
			signMultipleTransactionsEndpoint, errDecode.Error())
	}
	if len(response.Data.Transactions) != numTxs {
		return nil, fmt.Errorf("%w: requested %d, got %d",
			ErrGuardianResponseMismatch, numTxs, len(response.Data.Transactions))
	}

	signatures := make([][]byte, 0, numTxs)
	for idx, ftx := range response.Data.Transactions {
		if ftx == nil {
			return nil, fmt.Errorf("%w: nil transaction at index %d", ErrGuardianResponseMismatch, idx)
		}

		signature, errHex := hex.DecodeString(ftx.GuardianSignature)
		if errHex != nil {
			return nil, fmt.Errorf("%w at index %d: %s", process.ErrInvalidGuardianSignature, idx, errHex.Error())
		}
		signatures = append(signatures, signature)
	}

	return signatures, nil
}

// mapServiceError turns a rejection of the co-signer service into the matching sentinel error
func mapServiceError(statusCode int, message string) error {
	lowerMessage := strings.ToLower(message)
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", ErrInvalidOtp, statusCode, message)
	case strings.Contains(lowerMessage, "code"):
		return fmt.Errorf("%w: %s", ErrInvalidOtp, message)
	case strings.Contains(lowerMessage, "guardian"):
		return fmt.Errorf("%w: %s", ErrGuardianMismatch, message)
	default:
		return errors.Wrapf(common.ErrTransportFailure, "%s: status %d: %s",
			signMultipleTransactionsEndpoint, statusCode, message)
	}
}

func outcomeFromError(err error) string {
	switch {
	case err == nil:
		return core.OutcomeSuccess
	case errors.Is(err, ErrInvalidOtp):
		return core.OutcomeInvalidOtp
	default:
		return core.OutcomeFailure
	}
}

// GuardianAddress returns the address of the guardian this provider co-signs for
func (provider *tcsProvider) GuardianAddress() []byte {
	return copyBytes(provider.guardianAddress)
}

// IsInterfaceNil returns true if there is no value under the interface
func (provider *tcsProvider) IsInterfaceNil() bool {
	return provider == nil
}
