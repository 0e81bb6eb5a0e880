package guardian_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/guardian"
	"github.com/multiversx/mx-chain-guarded-tx-go/network"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
	"github.com/multiversx/mx-chain-guarded-tx-go/process/guardedtx"
	"github.com/multiversx/mx-chain-guarded-tx-go/testscommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCode = "123456"

var expectedErr = errors.New("expected error")

func createSigVerifier(t *testing.T) process.GuardianSigVerifier {
	verifier, err := guardedtx.NewGuardedTxSigVerifier(guardedtx.GuardedTxSigVerifierArgs{
		SigVerifier: &singlesig.Ed25519Signer{},
		KeyGen:      signing.NewKeyGenerator(ed25519.NewEd25519()),
		Serializer:  testscommon.CreateSigningSerializer(),
	})
	require.Nil(t, err)

	return verifier
}

func createGuardedTx(t *testing.T, nonce uint64, guardianPubKeyHex string) *transaction.GuardedTransaction {
	gtx, err := transaction.NewGuardedTransaction(transaction.ArgsGuardedTransaction{
		Nonce:           nonce,
		Value:           big.NewInt(1000),
		Receiver:        testscommon.DecodeHex(testscommon.AlicePubKeyHex),
		Sender:          testscommon.DecodeHex(testscommon.AlicePubKeyHex),
		GasPrice:        1000000000,
		GasLimit:        50000,
		ChainID:         "D",
		GuardianAddress: testscommon.DecodeHex(guardianPubKeyHex),
	})
	require.Nil(t, err)

	return gtx
}

func createBatch(t *testing.T, guardianPubKeyHex string, nonces ...uint64) []*transaction.GuardedTransaction {
	txs := make([]*transaction.GuardedTransaction, 0, len(nonces))
	for _, nonce := range nonces {
		txs = append(txs, createGuardedTx(t, nonce, guardianPubKeyHex))
	}

	return txs
}

func startGuardianServer(t *testing.T, setup func(server *testscommon.GuardianServerMock)) (*testscommon.GuardianServerMock, string) {
	server := &testscommon.GuardianServerMock{
		Code:       validCode,
		Serializer: testscommon.CreateSigningSerializer(),
		SignCalled: testscommon.CreateEd25519Signer(testscommon.BobSecretKeyHex).Sign,
	}
	if setup != nil {
		setup(server)
	}
	url := server.Start()
	t.Cleanup(server.Close)

	return server, url
}

func createMockArgsTCSProvider(t *testing.T, url string) guardian.ArgsTCSProvider {
	httpClient, err := network.NewHTTPClientWrapper(network.ArgsHTTPClientWrapper{
		Client: http.DefaultClient,
		URL:    url,
	})
	require.Nil(t, err)

	return guardian.ArgsTCSProvider{
		HTTPClient:      httpClient,
		Marshaller:      &marshal.JsonMarshalizer{},
		Serializer:      testscommon.CreateSigningSerializer(),
		SigVerifier:     createSigVerifier(t),
		StatusHandler:   &testscommon.StatusHandlerStub{},
		GuardianAddress: testscommon.DecodeHex(testscommon.BobPubKeyHex),
	}
}

func requireUntouched(t *testing.T, txs []*transaction.GuardedTransaction) {
	for _, tx := range txs {
		assert.Equal(t, transaction.StateBuilt, tx.State())
		assert.Empty(t, tx.GuardianSignature())
	}
}

func TestNewTCSProvider(t *testing.T) {
	t.Parallel()

	t.Run("nil http client should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.HTTPClient = nil
		provider, err := guardian.NewTCSProvider(args)
		assert.True(t, check.IfNil(provider))
		assert.Equal(t, common.ErrNilHTTPClient, err)
	})
	t.Run("nil marshaller should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.Marshaller = nil
		provider, err := guardian.NewTCSProvider(args)
		assert.True(t, check.IfNil(provider))
		assert.Equal(t, transaction.ErrNilMarshaller, err)
	})
	t.Run("nil serializer should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.Serializer = nil
		provider, err := guardian.NewTCSProvider(args)
		assert.True(t, check.IfNil(provider))
		assert.Equal(t, process.ErrNilSigningSerializer, err)
	})
	t.Run("nil signature verifier should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.SigVerifier = nil
		provider, err := guardian.NewTCSProvider(args)
		assert.True(t, check.IfNil(provider))
		assert.Equal(t, process.ErrNilGuardianSigVerifier, err)
	})
	t.Run("nil status handler should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.StatusHandler = nil
		provider, err := guardian.NewTCSProvider(args)
		assert.True(t, check.IfNil(provider))
		assert.Equal(t, process.ErrNilStatusHandler, err)
	})
	t.Run("empty guardian address should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.GuardianAddress = nil
		provider, err := guardian.NewTCSProvider(args)
		assert.True(t, check.IfNil(provider))
		assert.Equal(t, guardian.ErrEmptyGuardianAddress, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		provider, err := guardian.NewTCSProvider(args)
		assert.Nil(t, err)
		assert.False(t, check.IfNil(provider))
		assert.Equal(t, args.GuardianAddress, provider.GuardianAddress())
	})
}

func TestTcsProvider_ApplyGuardianSignatureBatchChecks(t *testing.T) {
	t.Parallel()

	numCalls := 0
	args := createMockArgsTCSProvider(t, "http://localhost")
	args.HTTPClient = &testscommon.HTTPClientWrapperStub{
		PostHTTPCalled: func(ctx context.Context, endpoint string, data []byte) ([]byte, int, error) {
			numCalls++
			return nil, http.StatusOK, nil
		},
	}
	provider, _ := guardian.NewTCSProvider(args)

	_, err := provider.ApplyGuardianSignature(context.Background(), nil, validCode)
	assert.Equal(t, process.ErrEmptyTransactionsBatch, err)

	txs := createBatch(t, testscommon.BobPubKeyHex, 1)
	txs = append(txs, nil)
	_, err = provider.ApplyGuardianSignature(context.Background(), txs, validCode)
	assert.True(t, errors.Is(err, process.ErrNilTransaction))

	signed := createGuardedTx(t, 1, testscommon.BobPubKeyHex)
	require.Nil(t, signed.ApplyGuardianSignature([]byte("signature")))
	_, err = provider.ApplyGuardianSignature(context.Background(), []*transaction.GuardedTransaction{signed}, validCode)
	assert.True(t, errors.Is(err, process.ErrInvalidState))

	otherGuardian := createBatch(t, testscommon.BobPubKeyHex, 1)
	otherGuardian = append(otherGuardian, createGuardedTx(t, 2, testscommon.AlicePubKeyHex))
	_, err = provider.ApplyGuardianSignature(context.Background(), otherGuardian, validCode)
	assert.True(t, errors.Is(err, guardian.ErrGuardianMismatch))
	assert.Contains(t, err.Error(), "index 1")
	requireUntouched(t, otherGuardian)

	gtx := createGuardedTx(t, 1, testscommon.BobPubKeyHex)
	duplicated := []*transaction.GuardedTransaction{gtx, createGuardedTx(t, 2, testscommon.BobPubKeyHex), gtx}
	_, err = provider.ApplyGuardianSignature(context.Background(), duplicated, validCode)
	assert.True(t, errors.Is(err, process.ErrDuplicatedTransaction))
	assert.Contains(t, err.Error(), "indexes 0 and 2")
	requireUntouched(t, duplicated)

	assert.Equal(t, 0, numCalls)
}

func TestTcsProvider_ApplyGuardianSignatureMarshallerErrors(t *testing.T) {
	t.Parallel()

	t.Run("marshal error should error", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgsTCSProvider(t, "http://localhost")
		args.HTTPClient = &testscommon.HTTPClientWrapperStub{
			PostHTTPCalled: func(ctx context.Context, endpoint string, data []byte) ([]byte, int, error) {
				numCalls++
				return nil, http.StatusOK, nil
			},
		}
		args.Marshaller = &testscommon.MarshallerStub{
			MarshalCalled: func(obj interface{}) ([]byte, error) {
				return nil, expectedErr
			},
		}
		provider, _ := guardian.NewTCSProvider(args)

		txs := createBatch(t, testscommon.BobPubKeyHex, 1)
		result, err := provider.ApplyGuardianSignature(context.Background(), txs, validCode)
		assert.Nil(t, result)
		assert.Equal(t, expectedErr, err)
		assert.Equal(t, 0, numCalls)
		requireUntouched(t, txs)
	})
	t.Run("unmarshal error should error", func(t *testing.T) {
		t.Parallel()

		_, url := startGuardianServer(t, nil)
		args := createMockArgsTCSProvider(t, url)
		jsonMarshaller := &marshal.JsonMarshalizer{}
		args.Marshaller = &testscommon.MarshallerStub{
			MarshalCalled: jsonMarshaller.Marshal,
			UnmarshalCalled: func(obj interface{}, buff []byte) error {
				return expectedErr
			},
		}
		provider, _ := guardian.NewTCSProvider(args)

		txs := createBatch(t, testscommon.BobPubKeyHex, 1)
		result, err := provider.ApplyGuardianSignature(context.Background(), txs, validCode)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, common.ErrTransportFailure))
		assert.Contains(t, err.Error(), expectedErr.Error())
		requireUntouched(t, txs)
	})
}

func TestTcsProvider_ApplyGuardianSignatureShouldWork(t *testing.T) {
	t.Parallel()

	server, url := startGuardianServer(t, nil)
	args := createMockArgsTCSProvider(t, url)
	outcomes := make([]string, 0)
	args.StatusHandler = &testscommon.StatusHandlerStub{
		GuardianRequestDoneCalled: func(outcome string, duration time.Duration) {
			outcomes = append(outcomes, outcome)
		},
	}
	provider, _ := guardian.NewTCSProvider(args)

	txs := createBatch(t, testscommon.BobPubKeyHex, 1, 2, 3)
	result, err := provider.ApplyGuardianSignature(context.Background(), txs, validCode)
	require.Nil(t, err)
	assert.Equal(t, txs, result)

	verifier := createSigVerifier(t)
	for _, tx := range txs {
		assert.Equal(t, transaction.StateGuardianSigned, tx.State())
		assert.Nil(t, verifier.VerifyGuardianSignature(tx, tx.GuardianSignature()))
	}

	requests := server.Requests()
	require.Equal(t, 1, len(requests))
	assert.Equal(t, validCode, requests[0].Code)
	require.Equal(t, 3, len(requests[0].Transactions))
	for idx, ftx := range requests[0].Transactions {
		assert.Equal(t, txs[idx].Nonce(), ftx.Nonce)
		assert.Empty(t, ftx.GuardianSignature)
		assert.Empty(t, ftx.Signature)
	}
	assert.Equal(t, []string{core.OutcomeSuccess}, outcomes)
}

func TestTcsProvider_ApplyGuardianSignatureFailures(t *testing.T) {
	t.Parallel()

	respondWith := func(status int, response *api.SignMultipleTransactionsResponse) func(server *testscommon.GuardianServerMock) {
		return func(server *testscommon.GuardianServerMock) {
			server.HandleCalled = func(request *api.SignMultipleTransactionsRequest) (int, *api.SignMultipleTransactionsResponse) {
				return status, response
			}
		}
	}

	tests := []struct {
		name            string
		setup           func(server *testscommon.GuardianServerMock)
		expectedErr     error
		expectedOutcome string
	}{
		{
			name:            "wrong code",
			setup:           func(server *testscommon.GuardianServerMock) { server.Code = "654321" },
			expectedErr:     guardian.ErrInvalidOtp,
			expectedOutcome: core.OutcomeInvalidOtp,
		},
		{
			name:            "unauthorized",
			setup:           respondWith(http.StatusUnauthorized, &api.SignMultipleTransactionsResponse{Error: "not allowed"}),
			expectedErr:     guardian.ErrInvalidOtp,
			expectedOutcome: core.OutcomeInvalidOtp,
		},
		{
			name:            "forbidden",
			setup:           respondWith(http.StatusForbidden, &api.SignMultipleTransactionsResponse{}),
			expectedErr:     guardian.ErrInvalidOtp,
			expectedOutcome: core.OutcomeInvalidOtp,
		},
		{
			name:            "guardian rejection",
			setup:           respondWith(http.StatusBadRequest, &api.SignMultipleTransactionsResponse{Error: "invalid guardian"}),
			expectedErr:     guardian.ErrGuardianMismatch,
			expectedOutcome: core.OutcomeFailure,
		},
		{
			name:            "internal error",
			setup:           respondWith(http.StatusInternalServerError, &api.SignMultipleTransactionsResponse{Error: "internal issue"}),
			expectedErr:     common.ErrTransportFailure,
			expectedOutcome: core.OutcomeFailure,
		},
		{
			name:            "error text on success status",
			setup:           respondWith(http.StatusOK, &api.SignMultipleTransactionsResponse{Error: "something went wrong"}),
			expectedErr:     common.ErrTransportFailure,
			expectedOutcome: core.OutcomeFailure,
		},
		{
			name: "fewer transactions",
			setup: respondWith(http.StatusOK, &api.SignMultipleTransactionsResponse{
				Data: api.SignMultipleTransactionsData{Transactions: []*coreTx.FrontendTransaction{{GuardianSignature: "aa"}}},
			}),
			expectedErr:     guardian.ErrGuardianResponseMismatch,
			expectedOutcome: core.OutcomeFailure,
		},
		{
			name: "not hex signature",
			setup: respondWith(http.StatusOK, &api.SignMultipleTransactionsResponse{
				Data: api.SignMultipleTransactionsData{Transactions: []*coreTx.FrontendTransaction{{GuardianSignature: "zz"}, {GuardianSignature: "aa"}}},
			}),
			expectedErr:     process.ErrInvalidGuardianSignature,
			expectedOutcome: core.OutcomeFailure,
		},
		{
			name: "forged signatures",
			setup: respondWith(http.StatusOK, &api.SignMultipleTransactionsResponse{
				Data: api.SignMultipleTransactionsData{Transactions: []*coreTx.FrontendTransaction{
					{GuardianSignature: hex.EncodeToString(make([]byte, 64))},
					{GuardianSignature: hex.EncodeToString(make([]byte, 64))},
				}},
			}),
			expectedErr:     process.ErrInvalidGuardianSignature,
			expectedOutcome: core.OutcomeSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" should error", func(t *testing.T) {
			t.Parallel()

			_, url := startGuardianServer(t, tt.setup)
			args := createMockArgsTCSProvider(t, url)
			outcome := ""
			args.StatusHandler = &testscommon.StatusHandlerStub{
				GuardianRequestDoneCalled: func(o string, duration time.Duration) {
					outcome = o
				},
			}
			provider, _ := guardian.NewTCSProvider(args)

			txs := createBatch(t, testscommon.BobPubKeyHex, 1, 2)
			result, err := provider.ApplyGuardianSignature(context.Background(), txs, validCode)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.expectedErr), err)
			assert.Equal(t, tt.expectedOutcome, outcome)
			requireUntouched(t, txs)
		})
	}

	t.Run("transport error should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.HTTPClient = &testscommon.HTTPClientWrapperStub{
			PostHTTPCalled: func(ctx context.Context, endpoint string, data []byte) ([]byte, int, error) {
				return nil, http.StatusServiceUnavailable, common.ErrTransportFailure
			},
		}
		provider, _ := guardian.NewTCSProvider(args)

		txs := createBatch(t, testscommon.BobPubKeyHex, 1)
		_, err := provider.ApplyGuardianSignature(context.Background(), txs, validCode)
		assert.Equal(t, common.ErrTransportFailure, err)
		requireUntouched(t, txs)
	})
	t.Run("not json response should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTCSProvider(t, "http://localhost")
		args.HTTPClient = &testscommon.HTTPClientWrapperStub{
			PostHTTPCalled: func(ctx context.Context, endpoint string, data []byte) ([]byte, int, error) {
				return []byte("<html>"), http.StatusOK, nil
			},
		}
		provider, _ := guardian.NewTCSProvider(args)

		txs := createBatch(t, testscommon.BobPubKeyHex, 1)
		_, err := provider.ApplyGuardianSignature(context.Background(), txs, validCode)
		assert.True(t, errors.Is(err, common.ErrTransportFailure))
		requireUntouched(t, txs)
	})
}
