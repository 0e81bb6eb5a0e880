package transaction_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/hashing/keccak"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	expectedGuardianPayload = `{"nonce":7,"value":"1000000000000000000","receiver":"` + bobBech32 + `","sender":"` + aliceBech32 +
		`","gasPrice":1000000000,"gasLimit":100000,"chainID":"D","version":2,"options":2,"guardian":"` + bobBech32 + `"}`
	expectedOwnerPayload = `{"nonce":7,"value":"1000000000000000000","receiver":"` + bobBech32 + `","sender":"` + aliceBech32 +
		`","gasPrice":1000000000,"gasLimit":100000,"chainID":"D","version":2,"options":2,"guardian":"` + bobBech32 +
		`","guardianSignature":"aabbcc"}`
)

func createMockArgsSigningSerializer() transaction.ArgsSigningSerializer {
	converter, _ := pubkeyConverter.NewBech32PubkeyConverter(32, "erd")

	return transaction.ArgsSigningSerializer{
		PubkeyConverter:   converter,
		SigningMarshaller: &marshal.JsonMarshalizer{},
		SigningHasher:     keccak.NewKeccak(),
		TxMarshaller:      &marshal.GogoProtoMarshalizer{},
		TxHasher:          blake2b.NewBlake2b(),
	}
}

func createSigningSerializer(t *testing.T) transaction.SigningSerializer {
	serializer, err := transaction.NewSigningSerializer(createMockArgsSigningSerializer())
	require.Nil(t, err)

	return serializer
}

func TestNewSigningSerializer(t *testing.T) {
	t.Parallel()

	t.Run("nil pubkey converter should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSigningSerializer()
		args.PubkeyConverter = nil
		serializer, err := transaction.NewSigningSerializer(args)
		assert.Nil(t, serializer)
		assert.Equal(t, transaction.ErrNilPubkeyConverter, err)
	})
	t.Run("nil signing marshaller should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSigningSerializer()
		args.SigningMarshaller = nil
		serializer, err := transaction.NewSigningSerializer(args)
		assert.Nil(t, serializer)
		assert.True(t, errors.Is(err, transaction.ErrNilMarshaller))
	})
	t.Run("nil signing hasher should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSigningSerializer()
		args.SigningHasher = nil
		serializer, err := transaction.NewSigningSerializer(args)
		assert.Nil(t, serializer)
		assert.True(t, errors.Is(err, transaction.ErrNilHasher))
	})
	t.Run("nil tx marshaller should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSigningSerializer()
		args.TxMarshaller = nil
		serializer, err := transaction.NewSigningSerializer(args)
		assert.Nil(t, serializer)
		assert.True(t, errors.Is(err, transaction.ErrNilMarshaller))
	})
	t.Run("nil tx hasher should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsSigningSerializer()
		args.TxHasher = nil
		serializer, err := transaction.NewSigningSerializer(args)
		assert.Nil(t, serializer)
		assert.True(t, errors.Is(err, transaction.ErrNilHasher))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		serializer, err := transaction.NewSigningSerializer(createMockArgsSigningSerializer())
		assert.Nil(t, err)
		assert.False(t, serializer.IsInterfaceNil())
	})
}

func TestSigningSerializer_CanonicalPayloads(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	gtx := createGuardedTransaction(t)

	guardianPayload, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)
	assert.Equal(t, expectedGuardianPayload, string(guardianPayload))

	ownerPayloadBeforeGuardian, err := serializer.ComputeDataForSigning(gtx)
	require.Nil(t, err)
	assert.Equal(t, expectedGuardianPayload, string(ownerPayloadBeforeGuardian))

	require.Nil(t, gtx.ApplyGuardianSignature([]byte{0xaa, 0xbb, 0xcc}))

	guardianPayloadAfter, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)
	assert.Equal(t, expectedGuardianPayload, string(guardianPayloadAfter))

	ownerPayload, err := serializer.ComputeDataForSigning(gtx)
	require.Nil(t, err)
	assert.Equal(t, expectedOwnerPayload, string(ownerPayload))
	assert.NotEqual(t, guardianPayloadAfter, ownerPayload)
}

func TestSigningSerializer_SignatureIsNeverSerialized(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	gtx := createGuardedTransaction(t)
	require.Nil(t, gtx.ApplyGuardianSignature([]byte{0xaa, 0xbb, 0xcc}))
	require.Nil(t, gtx.ApplySignature([]byte{0x01, 0x02}))

	ownerPayload, err := serializer.ComputeDataForSigning(gtx)
	require.Nil(t, err)
	assert.Equal(t, expectedOwnerPayload, string(ownerPayload))
}

func TestSigningSerializer_DataIsBase64Encoded(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	args := createMockArgsGuardedTransaction(t)
	args.Data = []byte("hello")
	gtx, err := transaction.NewGuardedTransaction(args)
	require.Nil(t, err)

	payload, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)
	assert.Contains(t, string(payload), `"gasLimit":100000,"data":"aGVsbG8=","chainID":"D"`)
}

func TestSigningSerializer_SignWithHash(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	args := createMockArgsGuardedTransaction(t)
	args.SignWithHash = true
	gtx, err := transaction.NewGuardedTransaction(args)
	require.Nil(t, err)

	payload, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)

	expectedJson := bytes.Replace([]byte(expectedGuardianPayload), []byte(`"options":2`), []byte(`"options":3`), 1)
	expectedHash := keccak.NewKeccak().Compute(string(expectedJson))
	assert.Equal(t, expectedHash, payload)
	assert.Len(t, payload, 32)
}

func TestSigningSerializer_Determinism(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	gtx := createGuardedTransaction(t)

	first, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)
	second, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)
	assert.Equal(t, first, second)

	other := createGuardedTransaction(t)
	third, err := serializer.ComputeDataForGuardianSigning(other)
	require.Nil(t, err)
	assert.Equal(t, first, third)
}

func TestSigningSerializer_FieldSensitivity(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	basePayload, err := serializer.ComputeDataForSigning(createGuardedTransaction(t))
	require.Nil(t, err)

	checkChanged := func(t *testing.T, gtx *transaction.GuardedTransaction) {
		payload, errCompute := serializer.ComputeDataForSigning(gtx)
		require.Nil(t, errCompute)
		assert.NotEqual(t, basePayload, payload)
	}

	t.Run("nonce", func(t *testing.T) {
		args := createMockArgsGuardedTransaction(t)
		args.Nonce++
		gtx, errNew := transaction.NewGuardedTransaction(args)
		require.Nil(t, errNew)
		checkChanged(t, gtx)
	})
	t.Run("gas limit", func(t *testing.T) {
		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.SetGasLimit(50001))
		checkChanged(t, gtx)
	})
	t.Run("chain ID", func(t *testing.T) {
		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.SetChainID("T"))
		checkChanged(t, gtx)
	})
	t.Run("options", func(t *testing.T) {
		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.SetSignWithHash(true))
		checkChanged(t, gtx)
	})
	t.Run("guardian", func(t *testing.T) {
		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.SetGuardianAddress(decodeHex(t, alicePubKeyHex)))
		checkChanged(t, gtx)
	})
	t.Run("guardian signature", func(t *testing.T) {
		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.ApplyGuardianSignature([]byte("sig")))
		checkChanged(t, gtx)
	})
	t.Run("value", func(t *testing.T) {
		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.SetValue(big.NewInt(1)))
		checkChanged(t, gtx)
	})
	t.Run("version", func(t *testing.T) {
		ftx, errConvert := serializer.ToFrontendTransaction(createGuardedTransaction(t))
		require.Nil(t, errConvert)
		baseFrontendPayload, errCompute := serializer.ComputeFrontendDataForGuardianSigning(ftx)
		require.Nil(t, errCompute)

		ftx.Version = 3
		payload, errCompute := serializer.ComputeFrontendDataForGuardianSigning(ftx)
		require.Nil(t, errCompute)
		assert.NotEqual(t, baseFrontendPayload, payload)
	})
}

func TestSigningSerializer_ComputeDataDoesNotMutate(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)
	gtx := createGuardedTransaction(t)
	before := gtx.CoreTransaction()

	_, err := serializer.ComputeDataForGuardianSigning(gtx)
	require.Nil(t, err)
	_, err = serializer.ComputeDataForSigning(gtx)
	require.Nil(t, err)
	_, err = serializer.ComputeHash(gtx)
	require.Nil(t, err)

	assert.Equal(t, before, gtx.CoreTransaction())
	assert.Equal(t, transaction.StateBuilt, gtx.State())
}

func TestSigningSerializer_ComputeFrontendDataForGuardianSigning(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)

	t.Run("nil transaction should error", func(t *testing.T) {
		t.Parallel()

		payload, err := serializer.ComputeFrontendDataForGuardianSigning(nil)
		assert.Nil(t, payload)
		assert.Equal(t, transaction.ErrNilTransaction, err)
	})
	t.Run("missing fields should error", func(t *testing.T) {
		t.Parallel()

		ftx := &coreTx.FrontendTransaction{
			Value:    "1",
			Receiver: bobBech32,
			ChainID:  "D",
			Version:  2,
		}
		_, err := serializer.ComputeFrontendDataForGuardianSigning(ftx)
		assert.True(t, errors.Is(err, transaction.ErrMissingRequiredField))

		ftx.Sender = aliceBech32
		ftx.ChainID = ""
		_, err = serializer.ComputeFrontendDataForGuardianSigning(ftx)
		assert.True(t, errors.Is(err, transaction.ErrMissingRequiredField))

		ftx.ChainID = "D"
		ftx.Version = 0
		_, err = serializer.ComputeFrontendDataForGuardianSigning(ftx)
		assert.True(t, errors.Is(err, transaction.ErrMissingRequiredField))
	})
	t.Run("invalid value should error", func(t *testing.T) {
		t.Parallel()

		ftx := &coreTx.FrontendTransaction{
			Value:    "1.5",
			Receiver: bobBech32,
			Sender:   aliceBech32,
			ChainID:  "D",
			Version:  2,
		}
		_, err := serializer.ComputeFrontendDataForGuardianSigning(ftx)
		assert.True(t, errors.Is(err, transaction.ErrInvalidValue))

		ftx.Value = "-1"
		_, err = serializer.ComputeFrontendDataForGuardianSigning(ftx)
		assert.Equal(t, transaction.ErrNegativeValue, err)
	})
	t.Run("matches the guarded transaction payload, guardian signature excluded", func(t *testing.T) {
		t.Parallel()

		gtx := createGuardedTransaction(t)
		require.Nil(t, gtx.ApplyGuardianSignature([]byte{0xaa, 0xbb, 0xcc}))
		ftx, err := serializer.ToFrontendTransaction(gtx)
		require.Nil(t, err)

		payload, err := serializer.ComputeFrontendDataForGuardianSigning(ftx)
		require.Nil(t, err)
		assert.Equal(t, expectedGuardianPayload, string(payload))
	})
}

func TestSigningSerializer_ToFrontendTransaction(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)

	ftx, err := serializer.ToFrontendTransaction(nil)
	assert.Nil(t, ftx)
	assert.Equal(t, transaction.ErrNilTransaction, err)

	gtx := createGuardedTransaction(t)
	ftx, err = serializer.ToFrontendTransaction(gtx)
	require.Nil(t, err)
	assert.Equal(t, &coreTx.FrontendTransaction{
		Nonce:        7,
		Value:        "1000000000000000000",
		Receiver:     bobBech32,
		Sender:       aliceBech32,
		GasPrice:     1000000000,
		GasLimit:     100000,
		ChainID:      "D",
		Version:      2,
		Options:      2,
		GuardianAddr: bobBech32,
	}, ftx)

	require.Nil(t, gtx.ApplyGuardianSignature([]byte{0xaa}))
	require.Nil(t, gtx.ApplySignature([]byte{0xbb}))
	ftx, err = serializer.ToFrontendTransaction(gtx)
	require.Nil(t, err)
	assert.Equal(t, "aa", ftx.GuardianSignature)
	assert.Equal(t, "bb", ftx.Signature)
}

func TestSigningSerializer_ComputeHash(t *testing.T) {
	t.Parallel()

	serializer := createSigningSerializer(t)

	hash, err := serializer.ComputeHash(nil)
	assert.Nil(t, hash)
	assert.Equal(t, transaction.ErrNilTransaction, err)

	gtx := createGuardedTransaction(t)
	unsignedHash, err := serializer.ComputeHash(gtx)
	require.Nil(t, err)
	assert.Len(t, unsignedHash, 32)

	sameHash, err := serializer.ComputeHash(createGuardedTransaction(t))
	require.Nil(t, err)
	assert.Equal(t, unsignedHash, sameHash)

	require.Nil(t, gtx.ApplyGuardianSignature([]byte{0xaa}))
	require.Nil(t, gtx.ApplySignature([]byte{0xbb}))
	signedHash, err := serializer.ComputeHash(gtx)
	require.Nil(t, err)
	assert.NotEqual(t, hex.EncodeToString(unsignedHash), hex.EncodeToString(signedHash))
}
