package testscommon

import (
	"encoding/hex"

	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/hashing/keccak"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/signing"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
)

const (
	// AliceSecretKeyHex -
	AliceSecretKeyHex = "413f42575f7f26fad3317a778771212fdb80245850981e48b58a4f25e344e8f9"
	// AlicePubKeyHex -
	AlicePubKeyHex = "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1"
	// AliceBech32 -
	AliceBech32 = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	// BobSecretKeyHex -
	BobSecretKeyHex = "b8ca6f8203fb4b545a8e83c5384da033c415db155b53fb5b8eba7ff5a039d639"
	// BobPubKeyHex -
	BobPubKeyHex = "8049d639e5a6980d1cd2392abcce41029cda74a1563523a202f09641cc2618f8"
	// BobBech32 -
	BobBech32 = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
	// CarolSecretKeyHex -
	CarolSecretKeyHex = "e253a571ca153dc2aee845819f74bcc9773b0586edead15a94cb7235a5027436"
	// RFC6238Secret is the base32 form of the "12345678901234567890" secret
	RFC6238Secret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
)

// DecodeHex -
func DecodeHex(str string) []byte {
	buff, _ := hex.DecodeString(str)

	return buff
}

// CreatePubkeyConverter -
func CreatePubkeyConverter() common.PubkeyConverter {
	converter, _ := pubkeyConverter.NewBech32PubkeyConverter(32, "erd")

	return converter
}

// CreateSigningSerializer -
func CreateSigningSerializer() transaction.SigningSerializer {
	serializer, _ := transaction.NewSigningSerializer(transaction.ArgsSigningSerializer{
		PubkeyConverter:   CreatePubkeyConverter(),
		SigningMarshaller: &marshal.JsonMarshalizer{},
		SigningHasher:     keccak.NewKeccak(),
		TxMarshaller:      &marshal.GogoProtoMarshalizer{},
		TxHasher:          blake2b.NewBlake2b(),
	})

	return serializer
}

// CreateEd25519Signer -
func CreateEd25519Signer(secretKeyHex string) process.Signer {
	signer, _ := signing.NewEd25519OwnerSigner(DecodeHex(secretKeyHex))

	return signer
}
