package transaction

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core/check"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
)

// signingPayload is the frozen wire schema that both the guardian and the owner sign. The JSON key order follows the
// struct field order, empty optional fields are omitted. The signature field is never part of it.
type signingPayload struct {
	Nonce             uint64 `json:"nonce"`
	Value             string `json:"value"`
	Receiver          string `json:"receiver"`
	Sender            string `json:"sender"`
	GasPrice          uint64 `json:"gasPrice"`
	GasLimit          uint64 `json:"gasLimit"`
	Data              []byte `json:"data,omitempty"`
	ChainID           string `json:"chainID"`
	Version           uint32 `json:"version"`
	Options           uint32 `json:"options,omitempty"`
	GuardianAddr      string `json:"guardian,omitempty"`
	GuardianSignature string `json:"guardianSignature,omitempty"`
}

// ArgsSigningSerializer holds the arguments needed to create a signing serializer
type ArgsSigningSerializer struct {
	PubkeyConverter   PubkeyConverter
	SigningMarshaller Marshaller
	SigningHasher     Hasher
	TxMarshaller      Marshaller
	TxHasher          Hasher
}

type signingSerializer struct {
	pubkeyConverter   PubkeyConverter
	signingMarshaller Marshaller
	signingHasher     Hasher
	txMarshaller      Marshaller
	txHasher          Hasher
}

// NewSigningSerializer creates the component producing the canonical signing payloads of guarded transactions
func NewSigningSerializer(args ArgsSigningSerializer) (*signingSerializer, error) {
	if check.IfNil(args.PubkeyConverter) {
		return nil, ErrNilPubkeyConverter
	}
	if check.IfNil(args.SigningMarshaller) {
		return nil, fmt.Errorf("%w for signing", ErrNilMarshaller)
	}
	if check.IfNil(args.SigningHasher) {
		return nil, fmt.Errorf("%w for signing", ErrNilHasher)
	}
	if check.IfNil(args.TxMarshaller) {
		return nil, fmt.Errorf("%w for transaction hash", ErrNilMarshaller)
	}
	if check.IfNil(args.TxHasher) {
		return nil, fmt.Errorf("%w for transaction hash", ErrNilHasher)
	}

	return &signingSerializer{
		pubkeyConverter:   args.PubkeyConverter,
		signingMarshaller: args.SigningMarshaller,
		signingHasher:     args.SigningHasher,
		txMarshaller:      args.TxMarshaller,
		txHasher:          args.TxHasher,
	}, nil
}

// ComputeDataForGuardianSigning returns the bytes the guardian signs: the guardian signature is never included
func (ss *signingSerializer) ComputeDataForGuardianSigning(gtx *GuardedTransaction) ([]byte, error) {
	return ss.computeDataForSigning(gtx, false)
}

// ComputeDataForSigning returns the bytes the owner signs: the guardian signature is included when present
func (ss *signingSerializer) ComputeDataForSigning(gtx *GuardedTransaction) ([]byte, error) {
	return ss.computeDataForSigning(gtx, true)
}

// ComputeFrontendDataForGuardianSigning returns the bytes a guardian signs for a transaction received in its
// frontend form
func (ss *signingSerializer) ComputeFrontendDataForGuardianSigning(ftx *coreTx.FrontendTransaction) ([]byte, error) {
	return ss.computeFrontendDataForSigning(ftx, false)
}

func (ss *signingSerializer) computeDataForSigning(gtx *GuardedTransaction, withGuardianSignature bool) ([]byte, error) {
	ftx, err := ss.ToFrontendTransaction(gtx)
	if err != nil {
		return nil, err
	}

	return ss.computeFrontendDataForSigning(ftx, withGuardianSignature)
}

func (ss *signingSerializer) computeFrontendDataForSigning(ftx *coreTx.FrontendTransaction, withGuardianSignature bool) ([]byte, error) {
	err := checkRequiredFields(ftx)
	if err != nil {
		return nil, err
	}

	payload := &signingPayload{
		Nonce:        ftx.Nonce,
		Value:        ftx.Value,
		Receiver:     ftx.Receiver,
		Sender:       ftx.Sender,
		GasPrice:     ftx.GasPrice,
		GasLimit:     ftx.GasLimit,
		Data:         ftx.Data,
		ChainID:      ftx.ChainID,
		Version:      ftx.Version,
		Options:      ftx.Options,
		GuardianAddr: ftx.GuardianAddr,
	}
	if withGuardianSignature {
		payload.GuardianSignature = ftx.GuardianSignature
	}

	buff, err := ss.signingMarshaller.Marshal(payload)
	if err != nil {
		return nil, err
	}

	if !isSignedWithHash(ftx) {
		return buff, nil
	}

	return ss.signingHasher.Compute(string(buff)), nil
}

func checkRequiredFields(ftx *coreTx.FrontendTransaction) error {
	if ftx == nil {
		return ErrNilTransaction
	}
	if len(ftx.Sender) == 0 {
		return fmt.Errorf("%w: sender", ErrMissingRequiredField)
	}
	if len(ftx.Receiver) == 0 {
		return fmt.Errorf("%w: receiver", ErrMissingRequiredField)
	}
	if len(ftx.Value) == 0 {
		return fmt.Errorf("%w: value", ErrMissingRequiredField)
	}
	value, ok := big.NewInt(0).SetString(ftx.Value, 10)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidValue, ftx.Value)
	}
	if value.Sign() < 0 {
		return ErrNegativeValue
	}
	if len(ftx.ChainID) == 0 {
		return fmt.Errorf("%w: chain ID", ErrMissingRequiredField)
	}
	if ftx.Version == 0 {
		return fmt.Errorf("%w: version", ErrMissingRequiredField)
	}

	return nil
}

func isSignedWithHash(ftx *coreTx.FrontendTransaction) bool {
	return ftx.Version >= core.GuardedTxVersion && ftx.Options&core.TxOptionSignedWithHash != 0
}

// ToFrontendTransaction converts the guarded transaction to the structure exchanged with the guardian and the
// network gateway. Signatures are hex encoded and only set when present
func (ss *signingSerializer) ToFrontendTransaction(gtx *GuardedTransaction) (*coreTx.FrontendTransaction, error) {
	if gtx == nil {
		return nil, ErrNilTransaction
	}

	receiver, err := ss.pubkeyConverter.Encode(gtx.tx.RcvAddr)
	if err != nil {
		return nil, fmt.Errorf("%w for receiver: %s", ErrInvalidAddress, err.Error())
	}
	sender, err := ss.pubkeyConverter.Encode(gtx.tx.SndAddr)
	if err != nil {
		return nil, fmt.Errorf("%w for sender: %s", ErrInvalidAddress, err.Error())
	}

	guardian := ""
	if len(gtx.tx.GuardianAddr) > 0 {
		guardian, err = ss.pubkeyConverter.Encode(gtx.tx.GuardianAddr)
		if err != nil {
			return nil, fmt.Errorf("%w for guardian: %s", ErrInvalidAddress, err.Error())
		}
	}

	ftx := &coreTx.FrontendTransaction{
		Nonce:        gtx.tx.Nonce,
		Value:        gtx.tx.Value.String(),
		Receiver:     receiver,
		Sender:       sender,
		GasPrice:     gtx.tx.GasPrice,
		GasLimit:     gtx.tx.GasLimit,
		Data:         gtx.Data(),
		ChainID:      string(gtx.tx.ChainID),
		Version:      gtx.tx.Version,
		Options:      gtx.tx.Options,
		GuardianAddr: guardian,
	}
	if len(gtx.tx.Signature) > 0 {
		ftx.Signature = hex.EncodeToString(gtx.tx.Signature)
	}
	if len(gtx.tx.GuardianSignature) > 0 {
		ftx.GuardianSignature = hex.EncodeToString(gtx.tx.GuardianSignature)
	}

	return ftx, nil
}

// ComputeHash returns the hash the network assigns to the transaction: the hash of its protobuf encoding
func (ss *signingSerializer) ComputeHash(gtx *GuardedTransaction) ([]byte, error) {
	if gtx == nil {
		return nil, ErrNilTransaction
	}

	buff, err := ss.txMarshaller.Marshal(gtx.CoreTransaction())
	if err != nil {
		return nil, err
	}

	return ss.txHasher.Compute(string(buff)), nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ss *signingSerializer) IsInterfaceNil() bool {
	return ss == nil
}
