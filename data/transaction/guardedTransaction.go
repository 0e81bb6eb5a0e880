package transaction

import (
	"fmt"
	"math"
	"math/big"

	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
)

// ArgsGuardedTransaction holds the fields of a transfer intent that needs a guardian co-signature
type ArgsGuardedTransaction struct {
	Nonce           uint64
	Value           *big.Int
	Receiver        []byte
	Sender          []byte
	GasPrice        uint64
	GasLimit        uint64
	Data            []byte
	ChainID         string
	GuardianAddress []byte
	SignWithHash    bool
}

// GuardedTransaction holds all the data of a value transfer that requires both the owner and the guardian
// signatures. Fields can only be changed while the transaction is in StateBuilt, the nonce is fixed at construction.
// A GuardedTransaction is owned by a single flow and is not safe for concurrent mutation.
type GuardedTransaction struct {
	tx     coreTx.Transaction
	state  State
	txHash string
}

// NewGuardedTransaction creates a guarded transaction in StateBuilt. The provided gas limit is the base one, the
// guardian verification surcharge is added on top of it
func NewGuardedTransaction(args ArgsGuardedTransaction) (*GuardedTransaction, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	gasLimit, err := addGuardianSurcharge(args.GasLimit)
	if err != nil {
		return nil, err
	}

	options := core.TxOptionGuarded
	if args.SignWithHash {
		options |= core.TxOptionSignedWithHash
	}

	return &GuardedTransaction{
		tx: coreTx.Transaction{
			Nonce:        args.Nonce,
			Value:        big.NewInt(0).Set(args.Value),
			RcvAddr:      copyBytes(args.Receiver),
			SndAddr:      copyBytes(args.Sender),
			GasPrice:     args.GasPrice,
			GasLimit:     gasLimit,
			Data:         copyBytes(args.Data),
			ChainID:      []byte(args.ChainID),
			Version:      core.GuardedTxVersion,
			Options:      options,
			GuardianAddr: copyBytes(args.GuardianAddress),
		},
		state: StateBuilt,
	}, nil
}

func checkArgs(args ArgsGuardedTransaction) error {
	err := checkValue(args.Value)
	if err != nil {
		return err
	}
	if len(args.Sender) != core.AddressLen {
		return fmt.Errorf("%w for sender", ErrInvalidAddress)
	}
	if len(args.Receiver) != core.AddressLen {
		return fmt.Errorf("%w for receiver", ErrInvalidAddress)
	}
	err = checkGuardianAddress(args.GuardianAddress)
	if err != nil {
		return err
	}
	if len(args.ChainID) == 0 {
		return ErrEmptyChainID
	}

	return nil
}

func checkValue(value *big.Int) error {
	if value == nil {
		return ErrNilValue
	}
	if value.Sign() < 0 {
		return ErrNegativeValue
	}

	return nil
}

func checkGuardianAddress(guardian []byte) error {
	if len(guardian) == 0 {
		return ErrEmptyGuardianAddress
	}
	if len(guardian) != core.AddressLen {
		return fmt.Errorf("%w for guardian", ErrInvalidAddress)
	}

	return nil
}

func addGuardianSurcharge(baseGasLimit uint64) (uint64, error) {
	if baseGasLimit > math.MaxUint64-core.ExtraGasLimitForGuardedTx {
		return 0, ErrGasLimitOverflow
	}

	return baseGasLimit + core.ExtraGasLimitForGuardedTx, nil
}

// State returns the current co-signing phase
func (gtx *GuardedTransaction) State() State {
	return gtx.state
}

// Nonce returns the sender nonce
func (gtx *GuardedTransaction) Nonce() uint64 {
	return gtx.tx.Nonce
}

// Value returns a copy of the transferred value, in the smallest denomination
func (gtx *GuardedTransaction) Value() *big.Int {
	return big.NewInt(0).Set(gtx.tx.Value)
}

// Sender returns the sender address bytes
func (gtx *GuardedTransaction) Sender() []byte {
	return copyBytes(gtx.tx.SndAddr)
}

// Receiver returns the receiver address bytes
func (gtx *GuardedTransaction) Receiver() []byte {
	return copyBytes(gtx.tx.RcvAddr)
}

// GasPrice returns the gas price
func (gtx *GuardedTransaction) GasPrice() uint64 {
	return gtx.tx.GasPrice
}

// GasLimit returns the gas limit, guardian surcharge included
func (gtx *GuardedTransaction) GasLimit() uint64 {
	return gtx.tx.GasLimit
}

// Data returns the data field
func (gtx *GuardedTransaction) Data() []byte {
	return copyBytes(gtx.tx.Data)
}

// ChainID returns the chain identifier
func (gtx *GuardedTransaction) ChainID() string {
	return string(gtx.tx.ChainID)
}

// Version returns the transaction version
func (gtx *GuardedTransaction) Version() uint32 {
	return gtx.tx.Version
}

// Options returns the options bit set
func (gtx *GuardedTransaction) Options() uint32 {
	return gtx.tx.Options
}

// IsSignedWithHash returns true if the signatures are computed over the hash of the signing payload
func (gtx *GuardedTransaction) IsSignedWithHash() bool {
	return gtx.tx.Options&core.TxOptionSignedWithHash != 0
}

// GuardianAddress returns the guardian address bytes
func (gtx *GuardedTransaction) GuardianAddress() []byte {
	return copyBytes(gtx.tx.GuardianAddr)
}

// GuardianSignature returns the guardian signature, empty before StateGuardianSigned
func (gtx *GuardedTransaction) GuardianSignature() []byte {
	return copyBytes(gtx.tx.GuardianSignature)
}

// Signature returns the owner signature, empty before StateOwnerSigned
func (gtx *GuardedTransaction) Signature() []byte {
	return copyBytes(gtx.tx.Signature)
}

// TxHash returns the hash reported by the network, empty before StateSubmitted
func (gtx *GuardedTransaction) TxHash() string {
	return gtx.txHash
}

// CoreTransaction returns a deep copy of the underlying protocol transaction
func (gtx *GuardedTransaction) CoreTransaction() *coreTx.Transaction {
	return &coreTx.Transaction{
		Nonce:             gtx.tx.Nonce,
		Value:             gtx.Value(),
		RcvAddr:           gtx.Receiver(),
		SndAddr:           gtx.Sender(),
		GasPrice:          gtx.tx.GasPrice,
		GasLimit:          gtx.tx.GasLimit,
		Data:              gtx.Data(),
		ChainID:           copyBytes(gtx.tx.ChainID),
		Version:           gtx.tx.Version,
		Signature:         gtx.Signature(),
		Options:           gtx.tx.Options,
		GuardianAddr:      gtx.GuardianAddress(),
		GuardianSignature: gtx.GuardianSignature(),
	}
}

// CheckGuardedFields verifies the fields a guardian requires before signing
func (gtx *GuardedTransaction) CheckGuardedFields() error {
	if gtx.tx.Version != core.GuardedTxVersion {
		return fmt.Errorf("%w: version %d", ErrNotGuardedTransaction, gtx.tx.Version)
	}
	if gtx.tx.Options&core.TxOptionGuarded == 0 {
		return fmt.Errorf("%w: guarded option not set", ErrNotGuardedTransaction)
	}
	if len(gtx.tx.GuardianAddr) == 0 {
		return fmt.Errorf("%w: %s", ErrNotGuardedTransaction, ErrEmptyGuardianAddress.Error())
	}
	if gtx.tx.GasLimit < core.ExtraGasLimitForGuardedTx {
		return fmt.Errorf("%w: gas limit %d does not cover the guardian surcharge", ErrNotGuardedTransaction, gtx.tx.GasLimit)
	}

	return nil
}

// SetValue changes the transferred value
func (gtx *GuardedTransaction) SetValue(value *big.Int) error {
	err := gtx.checkMutable("value")
	if err != nil {
		return err
	}
	err = checkValue(value)
	if err != nil {
		return err
	}

	gtx.tx.Value = big.NewInt(0).Set(value)
	return nil
}

// SetReceiver changes the receiver address
func (gtx *GuardedTransaction) SetReceiver(receiver []byte) error {
	err := gtx.checkMutable("receiver")
	if err != nil {
		return err
	}
	if len(receiver) != core.AddressLen {
		return fmt.Errorf("%w for receiver", ErrInvalidAddress)
	}

	gtx.tx.RcvAddr = copyBytes(receiver)
	return nil
}

// SetGasPrice changes the gas price
func (gtx *GuardedTransaction) SetGasPrice(gasPrice uint64) error {
	err := gtx.checkMutable("gas price")
	if err != nil {
		return err
	}

	gtx.tx.GasPrice = gasPrice
	return nil
}

// SetGasLimit changes the gas limit. The provided value is the base gas limit, the guardian surcharge is re-applied
func (gtx *GuardedTransaction) SetGasLimit(baseGasLimit uint64) error {
	err := gtx.checkMutable("gas limit")
	if err != nil {
		return err
	}

	gasLimit, err := addGuardianSurcharge(baseGasLimit)
	if err != nil {
		return err
	}

	gtx.tx.GasLimit = gasLimit
	return nil
}

// SetData changes the data field
func (gtx *GuardedTransaction) SetData(data []byte) error {
	err := gtx.checkMutable("data")
	if err != nil {
		return err
	}

	gtx.tx.Data = copyBytes(data)
	return nil
}

// SetChainID changes the chain identifier
func (gtx *GuardedTransaction) SetChainID(chainID string) error {
	err := gtx.checkMutable("chain ID")
	if err != nil {
		return err
	}
	if len(chainID) == 0 {
		return ErrEmptyChainID
	}

	gtx.tx.ChainID = []byte(chainID)
	return nil
}

// SetGuardianAddress changes the guardian address
func (gtx *GuardedTransaction) SetGuardianAddress(guardian []byte) error {
	err := gtx.checkMutable("guardian")
	if err != nil {
		return err
	}
	err = checkGuardianAddress(guardian)
	if err != nil {
		return err
	}

	gtx.tx.GuardianAddr = copyBytes(guardian)
	return nil
}

// SetSignWithHash toggles the hash signing option bit, the guarded bit is always kept
func (gtx *GuardedTransaction) SetSignWithHash(signWithHash bool) error {
	err := gtx.checkMutable("options")
	if err != nil {
		return err
	}

	options := core.TxOptionGuarded
	if signWithHash {
		options |= core.TxOptionSignedWithHash
	}

	gtx.tx.Options = options
	return nil
}

// ApplyGuardianSignature attaches the guardian signature and moves the transaction to StateGuardianSigned
func (gtx *GuardedTransaction) ApplyGuardianSignature(signature []byte) error {
	err := gtx.checkTransition(StateGuardianSigned)
	if err != nil {
		return err
	}
	if len(signature) == 0 {
		return fmt.Errorf("%w for guardian", ErrEmptySignature)
	}

	gtx.tx.GuardianSignature = copyBytes(signature)
	gtx.state = StateGuardianSigned
	return nil
}

// ApplySignature attaches the owner signature and moves the transaction to StateOwnerSigned
func (gtx *GuardedTransaction) ApplySignature(signature []byte) error {
	err := gtx.checkTransition(StateOwnerSigned)
	if err != nil {
		return err
	}
	if len(signature) == 0 {
		return fmt.Errorf("%w for owner", ErrEmptySignature)
	}

	gtx.tx.Signature = copyBytes(signature)
	gtx.state = StateOwnerSigned
	return nil
}

// MarkSubmitted records the hash reported by the network and moves the transaction to StateSubmitted
func (gtx *GuardedTransaction) MarkSubmitted(txHash string) error {
	err := gtx.checkTransition(StateSubmitted)
	if err != nil {
		return err
	}
	if len(txHash) == 0 {
		return ErrEmptyTxHash
	}

	gtx.txHash = txHash
	gtx.state = StateSubmitted
	return nil
}

func (gtx *GuardedTransaction) checkMutable(field string) error {
	if gtx.state != StateBuilt {
		return fmt.Errorf("%w: %s in state %s", ErrFrozenFieldMutation, field, gtx.state)
	}

	return nil
}

func (gtx *GuardedTransaction) checkTransition(next State) error {
	if !gtx.state.CanTransitionTo(next) {
		return fmt.Errorf("%w from %s to %s", ErrInvalidStateTransition, gtx.state, next)
	}

	return nil
}

func copyBytes(buff []byte) []byte {
	if len(buff) == 0 {
		return nil
	}

	result := make([]byte, len(buff))
	copy(result, buff)

	return result
}
