package transaction

import "errors"

// ErrFrozenFieldMutation signals an attempt to change a field already covered by a signature
var ErrFrozenFieldMutation = errors.New("frozen field mutation")

// ErrInvalidStateTransition signals that a co-signing phase was invoked out of order
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrNilValue signals that a nil transaction value has been provided
var ErrNilValue = errors.New("nil value")

// ErrNegativeValue signals that a negative transaction value has been provided
var ErrNegativeValue = errors.New("negative value")

// ErrInvalidAddress signals that an address with a wrong length has been provided
var ErrInvalidAddress = errors.New("invalid address")

// ErrEmptyChainID signals that an empty chain ID has been provided
var ErrEmptyChainID = errors.New("empty chain ID")

// ErrEmptyGuardianAddress signals that a guarded transaction without a guardian has been provided
var ErrEmptyGuardianAddress = errors.New("empty guardian address")

// ErrGasLimitOverflow signals that applying the guardian surcharge overflows the gas limit
var ErrGasLimitOverflow = errors.New("gas limit overflow")

// ErrEmptySignature signals that an empty signature has been provided
var ErrEmptySignature = errors.New("empty signature")

// ErrEmptyTxHash signals that an empty transaction hash has been provided
var ErrEmptyTxHash = errors.New("empty transaction hash")

// ErrMissingRequiredField signals that a field needed by the signing payload is not populated
var ErrMissingRequiredField = errors.New("missing required field")

// ErrNotGuardedTransaction signals that the transaction does not carry the guarded version, options or guardian
var ErrNotGuardedTransaction = errors.New("not a guarded transaction")

// ErrNilTransaction signals that a nil transaction has been provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrNilPubkeyConverter signals that a nil public key converter has been provided
var ErrNilPubkeyConverter = errors.New("nil public key converter")

// ErrNilMarshaller signals that a nil marshaller has been provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrInvalidValue signals that a value which is not a base 10 integer has been provided
var ErrInvalidValue = errors.New("invalid value")
