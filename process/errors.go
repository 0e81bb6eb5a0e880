package process

import "errors"

// ErrNilTransaction signals that a nil transaction has been provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrEmptyTransactionsBatch signals that an empty batch of transactions has been provided
var ErrEmptyTransactionsBatch = errors.New("empty transactions batch")

// ErrInvalidState signals that a transaction is not in the state required by the operation
var ErrInvalidState = errors.New("invalid transaction state")

// ErrInvalidGuardianSignature signals that the guardian signature does not verify against the guardian public key
var ErrInvalidGuardianSignature = errors.New("invalid guardian signature")

// ErrInvalidOwnerSignature signals that the owner signature does not verify against the sender public key
var ErrInvalidOwnerSignature = errors.New("invalid owner signature")

// ErrNilGuardianPublicKey signals that the transaction does not carry a guardian public key
var ErrNilGuardianPublicKey = errors.New("nil guardian public key")

// ErrSenderMismatch signals that the owner key does not match the transaction sender
var ErrSenderMismatch = errors.New("owner address does not match the transaction sender")

// ErrEmptyOTPSecret signals that an empty OTP secret has been provided
var ErrEmptyOTPSecret = errors.New("empty OTP secret")

// ErrNilSingleSigner signals that a nil single signer has been provided
var ErrNilSingleSigner = errors.New("nil single signer")

// ErrNilKeyGen signals that a nil key generator has been provided
var ErrNilKeyGen = errors.New("nil key generator")

// ErrNilSigningSerializer signals that a nil signing serializer has been provided
var ErrNilSigningSerializer = errors.New("nil signing serializer")

// ErrNilGuardianProvider signals that a nil guardian provider has been provided
var ErrNilGuardianProvider = errors.New("nil guardian provider")

// ErrNilGuardianProviderFactory signals that a nil guardian provider factory has been provided
var ErrNilGuardianProviderFactory = errors.New("nil guardian provider factory")

// ErrNilGuardianSigVerifier signals that a nil guardian signature verifier has been provided
var ErrNilGuardianSigVerifier = errors.New("nil guardian signature verifier")

// ErrNilSigner signals that a nil signer has been provided
var ErrNilSigner = errors.New("nil signer")

// ErrNilOTPGenerator signals that a nil OTP generator has been provided
var ErrNilOTPGenerator = errors.New("nil OTP generator")

// ErrNilOTPValidator signals that a nil OTP validator has been provided
var ErrNilOTPValidator = errors.New("nil OTP validator")

// ErrNilSyncTimer signals that a nil sync timer has been provided
var ErrNilSyncTimer = errors.New("nil sync timer")

// ErrNilBroadcaster signals that a nil broadcaster has been provided
var ErrNilBroadcaster = errors.New("nil broadcaster")

// ErrNilStatusHandler signals that a nil status handler has been provided
var ErrNilStatusHandler = errors.New("nil status handler")

// ErrNilNetworkProvider signals that a nil network provider has been provided
var ErrNilNetworkProvider = errors.New("nil network provider")

// ErrNilGuardianDataProvider signals that a nil guardian data provider has been provided
var ErrNilGuardianDataProvider = errors.New("nil guardian data provider")

// ErrNilPubkeyConverter signals that a nil public key converter has been provided
var ErrNilPubkeyConverter = errors.New("nil public key converter")

// ErrNilValue signals that a nil value has been provided
var ErrNilValue = errors.New("nil value")

// ErrInsufficientGasLimit signals that the provided gas limit is below the network minimum
var ErrInsufficientGasLimit = errors.New("insufficient gas limit")

// ErrInsufficientGasPrice signals that the provided gas price is below the network minimum
var ErrInsufficientGasPrice = errors.New("insufficient gas price")

// ErrUnsupportedTxVersion signals that the network requires a transaction version this tool cannot produce
var ErrUnsupportedTxVersion = errors.New("unsupported transaction version")

// ErrInvalidBalance signals that the account balance reported by the network cannot be parsed
var ErrInvalidBalance = errors.New("invalid balance")

// ErrDuplicatedTransaction signals that the same transaction appears more than once in a batch
var ErrDuplicatedTransaction = errors.New("duplicated transaction in batch")
