package core

// UnVersionedAppString represents the default app version that indicate that the binary wasn't build by setting
// the appVersion flag
const UnVersionedAppString = "undefined"

// AddressLen is the length in bytes of an account address (the ed25519 public key)
const AddressLen = 32

// DefaultAddressHrp is the human-readable part used when encoding addresses as bech32
const DefaultAddressHrp = "erd"

// EGLDDenomination is the number of decimals of the native asset
const EGLDDenomination = 18

// GuardedTxVersion is the minimum transaction version able to carry a guardian
const GuardedTxVersion = uint32(2)

// TxOptionSignedWithHash is the options bit signaling that the signatures were computed over the keccak hash of the
// signing payload
const TxOptionSignedWithHash = uint32(1)

// TxOptionGuarded is the options bit signaling that the transaction carries a guardian signature
const TxOptionGuarded = uint32(1 << 1)

// ExtraGasLimitForGuardedTx is the gas surcharge paid for the guardian signature verification
const ExtraGasLimitForGuardedTx = uint64(50000)

// DefaultOTPPeriodInSeconds is the default TOTP time-step
const DefaultOTPPeriodInSeconds = 30

// DefaultOTPDigits is the default number of digits of a TOTP code
const DefaultOTPDigits = 6

// ReturnCodeSuccess is the code returned by the REST APIs when a request is successful
const ReturnCodeSuccess = "successful"

// MetricGuardianRequests is the metric counting guardian co-signing requests, labeled by outcome
const MetricGuardianRequests = "guarded_tx_guardian_requests"

// MetricGuardianRequestDuration is the metric recording the guardian co-signing latency
const MetricGuardianRequestDuration = "guarded_tx_guardian_request_duration_seconds"

// MetricOwnerSignatures is the metric counting the owner signatures produced
const MetricOwnerSignatures = "guarded_tx_owner_signatures"

// MetricBroadcasts is the metric counting the broadcast attempts, labeled by outcome
const MetricBroadcasts = "guarded_tx_broadcasts"

// OutcomeSuccess labels a successful operation
const OutcomeSuccess = "success"

// OutcomeInvalidOtp labels a guardian request rejected because of the code
const OutcomeInvalidOtp = "invalid_otp"

// OutcomeFailure labels any other failed operation
const OutcomeFailure = "failure"
