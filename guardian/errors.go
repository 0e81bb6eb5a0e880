package guardian

import "errors"

// ErrInvalidOtp signals that the guardian rejected the one-time code
var ErrInvalidOtp = errors.New("invalid one-time code")

// ErrGuardianMismatch signals that a transaction names a guardian other than the one able to co-sign it
var ErrGuardianMismatch = errors.New("guardian mismatch")

// ErrGuardianResponseMismatch signals that the guardian returned a different number of transactions than requested
var ErrGuardianResponseMismatch = errors.New("guardian response does not match the request")

// ErrUnsupportedGuardianType signals that no provider is configured for the account's guardian service
var ErrUnsupportedGuardianType = errors.New("unsupported guardian type")

// ErrAccountNotGuarded signals that the account has no active guardian
var ErrAccountNotGuarded = errors.New("account has no active guardian")

// ErrEmptyGuardianAddress signals that an empty guardian address has been provided
var ErrEmptyGuardianAddress = errors.New("empty guardian address")
