package otp

import "errors"

// ErrInvalidSecret signals that the shared secret is empty or is not a valid base32 string
var ErrInvalidSecret = errors.New("invalid OTP secret")

// ErrInvalidPeriod signals that a zero time-step has been provided
var ErrInvalidPeriod = errors.New("invalid OTP period")

// ErrInvalidDigits signals that an unsupported number of digits has been provided
var ErrInvalidDigits = errors.New("invalid OTP digits")

// ErrUnsupportedAlgorithm signals that the provided HMAC algorithm is not supported
var ErrUnsupportedAlgorithm = errors.New("unsupported OTP algorithm")

// ErrInvalidTimestamp signals that a timestamp before the unix epoch has been provided
var ErrInvalidTimestamp = errors.New("invalid OTP timestamp")

// ErrInvalidCode signals that the provided code does not match the expected one
var ErrInvalidCode = errors.New("invalid OTP code")
