package network

import "errors"

// ErrNilResponse signals that the remote API answered without a payload
var ErrNilResponse = errors.New("nil response")

// ErrNilTransaction signals that a nil transaction has been provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrEmptyTxHash signals that the broadcaster did not report a transaction hash
var ErrEmptyTxHash = errors.New("empty transaction hash")

// ErrResponseTooLarge signals that a response body exceeded the configured size limit
var ErrResponseTooLarge = errors.New("response body too large")

// ErrInvalidMaxResponseBodySize signals that a negative response body size limit has been provided
var ErrInvalidMaxResponseBodySize = errors.New("invalid max response body size")
