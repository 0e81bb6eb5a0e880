package common

import "errors"

// ErrTransportFailure signals that a remote API could not be reached or answered with an error
var ErrTransportFailure = errors.New("transport failure")

// ErrNilHTTPClient signals that a nil http client has been provided
var ErrNilHTTPClient = errors.New("nil http client")

// ErrNilPubkeyConverter signals that a nil public key converter has been provided
var ErrNilPubkeyConverter = errors.New("nil public key converter")

// ErrInvalidAddress signals that an invalid address has been provided
var ErrInvalidAddress = errors.New("invalid address")

// ErrEmptyURL signals that an empty URL has been provided
var ErrEmptyURL = errors.New("empty URL")
