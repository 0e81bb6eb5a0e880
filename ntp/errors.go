package ntp

import "errors"

// ErrEmptyHosts signals that no NTP host has been configured
var ErrEmptyHosts = errors.New("empty NTP hosts")

// ErrNilQueryHandler signals that a nil query function has been provided
var ErrNilQueryHandler = errors.New("nil NTP query handler")
