package common

import (
	"net/http"
	"time"
)

// HTTPClient is the interface satisfied by *http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SyncTimer defines the time source used when deriving time-based codes
type SyncTimer interface {
	CurrentTime() time.Time
	ClockOffset() time.Duration
	Close() error
	IsInterfaceNil() bool
}

// StatusHandler records the outcome of the co-signing flow steps
type StatusHandler interface {
	GuardianRequestDone(outcome string, duration time.Duration)
	OwnerSignatureDone()
	BroadcastDone(outcome string)
	IsInterfaceNil() bool
}

// PubkeyConverter can convert public key bytes to and from a human-readable form
type PubkeyConverter interface {
	Encode(pkBytes []byte) (string, error)
	Decode(humanReadable string) ([]byte, error)
	IsInterfaceNil() bool
}
