package ntp

import "time"

// localTime is the SyncTimer used when NTP syncing is disabled
type localTime struct{}

// NewLocalTime creates a time source backed by the local clock
func NewLocalTime() *localTime {
	return &localTime{}
}

// CurrentTime returns the local time
func (lt *localTime) CurrentTime() time.Time {
	return time.Now()
}

// ClockOffset returns 0
func (lt *localTime) ClockOffset() time.Duration {
	return 0
}

// Close returns nil
func (lt *localTime) Close() error {
	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (lt *localTime) IsInterfaceNil() bool {
	return lt == nil
}
