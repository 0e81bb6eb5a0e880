package statusHandler

import "time"

type disabledStatusHandler struct{}

// NewDisabledStatusHandler creates a status handler that records nothing
func NewDisabledStatusHandler() *disabledStatusHandler {
	return &disabledStatusHandler{}
}

// GuardianRequestDone does nothing
func (dsh *disabledStatusHandler) GuardianRequestDone(_ string, _ time.Duration) {
}

// OwnerSignatureDone does nothing
func (dsh *disabledStatusHandler) OwnerSignatureDone() {
}

// BroadcastDone does nothing
func (dsh *disabledStatusHandler) BroadcastDone(_ string) {
}

// IsInterfaceNil returns true if there is no value under the interface
func (dsh *disabledStatusHandler) IsInterfaceNil() bool {
	return dsh == nil
}
