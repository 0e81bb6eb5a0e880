package testscommon

import "time"

// StatusHandlerStub -
type StatusHandlerStub struct {
	GuardianRequestDoneCalled func(outcome string, duration time.Duration)
	OwnerSignatureDoneCalled  func()
	BroadcastDoneCalled       func(outcome string)
}

// GuardianRequestDone -
func (stub *StatusHandlerStub) GuardianRequestDone(outcome string, duration time.Duration) {
	if stub.GuardianRequestDoneCalled != nil {
		stub.GuardianRequestDoneCalled(outcome, duration)
	}
}

// OwnerSignatureDone -
func (stub *StatusHandlerStub) OwnerSignatureDone() {
	if stub.OwnerSignatureDoneCalled != nil {
		stub.OwnerSignatureDoneCalled()
	}
}

// BroadcastDone -
func (stub *StatusHandlerStub) BroadcastDone(outcome string) {
	if stub.BroadcastDoneCalled != nil {
		stub.BroadcastDoneCalled(outcome)
	}
}

// IsInterfaceNil -
func (stub *StatusHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
