package testscommon

import "time"

// OTPGeneratorStub -
type OTPGeneratorStub struct {
	GenerateCodeCalled func(secret string, timestamp time.Time) (string, error)
	ValidateCodeCalled func(secret string, code string, timestamp time.Time) error
}

// GenerateCode -
func (stub *OTPGeneratorStub) GenerateCode(secret string, timestamp time.Time) (string, error) {
	if stub.GenerateCodeCalled != nil {
		return stub.GenerateCodeCalled(secret, timestamp)
	}

	return "123456", nil
}

// ValidateCode -
func (stub *OTPGeneratorStub) ValidateCode(secret string, code string, timestamp time.Time) error {
	if stub.ValidateCodeCalled != nil {
		return stub.ValidateCodeCalled(secret, code, timestamp)
	}

	return nil
}

// IsInterfaceNil -
func (stub *OTPGeneratorStub) IsInterfaceNil() bool {
	return stub == nil
}
