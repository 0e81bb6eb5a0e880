package testscommon

// SignerStub -
type SignerStub struct {
	SignCalled    func(message []byte) ([]byte, error)
	AddressCalled func() []byte
}

// Sign -
func (stub *SignerStub) Sign(message []byte) ([]byte, error) {
	if stub.SignCalled != nil {
		return stub.SignCalled(message)
	}

	return make([]byte, 64), nil
}

// Address -
func (stub *SignerStub) Address() []byte {
	if stub.AddressCalled != nil {
		return stub.AddressCalled()
	}

	return make([]byte, 32)
}

// IsInterfaceNil -
func (stub *SignerStub) IsInterfaceNil() bool {
	return stub == nil
}
