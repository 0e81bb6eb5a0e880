package cryptoMocks

import (
	"github.com/multiversx/mx-chain-crypto-go"
)

// KeyGenStub -
type KeyGenStub struct {
	GeneratePairCalled            func() (crypto.PrivateKey, crypto.PublicKey)
	PrivateKeyFromByteArrayCalled func(b []byte) (crypto.PrivateKey, error)
	PublicKeyFromByteArrayCalled  func(b []byte) (crypto.PublicKey, error)
	CheckPublicKeyValidCalled     func(b []byte) error
	SuiteCalled                   func() crypto.Suite
}

// GeneratePair -
func (stub *KeyGenStub) GeneratePair() (crypto.PrivateKey, crypto.PublicKey) {
	if stub.GeneratePairCalled != nil {
		return stub.GeneratePairCalled()
	}

	return nil, nil
}

// PrivateKeyFromByteArray -
func (stub *KeyGenStub) PrivateKeyFromByteArray(b []byte) (crypto.PrivateKey, error) {
	if stub.PrivateKeyFromByteArrayCalled != nil {
		return stub.PrivateKeyFromByteArrayCalled(b)
	}

	return nil, nil
}

// PublicKeyFromByteArray -
func (stub *KeyGenStub) PublicKeyFromByteArray(b []byte) (crypto.PublicKey, error) {
	if stub.PublicKeyFromByteArrayCalled != nil {
		return stub.PublicKeyFromByteArrayCalled(b)
	}

	return nil, nil
}

// CheckPublicKeyValid -
func (stub *KeyGenStub) CheckPublicKeyValid(b []byte) error {
	if stub.CheckPublicKeyValidCalled != nil {
		return stub.CheckPublicKeyValidCalled(b)
	}

	return nil
}

// Suite -
func (stub *KeyGenStub) Suite() crypto.Suite {
	if stub.SuiteCalled != nil {
		return stub.SuiteCalled()
	}

	return nil
}

// IsInterfaceNil -
func (stub *KeyGenStub) IsInterfaceNil() bool {
	return stub == nil
}
