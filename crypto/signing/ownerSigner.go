package signing

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("crypto/signing")

// ArgsOwnerSigner holds the arguments needed to create an owner signer
type ArgsOwnerSigner struct {
	KeyGenerator crypto.KeyGenerator
	SingleSigner crypto.SingleSigner
	PrivateKey   []byte
}

type ownerSigner struct {
	keyGenerator crypto.KeyGenerator
	singleSigner crypto.SingleSigner
	privateKey   crypto.PrivateKey
	address      []byte
}

// NewOwnerSigner creates the component holding the account owner key. The private key is the 32 bytes ed25519 seed
func NewOwnerSigner(args ArgsOwnerSigner) (*ownerSigner, error) {
	if check.IfNil(args.KeyGenerator) {
		return nil, ErrNilKeyGenerator
	}
	if check.IfNil(args.SingleSigner) {
		return nil, ErrNilSingleSigner
	}
	if len(args.PrivateKey) == 0 {
		return nil, fmt.Errorf("%w: empty private key", ErrSigningKeyUnavailable)
	}

	privateKey, err := args.KeyGenerator.PrivateKeyFromByteArray(args.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSigningKeyUnavailable, err.Error())
	}

	address, err := privateKey.GeneratePublic().ToByteArray()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSigningKeyUnavailable, err.Error())
	}

	return &ownerSigner{
		keyGenerator: args.KeyGenerator,
		singleSigner: args.SingleSigner,
		privateKey:   privateKey,
		address:      address,
	}, nil
}

// NewEd25519OwnerSigner creates an owner signer backed by the ed25519 suite
func NewEd25519OwnerSigner(privateKey []byte) (*ownerSigner, error) {
	return NewOwnerSigner(ArgsOwnerSigner{
		KeyGenerator: signing.NewKeyGenerator(ed25519.NewEd25519()),
		SingleSigner: &singlesig.Ed25519Signer{},
		PrivateKey:   privateKey,
	})
}

// Sign signs the provided message with the owner private key
func (signer *ownerSigner) Sign(message []byte) ([]byte, error) {
	signature, err := signer.singleSigner.Sign(signer.privateKey, message)
	if err != nil {
		log.Debug("ownerSigner.Sign", "error", err)
		return nil, fmt.Errorf("%w: %s", ErrSigningKeyUnavailable, err.Error())
	}

	return signature, nil
}

// Address returns the owner address bytes, which is the owner public key
func (signer *ownerSigner) Address() []byte {
	address := make([]byte, len(signer.address))
	copy(address, signer.address)

	return address
}

// Verify checks the signature of the message against the provided public key bytes
func (signer *ownerSigner) Verify(publicKey []byte, message []byte, signature []byte) error {
	pk, err := signer.keyGenerator.PublicKeyFromByteArray(publicKey)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPublicKey, err.Error())
	}

	return signer.singleSigner.Verify(pk, message, signature)
}

// IsInterfaceNil returns true if there is no value under the interface
func (signer *ownerSigner) IsInterfaceNil() bool {
	return signer == nil
}
