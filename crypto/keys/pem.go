package keys

import (
	"encoding/hex"
	"fmt"

	mxCore "github.com/multiversx/mx-chain-core-go/core"
)

const (
	secretKeyLen       = 32
	secretAndPublicLen = 64
)

// LoadFromPemFile returns the 32 bytes ed25519 seed stored at the provided index of a wallet PEM file, together
// with the bech32 address written in the block header
func LoadFromPemFile(path string, index int) ([]byte, string, error) {
	hexKey, address, err := mxCore.LoadSkPkFromPemFile(path, index)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidPemFile, err.Error())
	}

	key, err := hex.DecodeString(string(hexKey))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidPemFile, err.Error())
	}

	seed, err := extractSeed(key)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidPemFile, err.Error())
	}

	return seed, address, nil
}

func extractSeed(key []byte) ([]byte, error) {
	switch len(key) {
	case secretKeyLen, secretAndPublicLen:
		seed := make([]byte, secretKeyLen)
		copy(seed, key[:secretKeyLen])
		return seed, nil
	default:
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSecretKey, len(key))
	}
}
