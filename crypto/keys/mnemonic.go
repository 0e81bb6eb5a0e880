package keys

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	slip10Ed25519Curve = "ed25519 seed"
	hardenedOffset     = uint32(0x80000000)
	purpose            = uint32(44)
	coinType           = uint32(508)
	change             = uint32(0)
)

// LoadFromMnemonic derives the 32 bytes ed25519 seed of the wallet found at m/44'/508'/account'/0'/addressIndex'
func LoadFromMnemonic(mnemonic string, account uint32, addressIndex uint32) ([]byte, error) {
	normalized := strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(normalized) {
		return nil, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(normalized, "")
	path := []uint32{purpose, coinType, account, change, addressIndex}

	return deriveEd25519Key(seed, path), nil
}

// GenerateMnemonic creates a new random 24 words mnemonic
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}

// deriveEd25519Key follows SLIP-0010, ed25519 only supports hardened derivation
func deriveEd25519Key(seed []byte, path []uint32) []byte {
	key, chainCode := hmacSplit([]byte(slip10Ed25519Curve), seed)

	for _, index := range path {
		data := make([]byte, 0, 1+len(key)+4)
		data = append(data, 0)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)

		key, chainCode = hmacSplit(chainCode, data)
	}

	return key
}

func hmacSplit(key []byte, data []byte) ([]byte, []byte) {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(data)
	digest := mac.Sum(nil)

	return digest[:32], digest[32:]
}
