package keys

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"golang.org/x/crypto/scrypt"
)

const (
	keystoreVersion       = 4
	keystoreKindSecretKey = "secretKey"
	keystoreKindMnemonic  = "mnemonic"
	keystoreCipher        = "aes-128-ctr"
	keystoreKdf           = "scrypt"

	scryptN     = 4096
	scryptR     = 8
	scryptP     = 1
	scryptDKLen = 32
	saltLen     = 32
	ivLen       = 16
)

// Keystore is the password protected wallet file format
type Keystore struct {
	Version int            `json:"version"`
	Kind    string         `json:"kind"`
	ID      string         `json:"id"`
	Address string         `json:"address,omitempty"`
	Bech32  string         `json:"bech32,omitempty"`
	Crypto  KeystoreCrypto `json:"crypto"`
}

// KeystoreCrypto holds the encrypted payload and the parameters needed to decrypt it
type KeystoreCrypto struct {
	Ciphertext   string               `json:"ciphertext"`
	CipherParams KeystoreCipherParams `json:"cipherparams"`
	Cipher       string               `json:"cipher"`
	Kdf          string               `json:"kdf"`
	KdfParams    KeystoreKdfParams    `json:"kdfparams"`
	Mac          string               `json:"mac"`
}

// KeystoreCipherParams holds the cipher initialization vector
type KeystoreCipherParams struct {
	IV string `json:"iv"`
}

// KeystoreKdfParams holds the scrypt parameters
type KeystoreKdfParams struct {
	DkLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
}

// LoadFromKeystore decrypts the keystore file and returns the 32 bytes ed25519 seed. Mnemonic keystores are derived
// at the provided address index of the first account
func LoadFromKeystore(path string, password string, addressIndex uint32) ([]byte, error) {
	keystore := &Keystore{}
	err := core.LoadJsonFile(keystore, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeystore, err.Error())
	}

	return DecryptKeystore(keystore, password, addressIndex)
}

// DecryptKeystore returns the 32 bytes ed25519 seed protected by the keystore
func DecryptKeystore(keystore *Keystore, password string, addressIndex uint32) ([]byte, error) {
	if keystore == nil {
		return nil, ErrInvalidKeystore
	}

	plaintext, err := decryptPayload(keystore.Crypto, password)
	if err != nil {
		return nil, err
	}

	switch keystore.Kind {
	case keystoreKindSecretKey, "":
		return extractSeed(plaintext)
	case keystoreKindMnemonic:
		return LoadFromMnemonic(string(plaintext), 0, addressIndex)
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnsupportedKeystore, keystore.Kind)
	}
}

func decryptPayload(params KeystoreCrypto, password string) ([]byte, error) {
	if params.Cipher != keystoreCipher {
		return nil, fmt.Errorf("%w: cipher %s", ErrUnsupportedKeystore, params.Cipher)
	}
	if params.Kdf != keystoreKdf {
		return nil, fmt.Errorf("%w: kdf %s", ErrUnsupportedKeystore, params.Kdf)
	}

	salt, err := hex.DecodeString(params.KdfParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %s", ErrInvalidKeystore, err.Error())
	}
	iv, err := hex.DecodeString(params.CipherParams.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv", ErrInvalidKeystore)
	}
	ciphertext, err := hex.DecodeString(params.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %s", ErrInvalidKeystore, err.Error())
	}
	mac, err := hex.DecodeString(params.Mac)
	if err != nil {
		return nil, fmt.Errorf("%w: mac: %s", ErrInvalidKeystore, err.Error())
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.KdfParams.N, params.KdfParams.R, params.KdfParams.P, params.KdfParams.DkLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeystore, err.Error())
	}
	if len(derivedKey) != scryptDKLen {
		return nil, fmt.Errorf("%w: dklen %d", ErrUnsupportedKeystore, len(derivedKey))
	}

	encryptionKey, macKey := derivedKey[:16], derivedKey[16:]
	if !hmac.Equal(mac, computeMac(macKey, ciphertext)) {
		return nil, ErrWrongPassword
	}

	return applyCTR(encryptionKey, iv, ciphertext)
}

// EncryptSecretKey protects the ed25519 secret key (seed followed by public key) with the provided password
func EncryptSecretKey(secretKey []byte, bech32Address string, password string) (*Keystore, error) {
	if len(secretKey) != secretAndPublicLen {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSecretKey, len(secretKey))
	}

	salt, err := randomBytes(saltLen)
	if err != nil {
		return nil, err
	}
	iv, err := randomBytes(ivLen)
	if err != nil {
		return nil, err
	}
	derivedKey, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptDKLen)
	if err != nil {
		return nil, err
	}

	encryptionKey, macKey := derivedKey[:16], derivedKey[16:]
	ciphertext, err := applyCTR(encryptionKey, iv, secretKey)
	if err != nil {
		return nil, err
	}

	return &Keystore{
		Version: keystoreVersion,
		Kind:    keystoreKindSecretKey,
		ID:      uuid.New().String(),
		Address: hex.EncodeToString(secretKey[secretKeyLen:]),
		Bech32:  bech32Address,
		Crypto: KeystoreCrypto{
			Ciphertext:   hex.EncodeToString(ciphertext),
			CipherParams: KeystoreCipherParams{IV: hex.EncodeToString(iv)},
			Cipher:       keystoreCipher,
			Kdf:          keystoreKdf,
			KdfParams: KeystoreKdfParams{
				DkLen: scryptDKLen,
				Salt:  hex.EncodeToString(salt),
				N:     scryptN,
				R:     scryptR,
				P:     scryptP,
			},
			Mac: hex.EncodeToString(computeMac(macKey, ciphertext)),
		},
	}, nil
}

func applyCTR(key []byte, iv []byte, input []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	output := make([]byte, len(input))
	cipher.NewCTR(block, iv).XORKeyStream(output, input)

	return output, nil
}

func computeMac(key []byte, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write(ciphertext)

	return mac.Sum(nil)
}

func randomBytes(length int) ([]byte, error) {
	buff := make([]byte, length)
	_, err := rand.Read(buff)
	if err != nil {
		return nil, err
	}

	return buff, nil
}
