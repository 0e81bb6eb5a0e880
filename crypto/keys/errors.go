package keys

import "errors"

// ErrInvalidMnemonic signals that the provided mnemonic is not a valid BIP39 sentence
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// ErrInvalidPemFile signals that the PEM file does not hold a valid wallet key
var ErrInvalidPemFile = errors.New("invalid PEM file")

// ErrInvalidKeystore signals that the keystore file is malformed
var ErrInvalidKeystore = errors.New("invalid keystore")

// ErrUnsupportedKeystore signals that the keystore uses a cipher, kdf or kind this tool cannot handle
var ErrUnsupportedKeystore = errors.New("unsupported keystore")

// ErrWrongPassword signals that the keystore MAC does not match, usually because of a wrong password
var ErrWrongPassword = errors.New("wrong keystore password")

// ErrInvalidSecretKey signals that the provided secret key has an unexpected length
var ErrInvalidSecretKey = errors.New("invalid secret key")
