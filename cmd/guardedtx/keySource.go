package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/keys"
	"github.com/urfave/cli"
)

var errNoKeySource = errors.New("exactly one of --mnemonic-file, --pem and --keystore must be provided")

// loadOwnerKey returns the owner ed25519 seed from the key source selected by the flags
func loadOwnerKey(c *cli.Context) ([]byte, error) {
	mnemonicPath := c.String(mnemonicFile.Name)
	pemPath := c.String(pemFile.Name)
	keystorePath := c.String(keystoreFile.Name)
	index := uint32(c.Uint(addressIndex.Name))

	numSources := 0
	for _, path := range []string{mnemonicPath, pemPath, keystorePath} {
		if len(path) > 0 {
			numSources++
		}
	}
	if numSources != 1 {
		return nil, errNoKeySource
	}

	switch {
	case len(mnemonicPath) > 0:
		words, err := os.ReadFile(mnemonicPath)
		if err != nil {
			return nil, err
		}

		return keys.LoadFromMnemonic(string(words), uint32(c.Uint(accountIndex.Name)), index)
	case len(pemPath) > 0:
		secretKey, address, err := keys.LoadFromPemFile(pemPath, int(index))
		if err != nil {
			return nil, err
		}
		log.Debug("owner key loaded from PEM file", "address", address)

		return secretKey, nil
	default:
		if !core.FileExists(keystorePath) {
			return nil, fmt.Errorf("%w: %s not found", keys.ErrInvalidKeystore, keystorePath)
		}

		return keys.LoadFromKeystore(keystorePath, os.Getenv(walletPasswordEnvVariable), index)
	}
}
