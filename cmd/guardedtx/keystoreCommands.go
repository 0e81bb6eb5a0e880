package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-guarded-tx-go/config"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/keys"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/signing"
	"github.com/urfave/cli"
)

var errEmptyPassword = errors.New("empty keystore password, set the " + walletPasswordEnvVariable + " environment variable")

func newMnemonic(_ *cli.Context) error {
	mnemonic, err := keys.GenerateMnemonic()
	if err != nil {
		return err
	}

	fmt.Println(mnemonic)

	return nil
}

func newKeystore(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	password := os.Getenv(walletPasswordEnvVariable)
	if len(password) == 0 {
		return errEmptyPassword
	}

	secretKey, err := loadOwnerKey(c)
	if err != nil {
		return err
	}

	ownerSigner, err := signing.NewEd25519OwnerSigner(secretKey)
	if err != nil {
		return err
	}

	converter, err := pubkeyConverter.NewBech32PubkeyConverter(core.AddressLen, cfg.General.AddressHrp)
	if err != nil {
		return err
	}
	address, err := converter.Encode(ownerSigner.Address())
	if err != nil {
		return err
	}

	keystore, err := keys.EncryptSecretKey(append(secretKey, ownerSigner.Address()...), address, password)
	if err != nil {
		return err
	}

	outputPath := c.String(outputFile.Name)
	if len(outputPath) == 0 {
		outputPath = address + ".json"
	}

	err = core.SaveJsonFile(keystore, outputPath)
	if err != nil {
		return err
	}

	log.Info("keystore written", "address", address, "file", outputPath)

	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.GlobalString(configurationFile.Name)
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	err = config.SanityCheckConfig(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", "file", configPath)

	return cfg, nil
}
