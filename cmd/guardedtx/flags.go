package main

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	otpSecretEnvVariable      = "GUARDED_TX_OTP_SECRET"
	walletPasswordEnvVariable = "GUARDED_TX_WALLET_PASSWORD"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"gateway, guardian services, OTP and NTP settings.",
		Value: "./config/config.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,guardian:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the guardian package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// receiver defines the bech32 address of the transfer destination
	receiver = cli.StringFlag{
		Name:  "receiver",
		Usage: "The bech32 `address` receiving the funds. Defaults to the sender address.",
	}
	// amount defines the transferred value, expressed in EGLD
	amount = cli.StringFlag{
		Name:  "amount",
		Usage: "The `value` to transfer, in EGLD. Up to 18 decimals are accepted.",
		Value: "0",
	}
	// data defines the transaction data field
	data = cli.StringFlag{
		Name:  "data",
		Usage: "The `data` field of the transaction.",
	}
	// gasLimit defines the base gas limit, before the guarded transaction surcharge
	gasLimit = cli.Uint64Flag{
		Name:  "gas-limit",
		Usage: "The base gas `limit`. The guarded transaction surcharge is added on top. 0 means the network minimum.",
	}
	// gasPrice defines the gas price
	gasPrice = cli.Uint64Flag{
		Name:  "gas-price",
		Usage: "The gas `price`. 0 means the network minimum.",
	}
	// mnemonicFile defines the file holding the owner mnemonic
	mnemonicFile = cli.StringFlag{
		Name:  "mnemonic-file",
		Usage: "The `" + filePathPlaceholder + "` for the file holding the owner 24 words mnemonic.",
	}
	// pemFile defines the owner PEM wallet
	pemFile = cli.StringFlag{
		Name:  "pem",
		Usage: "The `" + filePathPlaceholder + "` for the owner PEM wallet.",
	}
	// keystoreFile defines the owner JSON keystore
	keystoreFile = cli.StringFlag{
		Name: "keystore",
		Usage: "The `" + filePathPlaceholder + "` for the owner JSON keystore. The password is read from the " +
			walletPasswordEnvVariable + " environment variable.",
	}
	// accountIndex defines the account index used with a mnemonic
	accountIndex = cli.UintFlag{
		Name:  "account-index",
		Usage: "The account `index` used when deriving the key from a mnemonic.",
	}
	// addressIndex defines the address index used with a mnemonic, a PEM or a mnemonic keystore
	addressIndex = cli.UintFlag{
		Name:  "address-index",
		Usage: "The address `index` used when deriving the key from a mnemonic, or the key index inside a PEM file.",
	}
	// dump defines the flag printing the final transaction
	dump = cli.BoolFlag{
		Name:  "dump",
		Usage: "Boolean option for printing the final transaction structure.",
	}
	// outputFile defines where a produced JSON document is written
	outputFile = cli.StringFlag{
		Name:  "output",
		Usage: "The `" + filePathPlaceholder + "` of the JSON file to write.",
	}
)

func keySourceFlags() []cli.Flag {
	return []cli.Flag{
		mnemonicFile,
		pemFile,
		keystoreFile,
		accountIndex,
		addressIndex,
	}
}

func sendFlags() []cli.Flag {
	flags := []cli.Flag{
		receiver,
		amount,
		data,
		gasLimit,
		gasPrice,
		dump,
		outputFile,
	}

	return append(flags, keySourceFlags()...)
}

func newKeystoreFlags() []cli.Flag {
	return append([]cli.Flag{outputFile}, keySourceFlags()...)
}
