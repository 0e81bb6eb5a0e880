package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options]
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = core.UnVersionedAppString

var log = logger.GetOrCreate("main")

func main() {
	_ = logger.SetDisplayByteSlice(logger.ToHexShort)

	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "Guarded transactions CLI App"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This tool builds, co-signs with the account guardian and broadcasts guarded transactions"
	app.Flags = []cli.Flag{
		configurationFile,
		logLevel,
	}
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}
	app.Before = func(c *cli.Context) error {
		return logger.SetLogLevel(c.GlobalString(logLevel.Name))
	}
	app.Commands = []cli.Command{
		{
			Name:   "send",
			Usage:  "builds a guarded value transfer, gets the guardian and the owner signatures and broadcasts it",
			Flags:  sendFlags(),
			Action: send,
		},
		{
			Name:   "new-mnemonic",
			Usage:  "prints a new random 24 words mnemonic",
			Action: newMnemonic,
		},
		{
			Name:   "new-keystore",
			Usage:  "protects the selected owner key with a password and writes it as a JSON keystore",
			Flags:  newKeystoreFlags(),
			Action: newKeystore,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
