package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/hashing/keccak"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/config"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/otp"
	ownerSigning "github.com/multiversx/mx-chain-guarded-tx-go/crypto/signing"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/guardian"
	"github.com/multiversx/mx-chain-guarded-tx-go/network"
	"github.com/multiversx/mx-chain-guarded-tx-go/ntp"
	"github.com/multiversx/mx-chain-guarded-tx-go/process/guardedtx"
	"github.com/multiversx/mx-chain-guarded-tx-go/process/txbuilder"
	"github.com/multiversx/mx-chain-guarded-tx-go/statusHandler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli"
)

var (
	errEmptyOTPSecret = errors.New("empty OTP secret, set the " + otpSecretEnvVariable + " environment variable")
	errInvalidAmount  = errors.New("invalid amount")
)

func send(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	otpSecret := os.Getenv(otpSecretEnvVariable)
	if len(otpSecret) == 0 {
		return errEmptyOTPSecret
	}

	value, err := parseAmount(c.String(amount.Name))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	timeSource, err := createTimeSource(cfg.NTP)
	if err != nil {
		return err
	}
	defer func() {
		_ = timeSource.Close()
	}()

	registry := prometheus.NewRegistry()
	statusHandlerInstance, err := createStatusHandler(cfg.Metrics, registry)
	if err != nil {
		return err
	}
	defer saveMetrics(cfg.Metrics, registry)

	converter, err := pubkeyConverter.NewBech32PubkeyConverter(core.AddressLen, cfg.General.AddressHrp)
	if err != nil {
		return err
	}

	proxyHTTPClient, err := network.NewHTTPClientWrapper(network.ArgsHTTPClientWrapper{
		Client: &http.Client{Timeout: time.Duration(cfg.Proxy.RequestTimeoutInSeconds) * time.Second},
		URL:    cfg.Proxy.URL,
	})
	if err != nil {
		return err
	}
	proxy, err := network.NewProxyClient(network.ArgsProxyClient{
		HTTPClient:      proxyHTTPClient,
		PubkeyConverter: converter,
	})
	if err != nil {
		return err
	}

	secretKey, err := loadOwnerKey(c)
	if err != nil {
		return err
	}
	ownerSigner, err := ownerSigning.NewEd25519OwnerSigner(secretKey)
	if err != nil {
		return err
	}

	otpHandler, err := otp.NewTotpGenerator(otp.ArgsTotpGenerator{
		PeriodInSeconds: cfg.OTP.PeriodInSeconds,
		Digits:          cfg.OTP.Digits,
		Algorithm:       cfg.OTP.Algorithm,
	})
	if err != nil {
		return err
	}

	serializer, err := transaction.NewSigningSerializer(transaction.ArgsSigningSerializer{
		PubkeyConverter:   converter,
		SigningMarshaller: &marshal.JsonMarshalizer{},
		SigningHasher:     keccak.NewKeccak(),
		TxMarshaller:      &marshal.GogoProtoMarshalizer{},
		TxHasher:          blake2b.NewBlake2b(),
	})
	if err != nil {
		return err
	}

	sigVerifier, err := guardedtx.NewGuardedTxSigVerifier(guardedtx.GuardedTxSigVerifierArgs{
		SigVerifier: &singlesig.Ed25519Signer{},
		KeyGen:      signing.NewKeyGenerator(ed25519.NewEd25519()),
		Serializer:  serializer,
	})
	if err != nil {
		return err
	}

	providerFactory, err := guardian.NewProviderFactory(guardian.ArgsProviderFactory{
		GuardianDataProvider: proxy,
		PubkeyConverter:      converter,
		HTTPClient:           &http.Client{Timeout: time.Duration(cfg.Guardian.RequestTimeoutInSeconds) * time.Second},
		Marshaller:           &marshal.JsonMarshalizer{},
		Serializer:           serializer,
		SigVerifier:          sigVerifier,
		StatusHandler:        statusHandlerInstance,
		Services:             cfg.Guardian.Services,
		OTPValidator:         otpHandler,
		OTPSecret:            otpSecret,
		TimeSource:           timeSource,
	})
	if err != nil {
		return err
	}

	builder, err := txbuilder.NewTxBuilder(txbuilder.ArgsTxBuilder{
		NetworkProvider:      proxy,
		GuardianDataProvider: proxy,
		PubkeyConverter:      converter,
		SignWithHash:         cfg.General.SignWithHash,
	})
	if err != nil {
		return err
	}

	driver, err := guardedtx.NewGuardedTxDriver(guardedtx.ArgsGuardedTxDriver{
		ProviderFactory: providerFactory,
		OwnerSigner:     ownerSigner,
		OTPGenerator:    otpHandler,
		OTPSecret:       otpSecret,
		TimeSource:      timeSource,
		SigVerifier:     sigVerifier,
		Serializer:      serializer,
		Broadcaster:     proxy,
		StatusHandler:   statusHandlerInstance,
	})
	if err != nil {
		return err
	}

	receiverAddress := ownerSigner.Address()
	if len(c.String(receiver.Name)) > 0 {
		receiverAddress, err = converter.Decode(c.String(receiver.Name))
		if err != nil {
			return fmt.Errorf("%w for receiver: %s", common.ErrInvalidAddress, err.Error())
		}
	}

	gtx, err := builder.CreateGuardedTransfer(ctx, txbuilder.ArgsGuardedTransfer{
		Sender:   ownerSigner.Address(),
		Receiver: receiverAddress,
		Value:    value,
		Data:     []byte(c.String(data.Name)),
		GasLimit: c.Uint64(gasLimit.Name),
		GasPrice: c.Uint64(gasPrice.Name),
	})
	if err != nil {
		return err
	}

	hashes, err := driver.CoSignAndSubmit(ctx, []*transaction.GuardedTransaction{gtx})
	if err != nil {
		return err
	}

	ftx, err := serializer.ToFrontendTransaction(gtx)
	if err != nil {
		return err
	}
	if c.Bool(dump.Name) {
		fmt.Println(spew.Sdump(ftx))
	}
	if len(c.String(outputFile.Name)) > 0 {
		err = core.SaveJsonFile(ftx, c.String(outputFile.Name))
		if err != nil {
			return err
		}
	}

	for _, hash := range hashes {
		fmt.Println(hash)
	}

	return nil
}

// parseAmount converts a decimal EGLD amount into its denominated integer value
func parseAmount(amountString string) (*big.Int, error) {
	amountDecimal, err := decimal.NewFromString(amountString)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidAmount, err.Error())
	}

	denominated := amountDecimal.Shift(core.EGLDDenomination)
	if denominated.IsNegative() {
		return nil, fmt.Errorf("%w: negative value %s", errInvalidAmount, amountString)
	}
	if !denominated.IsInteger() {
		return nil, fmt.Errorf("%w: more than %d decimals in %s", errInvalidAmount, core.EGLDDenomination, amountString)
	}

	return denominated.BigInt(), nil
}

func createTimeSource(cfg config.NTPConfig) (common.SyncTimer, error) {
	if !cfg.Enabled {
		return ntp.NewLocalTime(), nil
	}

	syncer, err := ntp.NewSyncTime(cfg, nil)
	if err != nil {
		return nil, err
	}
	syncer.StartSyncingTime()
	log.Debug("NTP clock offset", "offset", syncer.ClockOffset())

	return syncer, nil
}

func createStatusHandler(cfg config.MetricsConfig, registerer prometheus.Registerer) (common.StatusHandler, error) {
	if !cfg.Enabled {
		return statusHandler.NewDisabledStatusHandler(), nil
	}

	handler, err := statusHandler.NewPrometheusStatusHandler(registerer)
	if err != nil {
		return nil, err
	}

	return handler, nil
}

func saveMetrics(cfg config.MetricsConfig, gatherer prometheus.Gatherer) {
	if !cfg.Enabled || len(cfg.TextfilePath) == 0 {
		return
	}

	err := statusHandler.SaveMetricsToFile(cfg.TextfilePath, gatherer)
	if err != nil {
		log.Warn("could not save the metrics", "file", cfg.TextfilePath, "error", err)
	}
}
