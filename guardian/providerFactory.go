package guardian

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/config"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/keys"
	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/signing"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/network"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
)

// ArgsProviderFactory holds the arguments needed to create a guardian provider factory
type ArgsProviderFactory struct {
	GuardianDataProvider process.GuardianDataProvider
	PubkeyConverter      common.PubkeyConverter
	HTTPClient           common.HTTPClient
	Marshaller           transaction.Marshaller
	Serializer           transaction.SigningSerializer
	SigVerifier          process.GuardianSigVerifier
	StatusHandler        common.StatusHandler
	Services             []config.GuardianServiceConfig
	OTPValidator         process.OTPValidator
	OTPSecret            string
	TimeSource           common.SyncTimer
}

type providerFactory struct {
	guardianDataProvider process.GuardianDataProvider
	pubkeyConverter      common.PubkeyConverter
	httpClient           common.HTTPClient
	marshaller           transaction.Marshaller
	serializer           transaction.SigningSerializer
	sigVerifier          process.GuardianSigVerifier
	statusHandler        common.StatusHandler
	services             map[string]config.GuardianServiceConfig
	otpValidator         process.OTPValidator
	otpSecret            string
	timeSource           common.SyncTimer
}

// NewProviderFactory creates the component selecting the guardian provider of an account from its on-chain
// guardian settings
func NewProviderFactory(args ArgsProviderFactory) (*providerFactory, error) {
	if check.IfNil(args.GuardianDataProvider) {
		return nil, process.ErrNilGuardianDataProvider
	}
	if check.IfNil(args.PubkeyConverter) {
		return nil, process.ErrNilPubkeyConverter
	}
	if args.HTTPClient == nil {
		return nil, common.ErrNilHTTPClient
	}
	if check.IfNil(args.Marshaller) {
		return nil, transaction.ErrNilMarshaller
	}
	if check.IfNil(args.Serializer) {
		return nil, process.ErrNilSigningSerializer
	}
	if check.IfNil(args.SigVerifier) {
		return nil, process.ErrNilGuardianSigVerifier
	}
	if check.IfNil(args.StatusHandler) {
		return nil, process.ErrNilStatusHandler
	}

	services := make(map[string]config.GuardianServiceConfig, len(args.Services))
	for _, service := range args.Services {
		services[service.ServiceUID] = service
	}

	return &providerFactory{
		guardianDataProvider: args.GuardianDataProvider,
		pubkeyConverter:      args.PubkeyConverter,
		httpClient:           args.HTTPClient,
		marshaller:           args.Marshaller,
		serializer:           args.Serializer,
		sigVerifier:          args.SigVerifier,
		statusHandler:        args.StatusHandler,
		services:             services,
		otpValidator:         args.OTPValidator,
		otpSecret:            args.OTPSecret,
		timeSource:           args.TimeSource,
	}, nil
}

// CreateProvider returns the provider able to co-sign for the active guardian of the provided account
func (factory *providerFactory) CreateProvider(ctx context.Context, ownerAddress []byte) (process.GuardianProvider, error) {
	guardianData, err := factory.guardianDataProvider.GetGuardianData(ctx, ownerAddress)
	if err != nil {
		return nil, err
	}
	if guardianData == nil || !guardianData.Guarded || guardianData.ActiveGuardian == nil {
		return nil, ErrAccountNotGuarded
	}

	activeGuardian := guardianData.ActiveGuardian
	guardianAddress, err := factory.pubkeyConverter.Decode(activeGuardian.Address)
	if err != nil {
		return nil, fmt.Errorf("%w for active guardian %s: %s", common.ErrInvalidAddress, activeGuardian.Address, err.Error())
	}

	service, found := factory.services[activeGuardian.ServiceUID]
	if !found {
		return nil, fmt.Errorf("%w: service UID %s", ErrUnsupportedGuardianType, activeGuardian.ServiceUID)
	}

	log.Debug("providerFactory.CreateProvider",
		"guardian", activeGuardian.Address,
		"service UID", service.ServiceUID,
		"type", service.Type,
		"activation epoch", activeGuardian.ActivationEpoch)

	switch service.Type {
	case config.GuardianTypeTCS:
		return factory.createTCSProvider(service, guardianAddress)
	case config.GuardianTypeLocal:
		return factory.createLocalProvider(service, guardianAddress)
	default:
		return nil, fmt.Errorf("%w: %s for service UID %s", ErrUnsupportedGuardianType, service.Type, service.ServiceUID)
	}
}

func (factory *providerFactory) createTCSProvider(service config.GuardianServiceConfig, guardianAddress []byte) (process.GuardianProvider, error) {
	httpClientWrapper, err := network.NewHTTPClientWrapper(network.ArgsHTTPClientWrapper{
		Client: factory.httpClient,
		URL:    service.URL,
	})
	if err != nil {
		return nil, err
	}

	provider, err := NewTCSProvider(ArgsTCSProvider{
		HTTPClient:      httpClientWrapper,
		Marshaller:      factory.marshaller,
		Serializer:      factory.serializer,
		SigVerifier:     factory.sigVerifier,
		StatusHandler:   factory.statusHandler,
		GuardianAddress: guardianAddress,
	})
	if err != nil {
		return nil, err
	}

	return provider, nil
}

func (factory *providerFactory) createLocalProvider(service config.GuardianServiceConfig, guardianAddress []byte) (process.GuardianProvider, error) {
	secretKey, _, err := keys.LoadFromPemFile(service.KeyFile, 0)
	if err != nil {
		return nil, err
	}

	guardianSigner, err := signing.NewEd25519OwnerSigner(secretKey)
	if err != nil {
		return nil, err
	}
	if !isSameAddress(guardianSigner.Address(), guardianAddress) {
		return nil, fmt.Errorf("%w: key file %s does not hold the active guardian key", ErrGuardianMismatch, service.KeyFile)
	}

	provider, err := NewLocalProvider(ArgsLocalProvider{
		GuardianSigner: guardianSigner,
		OTPValidator:   factory.otpValidator,
		OTPSecret:      factory.otpSecret,
		TimeSource:     factory.timeSource,
		Serializer:     factory.serializer,
		SigVerifier:    factory.sigVerifier,
		StatusHandler:  factory.statusHandler,
	})
	if err != nil {
		return nil, err
	}

	return provider, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (factory *providerFactory) IsInterfaceNil() bool {
	return factory == nil
}
