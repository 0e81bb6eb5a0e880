package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/process"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("process/txbuilder")

// ArgsTxBuilder holds the arguments needed to create a guarded transactions builder
type ArgsTxBuilder struct {
	NetworkProvider      process.NetworkProvider
	GuardianDataProvider process.GuardianDataProvider
	PubkeyConverter      common.PubkeyConverter
	SignWithHash         bool
}

// ArgsGuardedTransfer holds the user provided part of a guarded value transfer. A zero gas limit or gas price is
// replaced by the network minimum, an empty guardian address by the account's active guardian
type ArgsGuardedTransfer struct {
	Sender          []byte
	Receiver        []byte
	Value           *big.Int
	Data            []byte
	GasLimit        uint64
	GasPrice        uint64
	GuardianAddress []byte
}

type txBuilder struct {
	networkProvider      process.NetworkProvider
	guardianDataProvider process.GuardianDataProvider
	pubkeyConverter      common.PubkeyConverter
	signWithHash         bool
}

// NewTxBuilder creates the component building guarded transactions from the network state
func NewTxBuilder(args ArgsTxBuilder) (*txBuilder, error) {
	if check.IfNil(args.NetworkProvider) {
		return nil, process.ErrNilNetworkProvider
	}
	if check.IfNil(args.GuardianDataProvider) {
		return nil, process.ErrNilGuardianDataProvider
	}
	if check.IfNil(args.PubkeyConverter) {
		return nil, process.ErrNilPubkeyConverter
	}

	return &txBuilder{
		networkProvider:      args.NetworkProvider,
		guardianDataProvider: args.GuardianDataProvider,
		pubkeyConverter:      args.PubkeyConverter,
		signWithHash:         args.SignWithHash,
	}, nil
}

// CreateGuardedTransfer builds a Built guarded transaction using the sender's current nonce and the network
// chain ID and gas parameters
func (builder *txBuilder) CreateGuardedTransfer(ctx context.Context, args ArgsGuardedTransfer) (*transaction.GuardedTransaction, error) {
	if args.Value == nil {
		return nil, process.ErrNilValue
	}

	networkConfig, err := builder.networkProvider.GetNetworkConfig(ctx)
	if err != nil {
		return nil, err
	}
	if networkConfig.MinTransactionVersion > core.GuardedTxVersion {
		return nil, fmt.Errorf("%w: network requires version %d", process.ErrUnsupportedTxVersion, networkConfig.MinTransactionVersion)
	}
	if networkConfig.ExtraGasLimitGuardedTx != 0 && networkConfig.ExtraGasLimitGuardedTx != core.ExtraGasLimitForGuardedTx {
		log.Warn("txBuilder: the network reports another guarded transaction surcharge",
			"network", networkConfig.ExtraGasLimitGuardedTx,
			"local", core.ExtraGasLimitForGuardedTx)
	}

	gasLimit, err := computeGasLimit(args, networkConfig.MinGasLimit, networkConfig.GasPerDataByte)
	if err != nil {
		return nil, err
	}
	gasPrice, err := computeGasPrice(args, networkConfig.MinGasPrice)
	if err != nil {
		return nil, err
	}

	guardianAddress := args.GuardianAddress
	if len(guardianAddress) == 0 {
		guardianAddress, err = builder.activeGuardian(ctx, args.Sender)
		if err != nil {
			return nil, err
		}
	}

	account, err := builder.networkProvider.GetAccount(ctx, args.Sender)
	if err != nil {
		return nil, err
	}

	gtx, err := transaction.NewGuardedTransaction(transaction.ArgsGuardedTransaction{
		Nonce:           account.Nonce,
		Value:           args.Value,
		Receiver:        args.Receiver,
		Sender:          args.Sender,
		GasPrice:        gasPrice,
		GasLimit:        gasLimit,
		Data:            args.Data,
		ChainID:         networkConfig.ChainID,
		GuardianAddress: guardianAddress,
		SignWithHash:    builder.signWithHash,
	})
	if err != nil {
		return nil, err
	}

	builder.checkBalance(gtx, account.Balance)

	log.Debug("txBuilder.CreateGuardedTransfer",
		"nonce", gtx.Nonce(),
		"value", gtx.Value().String(),
		"gas limit", gtx.GasLimit(),
		"gas price", gtx.GasPrice(),
		"chain ID", gtx.ChainID())

	return gtx, nil
}

func computeGasLimit(args ArgsGuardedTransfer, minGasLimit uint64, gasPerDataByte uint64) (uint64, error) {
	minimum := minGasLimit + uint64(len(args.Data))*gasPerDataByte
	if args.GasLimit == 0 {
		return minimum, nil
	}
	if args.GasLimit < minimum {
		return 0, fmt.Errorf("%w: provided %d, minimum %d", process.ErrInsufficientGasLimit, args.GasLimit, minimum)
	}

	return args.GasLimit, nil
}

func computeGasPrice(args ArgsGuardedTransfer, minGasPrice uint64) (uint64, error) {
	if args.GasPrice == 0 {
		return minGasPrice, nil
	}
	if args.GasPrice < minGasPrice {
		return 0, fmt.Errorf("%w: provided %d, minimum %d", process.ErrInsufficientGasPrice, args.GasPrice, minGasPrice)
	}

	return args.GasPrice, nil
}

func (builder *txBuilder) activeGuardian(ctx context.Context, address []byte) ([]byte, error) {
	guardianData, err := builder.guardianDataProvider.GetGuardianData(ctx, address)
	if err != nil {
		return nil, err
	}
	if guardianData == nil || guardianData.ActiveGuardian == nil || !guardianData.Guarded {
		return nil, fmt.Errorf("%w: no active guardian", transaction.ErrNotGuardedTransaction)
	}

	guardianAddress, err := builder.pubkeyConverter.Decode(guardianData.ActiveGuardian.Address)
	if err != nil {
		return nil, fmt.Errorf("%w for active guardian: %s", common.ErrInvalidAddress, err.Error())
	}

	return guardianAddress, nil
}

// checkBalance only warns, the network is the one rejecting an underfunded transaction
func (builder *txBuilder) checkBalance(gtx *transaction.GuardedTransaction, balance string) {
	available, ok := big.NewInt(0).SetString(balance, 10)
	if !ok {
		log.Warn("txBuilder: cannot parse the account balance", "error", process.ErrInvalidBalance, "balance", balance)
		return
	}

	fee := big.NewInt(0).Mul(big.NewInt(0).SetUint64(gtx.GasLimit()), big.NewInt(0).SetUint64(gtx.GasPrice()))
	required := big.NewInt(0).Add(gtx.Value(), fee)
	if required.Cmp(available) > 0 {
		log.Warn("txBuilder: the account balance does not cover the value and the maximum fee",
			"balance", available.String(),
			"required", required.String())
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (builder *txBuilder) IsInterfaceNil() bool {
	return builder == nil
}
