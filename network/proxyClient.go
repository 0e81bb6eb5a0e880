package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/multiversx/mx-chain-core-go/core/check"
	coreAPI "github.com/multiversx/mx-chain-core-go/data/api"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/multiversx/mx-chain-guarded-tx-go/core"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
)

const (
	networkConfigEndpoint   = "network/config"
	accountEndpoint         = "address/%s"
	guardianDataEndpoint    = "address/%s/guardian-data"
	sendTransactionEndpoint = "transaction/send"
)

var log = logger.GetOrCreate("network")

// ArgsProxyClient holds the arguments needed to create a gateway client
type ArgsProxyClient struct {
	HTTPClient      HTTPClientWrapper
	PubkeyConverter common.PubkeyConverter
}

type proxyClient struct {
	httpClient      HTTPClientWrapper
	pubkeyConverter common.PubkeyConverter
}

// NewProxyClient creates the client of the network gateway REST API
func NewProxyClient(args ArgsProxyClient) (*proxyClient, error) {
	if check.IfNil(args.HTTPClient) {
		return nil, common.ErrNilHTTPClient
	}
	if check.IfNil(args.PubkeyConverter) {
		return nil, common.ErrNilPubkeyConverter
	}

	return &proxyClient{
		httpClient:      args.HTTPClient,
		pubkeyConverter: args.PubkeyConverter,
	}, nil
}

// GetNetworkConfig returns the network parameters
func (pc *proxyClient) GetNetworkConfig(ctx context.Context) (*api.NetworkConfig, error) {
	response := struct {
		Config map[string]interface{} `json:"config"`
	}{}
	err := pc.get(ctx, networkConfigEndpoint, &response)
	if err != nil {
		return nil, err
	}
	if response.Config == nil {
		return nil, errors.Wrapf(common.ErrTransportFailure, "%s: %s", networkConfigEndpoint, ErrNilResponse.Error())
	}

	networkConfig := &api.NetworkConfig{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           networkConfig,
	})
	if err != nil {
		return nil, err
	}

	err = decoder.Decode(response.Config)
	if err != nil {
		return nil, errors.Wrapf(common.ErrTransportFailure, "%s: decoding config: %s", networkConfigEndpoint, err.Error())
	}

	log.Debug("proxyClient.GetNetworkConfig", "chain ID", networkConfig.ChainID,
		"min gas price", networkConfig.MinGasPrice, "min gas limit", networkConfig.MinGasLimit)

	return networkConfig, nil
}

// GetAccount returns the on-chain state of the provided address
func (pc *proxyClient) GetAccount(ctx context.Context, address []byte) (*api.Account, error) {
	bech32Address, err := pc.encodeAddress(address)
	if err != nil {
		return nil, err
	}

	response := struct {
		Account *api.Account `json:"account"`
	}{}
	endpoint := fmt.Sprintf(accountEndpoint, bech32Address)
	err = pc.get(ctx, endpoint, &response)
	if err != nil {
		return nil, err
	}
	if response.Account == nil {
		return nil, errors.Wrapf(common.ErrTransportFailure, "%s: %s", endpoint, ErrNilResponse.Error())
	}

	return response.Account, nil
}

// GetGuardianData returns the guardian settings of the provided address
func (pc *proxyClient) GetGuardianData(ctx context.Context, address []byte) (*coreAPI.GuardianData, error) {
	bech32Address, err := pc.encodeAddress(address)
	if err != nil {
		return nil, err
	}

	response := struct {
		GuardianData *coreAPI.GuardianData `json:"guardianData"`
	}{}
	endpoint := fmt.Sprintf(guardianDataEndpoint, bech32Address)
	err = pc.get(ctx, endpoint, &response)
	if err != nil {
		return nil, err
	}
	if response.GuardianData == nil {
		return nil, errors.Wrapf(common.ErrTransportFailure, "%s: %s", endpoint, ErrNilResponse.Error())
	}

	return response.GuardianData, nil
}

// SendTransaction broadcasts the signed transaction and returns the hash assigned by the network
func (pc *proxyClient) SendTransaction(ctx context.Context, tx *coreTx.FrontendTransaction) (string, error) {
	if tx == nil {
		return "", ErrNilTransaction
	}

	buff, err := json.Marshal(tx)
	if err != nil {
		return "", err
	}

	body, statusCode, err := pc.httpClient.PostHTTP(ctx, sendTransactionEndpoint, buff)
	if err != nil {
		return "", err
	}

	response := struct {
		TxHash string `json:"txHash"`
	}{}
	err = decodeResponse(sendTransactionEndpoint, body, statusCode, &response)
	if err != nil {
		return "", err
	}
	if len(response.TxHash) == 0 {
		return "", errors.Wrapf(common.ErrTransportFailure, "%s: %s", sendTransactionEndpoint, ErrEmptyTxHash.Error())
	}

	return response.TxHash, nil
}

func (pc *proxyClient) get(ctx context.Context, endpoint string, data interface{}) error {
	body, statusCode, err := pc.httpClient.GetHTTP(ctx, endpoint)
	if err != nil {
		return err
	}

	return decodeResponse(endpoint, body, statusCode, data)
}

func (pc *proxyClient) encodeAddress(address []byte) (string, error) {
	if len(address) != core.AddressLen {
		return "", fmt.Errorf("%w: length %d", common.ErrInvalidAddress, len(address))
	}

	bech32Address, err := pc.pubkeyConverter.Encode(address)
	if err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrInvalidAddress, err.Error())
	}

	return bech32Address, nil
}

func decodeResponse(endpoint string, body []byte, statusCode int, data interface{}) error {
	response := &api.GenericAPIResponse{}
	err := json.Unmarshal(body, response)
	if err != nil {
		return errors.Wrapf(common.ErrTransportFailure, "%s: status %d: decoding response: %s", endpoint, statusCode, err.Error())
	}
	if statusCode != http.StatusOK {
		return errors.Wrapf(common.ErrTransportFailure, "%s: status %d: %s", endpoint, statusCode, response.Error)
	}
	if len(response.Error) > 0 {
		return errors.Wrapf(common.ErrTransportFailure, "%s: %s", endpoint, response.Error)
	}
	if len(response.Data) == 0 {
		return errors.Wrapf(common.ErrTransportFailure, "%s: %s", endpoint, ErrNilResponse.Error())
	}

	err = json.Unmarshal(response.Data, data)
	if err != nil {
		return errors.Wrapf(common.ErrTransportFailure, "%s: decoding data: %s", endpoint, err.Error())
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (pc *proxyClient) IsInterfaceNil() bool {
	return pc == nil
}
