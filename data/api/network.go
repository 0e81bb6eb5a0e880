package api

import "encoding/json"

// GenericAPIResponse is the envelope of every gateway and guardian service answer
type GenericAPIResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

// NetworkConfig holds the network parameters needed to build transactions
type NetworkConfig struct {
	ChainID                string `mapstructure:"erd_chain_id"`
	Denomination           int    `mapstructure:"erd_denomination"`
	GasPerDataByte         uint64 `mapstructure:"erd_gas_per_data_byte"`
	MinGasLimit            uint64 `mapstructure:"erd_min_gas_limit"`
	MinGasPrice            uint64 `mapstructure:"erd_min_gas_price"`
	MinTransactionVersion  uint32 `mapstructure:"erd_min_transaction_version"`
	NumShardsWithoutMeta   uint32 `mapstructure:"erd_num_shards_without_meta"`
	ExtraGasLimitGuardedTx uint64 `mapstructure:"erd_extra_gas_limit_guarded_tx"`
	RoundDurationMillis    int64  `mapstructure:"erd_round_duration"`
}

// Account holds the on-chain state of an account, as reported by the gateway
type Account struct {
	Address  string `json:"address"`
	Nonce    uint64 `json:"nonce"`
	Balance  string `json:"balance"`
	Username string `json:"username"`
}
