package api

import "github.com/multiversx/mx-chain-core-go/data/transaction"

// SignMultipleTransactionsRequest is the body sent to a trusted co-signer service
type SignMultipleTransactionsRequest struct {
	Code         string                             `json:"code"`
	Transactions []*transaction.FrontendTransaction `json:"transactions"`
}

// SignMultipleTransactionsData holds the co-signed transactions returned by a trusted co-signer service
type SignMultipleTransactionsData struct {
	Transactions []*transaction.FrontendTransaction `json:"transactions"`
}

// SignMultipleTransactionsResponse is the answer of a trusted co-signer service
type SignMultipleTransactionsResponse struct {
	Data  SignMultipleTransactionsData `json:"data"`
	Error string                       `json:"error"`
	Code  string                       `json:"code"`
}
