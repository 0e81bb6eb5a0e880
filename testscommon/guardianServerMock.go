package testscommon

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/api"
	"github.com/multiversx/mx-chain-guarded-tx-go/data/transaction"
)

const signMultipleTransactionsPath = "/guardian/sign-multiple-transactions"

func init() {
	gin.SetMode(gin.TestMode)
}

// GuardianServerMock is a trusted co-signer service serving the sign-multiple-transactions route
type GuardianServerMock struct {
	Code         string
	Serializer   transaction.SigningSerializer
	SignCalled   func(message []byte) ([]byte, error)
	HandleCalled func(request *api.SignMultipleTransactionsRequest) (int, *api.SignMultipleTransactionsResponse)

	mut      sync.Mutex
	requests []*api.SignMultipleTransactionsRequest
	server   *httptest.Server
}

// Start starts the server and returns its URL
func (mock *GuardianServerMock) Start() string {
	ws := gin.New()
	ws.POST(signMultipleTransactionsPath, mock.signMultipleTransactions)
	mock.server = httptest.NewServer(ws)

	return mock.server.URL
}

// Close stops the server
func (mock *GuardianServerMock) Close() {
	if mock.server != nil {
		mock.server.Close()
	}
}

// Requests returns the requests received so far
func (mock *GuardianServerMock) Requests() []*api.SignMultipleTransactionsRequest {
	mock.mut.Lock()
	defer mock.mut.Unlock()

	requests := make([]*api.SignMultipleTransactionsRequest, len(mock.requests))
	copy(requests, mock.requests)

	return requests
}

func (mock *GuardianServerMock) signMultipleTransactions(c *gin.Context) {
	request := &api.SignMultipleTransactionsRequest{}
	err := c.ShouldBindJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.SignMultipleTransactionsResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	mock.mut.Lock()
	mock.requests = append(mock.requests, request)
	mock.mut.Unlock()

	if mock.HandleCalled != nil {
		status, response := mock.HandleCalled(request)
		c.JSON(status, response)
		return
	}

	if request.Code != mock.Code {
		c.JSON(http.StatusBadRequest, api.SignMultipleTransactionsResponse{Error: "invalid code", Code: "bad_request"})
		return
	}

	signed := make([]*coreTx.FrontendTransaction, 0, len(request.Transactions))
	for _, ftx := range request.Transactions {
		payload, errPayload := mock.Serializer.ComputeFrontendDataForGuardianSigning(ftx)
		if errPayload != nil {
			c.JSON(http.StatusBadRequest, api.SignMultipleTransactionsResponse{Error: errPayload.Error(), Code: "bad_request"})
			return
		}

		signature, errSign := mock.SignCalled(payload)
		if errSign != nil {
			c.JSON(http.StatusInternalServerError, api.SignMultipleTransactionsResponse{Error: errSign.Error(), Code: "internal_issue"})
			return
		}

		signedTx := *ftx
		signedTx.GuardianSignature = hex.EncodeToString(signature)
		signed = append(signed, &signedTx)
	}

	c.JSON(http.StatusOK, api.SignMultipleTransactionsResponse{
		Data: api.SignMultipleTransactionsData{Transactions: signed},
		Code: "successful",
	})
}
