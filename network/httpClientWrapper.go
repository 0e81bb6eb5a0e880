package network

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/multiversx/mx-chain-guarded-tx-go/common"
	"github.com/pkg/errors"
)

const (
	httpUserAgentKey   = "User-Agent"
	httpUserAgent      = "MultiversX Guarded Tx Client / 1.0.0"
	httpContentTypeKey = "Content-Type"
	httpContentType    = "application/json"

	defaultMaxResponseBodySize = 10 * 1024 * 1024
)

// ArgsHTTPClientWrapper holds the arguments needed to create an http client wrapper
type ArgsHTTPClientWrapper struct {
	Client common.HTTPClient
	URL    string
	// MaxResponseBodySize caps the number of bytes read from a response body, 0 selects the 10 MiB default
	MaxResponseBodySize int64
}

type httpClientWrapper struct {
	client              common.HTTPClient
	url                 string
	maxResponseBodySize int64
}

// NewHTTPClientWrapper creates the component able to send GET and POST requests to a REST API
func NewHTTPClientWrapper(args ArgsHTTPClientWrapper) (*httpClientWrapper, error) {
	if args.Client == nil {
		return nil, common.ErrNilHTTPClient
	}
	if len(args.URL) == 0 {
		return nil, common.ErrEmptyURL
	}
	if args.MaxResponseBodySize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxResponseBodySize, args.MaxResponseBodySize)
	}

	maxResponseBodySize := args.MaxResponseBodySize
	if maxResponseBodySize == 0 {
		maxResponseBodySize = defaultMaxResponseBodySize
	}

	return &httpClientWrapper{
		client:              args.Client,
		url:                 strings.TrimSuffix(args.URL, "/"),
		maxResponseBodySize: maxResponseBodySize,
	}, nil
}

// GetHTTP does a GET request on the provided endpoint and returns the body and the status code
func (wrapper *httpClientWrapper) GetHTTP(ctx context.Context, endpoint string) ([]byte, int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, wrapper.endpointURL(endpoint), nil)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return wrapper.do(request)
}

// PostHTTP does a POST request with the provided json body and returns the response body and the status code
func (wrapper *httpClientWrapper) PostHTTP(ctx context.Context, endpoint string, data []byte) ([]byte, int, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, wrapper.endpointURL(endpoint), bytes.NewReader(data))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	request.Header.Set(httpContentTypeKey, httpContentType)

	return wrapper.do(request)
}

func (wrapper *httpClientWrapper) endpointURL(endpoint string) string {
	return fmt.Sprintf("%s/%s", wrapper.url, strings.TrimPrefix(endpoint, "/"))
}

func (wrapper *httpClientWrapper) do(request *http.Request) ([]byte, int, error) {
	request.Header.Set(httpUserAgentKey, httpUserAgent)

	response, err := wrapper.client.Do(request)
	if err != nil {
		return nil, http.StatusServiceUnavailable, errors.Wrapf(common.ErrTransportFailure, "%s %s: %s",
			request.Method, request.URL.Path, err.Error())
	}
	defer func() {
		errClose := response.Body.Close()
		if errClose != nil {
			log.Trace("httpClientWrapper: cannot close response body", "error", errClose.Error())
		}
	}()

	body, err := io.ReadAll(io.LimitReader(response.Body, wrapper.maxResponseBodySize+1))
	if err != nil {
		return nil, response.StatusCode, errors.Wrapf(common.ErrTransportFailure, "%s %s: reading body: %s",
			request.Method, request.URL.Path, err.Error())
	}
	if int64(len(body)) > wrapper.maxResponseBodySize {
		return nil, response.StatusCode, errors.Wrapf(common.ErrTransportFailure, "%s %s: %s, limit %d bytes",
			request.Method, request.URL.Path, ErrResponseTooLarge.Error(), wrapper.maxResponseBodySize)
	}

	return body, response.StatusCode, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (wrapper *httpClientWrapper) IsInterfaceNil() bool {
	return wrapper == nil
}
