package testscommon

import "net/http"

// HTTPClientStub -
type HTTPClientStub struct {
	DoCalled func(req *http.Request) (*http.Response, error)
}

// Do -
func (stub *HTTPClientStub) Do(req *http.Request) (*http.Response, error) {
	if stub.DoCalled != nil {
		return stub.DoCalled(req)
	}

	return nil, nil
}
