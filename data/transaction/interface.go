package transaction

import coreTx "github.com/multiversx/mx-chain-core-go/data/transaction"

// PubkeyConverter can convert public key bytes to and from a human-readable form
type PubkeyConverter interface {
	Encode(pkBytes []byte) (string, error)
	Decode(humanReadable string) ([]byte, error)
	IsInterfaceNil() bool
}

// Marshaller is able to encode an object to its byte slice representation
type Marshaller interface {
	Marshal(obj interface{}) ([]byte, error)
	Unmarshal(obj interface{}, buff []byte) error
	IsInterfaceNil() bool
}

// Hasher computes the digest of the provided string
type Hasher interface {
	Compute(string) []byte
	Size() int
	IsInterfaceNil() bool
}

// SigningSerializer produces the canonical payloads signed by the guardian and the owner
type SigningSerializer interface {
	ComputeDataForGuardianSigning(gtx *GuardedTransaction) ([]byte, error)
	ComputeDataForSigning(gtx *GuardedTransaction) ([]byte, error)
	ComputeFrontendDataForGuardianSigning(ftx *coreTx.FrontendTransaction) ([]byte, error)
	ToFrontendTransaction(gtx *GuardedTransaction) (*coreTx.FrontendTransaction, error)
	ComputeHash(gtx *GuardedTransaction) ([]byte, error)
	IsInterfaceNil() bool
}
