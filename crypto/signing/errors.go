package signing

import "errors"

// ErrSigningKeyUnavailable signals that the owner private key is missing or cannot be used
var ErrSigningKeyUnavailable = errors.New("signing key unavailable")

// ErrNilKeyGenerator signals that a nil key generator has been provided
var ErrNilKeyGenerator = errors.New("nil key generator")

// ErrNilSingleSigner signals that a nil single signer has been provided
var ErrNilSingleSigner = errors.New("nil single signer")

// ErrInvalidPublicKey signals that the provided public key bytes are not valid
var ErrInvalidPublicKey = errors.New("invalid public key")
