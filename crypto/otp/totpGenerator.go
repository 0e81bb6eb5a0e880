package otp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	minDigits = 6
	maxDigits = 8

	// validationSkewSteps is the number of adjacent time-steps accepted when validating a code
	validationSkewSteps = 1
)

var log = logger.GetOrCreate("crypto/otp")

// ArgsTotpGenerator holds the policy of the generated codes
type ArgsTotpGenerator struct {
	PeriodInSeconds uint
	Digits          int
	Algorithm       string
}

type totpGenerator struct {
	period    uint
	digits    otp.Digits
	algorithm otp.Algorithm
}

// NewTotpGenerator creates a RFC 6238 time-based one-time password generator
func NewTotpGenerator(args ArgsTotpGenerator) (*totpGenerator, error) {
	if args.PeriodInSeconds == 0 {
		return nil, ErrInvalidPeriod
	}
	if args.Digits < minDigits || args.Digits > maxDigits {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigits, args.Digits)
	}
	algorithm, err := parseAlgorithm(args.Algorithm)
	if err != nil {
		return nil, err
	}

	log.Debug("NewTotpGenerator", "period", args.PeriodInSeconds, "digits", args.Digits, "algorithm", algorithm.String())

	return &totpGenerator{
		period:    args.PeriodInSeconds,
		digits:    otp.Digits(args.Digits),
		algorithm: algorithm,
	}, nil
}

func parseAlgorithm(algorithm string) (otp.Algorithm, error) {
	switch strings.ToUpper(algorithm) {
	case "SHA1":
		return otp.AlgorithmSHA1, nil
	case "SHA256":
		return otp.AlgorithmSHA256, nil
	case "SHA512":
		return otp.AlgorithmSHA512, nil
	default:
		return otp.AlgorithmSHA1, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}
}

// GenerateCode returns the code of the time-step containing the provided timestamp. The secret is a base32 string,
// case-insensitive, with optional padding and spaces
func (tg *totpGenerator) GenerateCode(secret string, timestamp time.Time) (string, error) {
	normalized, err := normalizeSecret(secret)
	if err != nil {
		return "", err
	}
	if timestamp.Unix() < 0 {
		return "", ErrInvalidTimestamp
	}

	code, err := totp.GenerateCodeCustom(normalized, timestamp, tg.validateOpts(0))
	if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
		return "", ErrInvalidSecret
	}
	if err != nil {
		return "", err
	}

	return code, nil
}

// ValidateCode checks the code against the time-step of the provided timestamp and its direct neighbours
func (tg *totpGenerator) ValidateCode(secret string, code string, timestamp time.Time) error {
	normalized, err := normalizeSecret(secret)
	if err != nil {
		return err
	}
	if timestamp.Unix() < 0 {
		return ErrInvalidTimestamp
	}

	isValid, err := totp.ValidateCustom(code, normalized, timestamp, tg.validateOpts(validationSkewSteps))
	if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
		return ErrInvalidSecret
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCode, err.Error())
	}
	if !isValid {
		return ErrInvalidCode
	}

	return nil
}

func (tg *totpGenerator) validateOpts(skew uint) totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    tg.period,
		Skew:      skew,
		Digits:    tg.digits,
		Algorithm: tg.algorithm,
	}
}

func normalizeSecret(secret string) (string, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
	normalized = strings.TrimRight(normalized, "=")
	if len(normalized) == 0 {
		return "", ErrInvalidSecret
	}

	return normalized, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (tg *totpGenerator) IsInterfaceNil() bool {
	return tg == nil
}
