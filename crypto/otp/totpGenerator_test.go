package otp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-guarded-tx-go/crypto/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32 of the ASCII string "12345678901234567890", the RFC 6238 SHA1 seed
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func createMockArgsTotpGenerator() otp.ArgsTotpGenerator {
	return otp.ArgsTotpGenerator{
		PeriodInSeconds: 30,
		Digits:          6,
		Algorithm:       "SHA1",
	}
}

func createTotpGenerator(t *testing.T) otp.Generator {
	generator, err := otp.NewTotpGenerator(createMockArgsTotpGenerator())
	require.Nil(t, err)

	return generator
}

func TestNewTotpGenerator(t *testing.T) {
	t.Parallel()

	t.Run("zero period should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTotpGenerator()
		args.PeriodInSeconds = 0
		generator, err := otp.NewTotpGenerator(args)
		assert.Nil(t, generator)
		assert.Equal(t, otp.ErrInvalidPeriod, err)
	})
	t.Run("invalid digits should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTotpGenerator()
		args.Digits = 5
		generator, err := otp.NewTotpGenerator(args)
		assert.Nil(t, generator)
		assert.True(t, errors.Is(err, otp.ErrInvalidDigits))

		args.Digits = 9
		generator, err = otp.NewTotpGenerator(args)
		assert.Nil(t, generator)
		assert.True(t, errors.Is(err, otp.ErrInvalidDigits))
	})
	t.Run("unsupported algorithm should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTotpGenerator()
		args.Algorithm = "MD4"
		generator, err := otp.NewTotpGenerator(args)
		assert.Nil(t, generator)
		assert.True(t, errors.Is(err, otp.ErrUnsupportedAlgorithm))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsTotpGenerator()
		args.Algorithm = "sha256"
		generator, err := otp.NewTotpGenerator(args)
		assert.Nil(t, err)
		assert.False(t, generator.IsInterfaceNil())
	})
}

func TestTotpGenerator_GenerateCodeRFCVectors(t *testing.T) {
	t.Parallel()

	generator := createTotpGenerator(t)

	vectors := map[int64]string{
		59:         "287082",
		1111111109: "081804",
		1111111111: "050471",
		1234567890: "005924",
		2000000000: "279037",
	}
	for unixTime, expectedCode := range vectors {
		code, err := generator.GenerateCode(rfcSecret, time.Unix(unixTime, 0))
		require.Nil(t, err)
		assert.Equal(t, expectedCode, code, "unix time %d", unixTime)
	}
}

func TestTotpGenerator_GenerateCodeEightDigits(t *testing.T) {
	t.Parallel()

	args := createMockArgsTotpGenerator()
	args.Digits = 8
	generator, err := otp.NewTotpGenerator(args)
	require.Nil(t, err)

	code, err := generator.GenerateCode(rfcSecret, time.Unix(59, 0))
	require.Nil(t, err)
	assert.Equal(t, "94287082", code)
}

func TestTotpGenerator_GenerateCodeSecretNormalization(t *testing.T) {
	t.Parallel()

	generator := createTotpGenerator(t)
	timestamp := time.Unix(59, 0)

	secrets := []string{
		"gezdgnbvgy3tqojqgezdgnbvgy3tqojq",
		"GEZD GNBV GY3T QOJQ GEZD GNBV GY3T QOJQ",
		"GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ====",
	}
	for _, secret := range secrets {
		code, err := generator.GenerateCode(secret, timestamp)
		require.Nil(t, err, secret)
		assert.Equal(t, "287082", code, secret)
	}
}

func TestTotpGenerator_GenerateCodeInvalidInput(t *testing.T) {
	t.Parallel()

	generator := createTotpGenerator(t)

	code, err := generator.GenerateCode("", time.Unix(59, 0))
	assert.Empty(t, code)
	assert.Equal(t, otp.ErrInvalidSecret, err)

	code, err = generator.GenerateCode("   ", time.Unix(59, 0))
	assert.Empty(t, code)
	assert.Equal(t, otp.ErrInvalidSecret, err)

	code, err = generator.GenerateCode("not-base32!", time.Unix(59, 0))
	assert.Empty(t, code)
	assert.Equal(t, otp.ErrInvalidSecret, err)

	code, err = generator.GenerateCode(rfcSecret, time.Unix(-1, 0))
	assert.Empty(t, code)
	assert.Equal(t, otp.ErrInvalidTimestamp, err)
}

func TestTotpGenerator_GenerateCodeTimeSteps(t *testing.T) {
	t.Parallel()

	generator := createTotpGenerator(t)
	stepStart := time.Unix(1111111110, 0)

	first, err := generator.GenerateCode(rfcSecret, stepStart)
	require.Nil(t, err)
	sameStep, err := generator.GenerateCode(rfcSecret, stepStart.Add(29*time.Second))
	require.Nil(t, err)
	nextStep, err := generator.GenerateCode(rfcSecret, stepStart.Add(30*time.Second))
	require.Nil(t, err)

	assert.Equal(t, first, sameStep)
	assert.NotEqual(t, first, nextStep)
	assert.Len(t, first, 6)
}

func TestTotpGenerator_ValidateCode(t *testing.T) {
	t.Parallel()

	generator := createTotpGenerator(t)
	timestamp := time.Unix(1111111109, 0)

	t.Run("valid code should work", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, generator.ValidateCode(rfcSecret, "081804", timestamp))
	})
	t.Run("code of the previous step is accepted", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, generator.ValidateCode(rfcSecret, "081804", timestamp.Add(30*time.Second)))
	})
	t.Run("wrong code should error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, otp.ErrInvalidCode, generator.ValidateCode(rfcSecret, "000000", timestamp))
	})
	t.Run("stale code should error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, otp.ErrInvalidCode, generator.ValidateCode(rfcSecret, "081804", timestamp.Add(5*time.Minute)))
	})
	t.Run("wrong length should error", func(t *testing.T) {
		t.Parallel()

		err := generator.ValidateCode(rfcSecret, "0818", timestamp)
		assert.True(t, errors.Is(err, otp.ErrInvalidCode))
	})
	t.Run("invalid secret should error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, otp.ErrInvalidSecret, generator.ValidateCode("", "081804", timestamp))
	})
}
