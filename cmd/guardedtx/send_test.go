package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	t.Run("whole amount", func(t *testing.T) {
		t.Parallel()

		value, err := parseAmount("1")
		require.Nil(t, err)
		expected, _ := big.NewInt(0).SetString("1000000000000000000", 10)
		assert.Equal(t, expected, value)
	})
	t.Run("fractional amount", func(t *testing.T) {
		t.Parallel()

		value, err := parseAmount("0.000000000000000123")
		require.Nil(t, err)
		assert.Equal(t, big.NewInt(123), value)
	})
	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		value, err := parseAmount("0")
		require.Nil(t, err)
		assert.Equal(t, 0, value.Sign())
	})
	t.Run("too many decimals should error", func(t *testing.T) {
		t.Parallel()

		value, err := parseAmount("0.0000000000000000001")
		assert.True(t, errors.Is(err, errInvalidAmount))
		assert.Nil(t, value)
	})
	t.Run("negative should error", func(t *testing.T) {
		t.Parallel()

		value, err := parseAmount("-1")
		assert.True(t, errors.Is(err, errInvalidAmount))
		assert.Nil(t, value)
	})
	t.Run("not a number should error", func(t *testing.T) {
		t.Parallel()

		value, err := parseAmount("one")
		assert.True(t, errors.Is(err, errInvalidAmount))
		assert.Nil(t, value)
	})
}

func createCliContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range keySourceFlags() {
		f.Apply(set)
	}
	require.Nil(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoadOwnerKey(t *testing.T) {
	t.Parallel()

	t.Run("no key source should error", func(t *testing.T) {
		t.Parallel()

		key, err := loadOwnerKey(createCliContext(t))
		assert.Equal(t, errNoKeySource, err)
		assert.Nil(t, key)
	})
	t.Run("two key sources should error", func(t *testing.T) {
		t.Parallel()

		key, err := loadOwnerKey(createCliContext(t, "--pem", "a.pem", "--mnemonic-file", "words.txt"))
		assert.Equal(t, errNoKeySource, err)
		assert.Nil(t, key)
	})
	t.Run("missing mnemonic file should error", func(t *testing.T) {
		t.Parallel()

		key, err := loadOwnerKey(createCliContext(t, "--mnemonic-file", "./missing.txt"))
		assert.NotNil(t, err)
		assert.Nil(t, key)
	})
	t.Run("missing keystore should error", func(t *testing.T) {
		t.Parallel()

		key, err := loadOwnerKey(createCliContext(t, "--keystore", "./missing.json"))
		assert.NotNil(t, err)
		assert.Nil(t, key)
	})
	t.Run("pem file should work", func(t *testing.T) {
		t.Parallel()

		key, err := loadOwnerKey(createCliContext(t, "--pem", "../../guardian/testdata/aliceGuardian.pem"))
		require.Nil(t, err)
		assert.Equal(t, "413f42575f7f26fad3317a778771212fdb80245850981e48b58a4f25e344e8f9", hex.EncodeToString(key))
	})
}
