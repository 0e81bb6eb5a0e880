package config

import (
	"errors"
	"fmt"

	"gopkg.in/go-playground/validator.v8"
)

// ErrInvalidConfig signals that the provided configuration is not valid
var ErrInvalidConfig = errors.New("invalid config")

const (
	// GuardianTypeTCS is the guardian variant reached over the trusted co-signer REST API
	GuardianTypeTCS = "tcs"
	// GuardianTypeLocal is the guardian variant whose key is held by this process
	GuardianTypeLocal = "local"
)

// SanityCheckConfig validates the provided configuration
func SanityCheckConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	validate := validator.New(&validator.Config{TagName: "validate"})
	err := validate.Struct(cfg)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	if len(cfg.Guardian.Services) == 0 {
		return fmt.Errorf("%w: no guardian service configured", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(cfg.Guardian.Services))
	for _, service := range cfg.Guardian.Services {
		err = checkGuardianService(validate, service)
		if err != nil {
			return err
		}

		_, found := seen[service.ServiceUID]
		if found {
			return fmt.Errorf("%w: duplicated guardian service %s", ErrInvalidConfig, service.ServiceUID)
		}
		seen[service.ServiceUID] = struct{}{}
	}

	if cfg.NTP.Enabled && len(cfg.NTP.Hosts) == 0 {
		return fmt.Errorf("%w: NTP enabled without hosts", ErrInvalidConfig)
	}

	return nil
}

func checkGuardianService(validate *validator.Validate, service GuardianServiceConfig) error {
	err := validate.Struct(service)
	if err != nil {
		return fmt.Errorf("%w: guardian service %s: %s", ErrInvalidConfig, service.ServiceUID, err.Error())
	}

	switch service.Type {
	case GuardianTypeTCS:
		if len(service.URL) == 0 {
			return fmt.Errorf("%w: guardian service %s requires an URL", ErrInvalidConfig, service.ServiceUID)
		}
	case GuardianTypeLocal:
		if len(service.KeyFile) == 0 {
			return fmt.Errorf("%w: guardian service %s requires a key file", ErrInvalidConfig, service.ServiceUID)
		}
	}

	return nil
}
