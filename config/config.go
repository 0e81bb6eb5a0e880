package config

// Config will hold the whole configuration of the guarded transactions tool
type Config struct {
	General  GeneralConfig
	Proxy    ProxyConfig
	Guardian GuardianConfig
	OTP      OTPConfig
	NTP      NTPConfig
	Metrics  MetricsConfig
}

// GeneralConfig holds the general settings
type GeneralConfig struct {
	AddressHrp   string `validate:"required"`
	SignWithHash bool
}

// ProxyConfig holds the settings used to reach the network gateway
type ProxyConfig struct {
	URL                     string `validate:"required,url"`
	RequestTimeoutInSeconds int    `validate:"gt=0"`
}

// GuardianConfig holds the guardian co-signing settings
type GuardianConfig struct {
	RequestTimeoutInSeconds int `validate:"gt=0"`
	Services                []GuardianServiceConfig
}

// GuardianServiceConfig maps an on-chain guardian service identifier to the protocol variant able to talk to it
type GuardianServiceConfig struct {
	ServiceUID string `validate:"required"`
	Type       string `validate:"required"`
	URL        string
	KeyFile    string
}

// OTPConfig holds the time-based one-time password policy
type OTPConfig struct {
	PeriodInSeconds uint   `validate:"gt=0"`
	Digits          int    `validate:"min=6,max=8"`
	Algorithm       string `validate:"required"`
}

// NTPConfig will hold the configuration for NTP queries
type NTPConfig struct {
	Enabled               bool
	Hosts                 []string
	Port                  int
	TimeoutInMilliseconds int
	SyncPeriodSeconds     int
	Version               int
}

// MetricsConfig holds the metrics settings
type MetricsConfig struct {
	Enabled      bool
	TextfilePath string
}
