package otp

import "time"

// Generator produces and checks time-based one-time passwords
type Generator interface {
	GenerateCode(secret string, timestamp time.Time) (string, error)
	ValidateCode(secret string, code string, timestamp time.Time) error
	IsInterfaceNil() bool
}
