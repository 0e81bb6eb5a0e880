package ntp

import (
	"time"
)

// OutOfBoundsDuration -
const OutOfBoundsDuration = outOfBoundsDuration

// NumRequestsFromHost -
const NumRequestsFromHost = numRequestsFromHost

// SyncPeriod -
func (s *syncTime) SyncPeriod() time.Duration {
	return s.syncPeriod
}

// Options -
func (s *syncTime) Options() NTPOptions {
	return s.ntpOptions
}

// Sync -
func (s *syncTime) Sync() {
	s.sync()
}

// GetClockOffsetsWithoutEdges -
func (s *syncTime) GetClockOffsetsWithoutEdges(clockOffsets []time.Duration) []time.Duration {
	return s.getClockOffsetsWithoutEdges(clockOffsets)
}

// GetHarmonicMean -
func (s *syncTime) GetHarmonicMean(clockOffsets []time.Duration) time.Duration {
	return s.getHarmonicMean(clockOffsets)
}

// GetSleepTime -
func (s *syncTime) GetSleepTime() time.Duration {
	return s.getSleepTime()
}

// SetClockOffset -
func (s *syncTime) SetClockOffset(clockOffset time.Duration) {
	s.setClockOffset(clockOffset)
}
