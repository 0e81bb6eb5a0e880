package ntp

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/multiversx/mx-chain-guarded-tx-go/config"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("ntp")

// numRequestsFromHost represents the number of requests sent to each host in one sync round
const numRequestsFromHost = 3

// outOfBoundsDuration is the clock offset above which a sync round result is ignored
const outOfBoundsDuration = 5 * time.Minute

// minSyncPeriod is the lowest period between two sync rounds
const minSyncPeriod = time.Second

const defaultNTPPort = 123

// NTPOptions defines the options for the NTP queries
type NTPOptions struct {
	Hosts   []string
	Version int
	Timeout time.Duration
	Port    int
}

// NewNTPOptions creates a new NTPOptions object from the provided config
func NewNTPOptions(ntpConfig config.NTPConfig) NTPOptions {
	port := ntpConfig.Port
	if port == 0 {
		port = defaultNTPPort
	}

	return NTPOptions{
		Hosts:   ntpConfig.Hosts,
		Version: ntpConfig.Version,
		Timeout: time.Duration(ntpConfig.TimeoutInMilliseconds) * time.Millisecond,
		Port:    port,
	}
}

// queryNTP queries the host found at the provided index
func queryNTP(options NTPOptions, hostIndex int) (*ntp.Response, error) {
	queryOptions := ntp.QueryOptions{
		Timeout: options.Timeout,
		Version: options.Version,
	}
	address := net.JoinHostPort(options.Hosts[hostIndex], strconv.Itoa(options.Port))

	return ntp.QueryWithOptions(address, queryOptions)
}

// syncTime is the clock corrected by the offset measured against a set of NTP hosts
type syncTime struct {
	mut         sync.RWMutex
	clockOffset time.Duration
	syncPeriod  time.Duration
	ntpOptions  NTPOptions
	query       func(options NTPOptions, hostIndex int) (*ntp.Response, error)
	cancelFunc  func()
}

// NewSyncTime creates a syncTime object. The customQueryFunc can be nil, in which case the real NTP query is used
func NewSyncTime(
	ntpConfig config.NTPConfig,
	customQueryFunc func(options NTPOptions, hostIndex int) (*ntp.Response, error),
) (*syncTime, error) {
	if len(ntpConfig.Hosts) == 0 {
		return nil, ErrEmptyHosts
	}

	queryFunc := customQueryFunc
	if queryFunc == nil {
		queryFunc = queryNTP
	}

	syncPeriod := time.Duration(ntpConfig.SyncPeriodSeconds) * time.Second
	if syncPeriod < minSyncPeriod {
		syncPeriod = minSyncPeriod
	}

	return &syncTime{
		syncPeriod: syncPeriod,
		ntpOptions: NewNTPOptions(ntpConfig),
		query:      queryFunc,
		cancelFunc: func() {},
	}, nil
}

// StartSyncingTime runs a first sync round and then keeps syncing in background until Close is called
func (s *syncTime) StartSyncingTime() {
	s.sync()

	ctx, cancel := context.WithCancel(context.Background())
	s.mut.Lock()
	s.cancelFunc = cancel
	s.mut.Unlock()

	go s.startSync(ctx)
}

func (s *syncTime) startSync(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Debug("syncTime's go routine is stopping...")
			return
		case <-time.After(s.getSleepTime()):
			s.sync()
		}
	}
}

func (s *syncTime) getSleepTime() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(s.syncPeriod)/10 + 1))

	return s.syncPeriod + jitter
}

func (s *syncTime) sync() {
	clockOffsets := make([]time.Duration, 0, numRequestsFromHost*len(s.ntpOptions.Hosts))
	for i := 0; i < numRequestsFromHost; i++ {
		for hostIndex := range s.ntpOptions.Hosts {
			response, err := s.query(s.ntpOptions, hostIndex)
			if err != nil {
				log.Trace("sync.query", "host", s.ntpOptions.Hosts[hostIndex], "error", err.Error())
				continue
			}

			clockOffsets = append(clockOffsets, response.ClockOffset)
		}
	}

	if len(clockOffsets) == 0 {
		log.Debug("syncTime.sync: no NTP host answered, keeping the previous clock offset")
		return
	}

	clockOffsetHarmonicMean := s.getHarmonicMean(s.getClockOffsetsWithoutEdges(clockOffsets))
	if clockOffsetHarmonicMean > outOfBoundsDuration || clockOffsetHarmonicMean < -outOfBoundsDuration {
		log.Warn("syncTime.sync: clock offset is out of bounds, ignoring it",
			"clock offset", clockOffsetHarmonicMean,
			"bound", outOfBoundsDuration)
		return
	}

	s.setClockOffset(clockOffsetHarmonicMean)
	log.Debug("syncTime.sync",
		"num clock offsets", len(clockOffsets),
		"clock offset", fmt.Sprintf("%v", clockOffsetHarmonicMean))
}

// getClockOffsetsWithoutEdges drops the lowest and the highest measurements when there are enough of them
func (s *syncTime) getClockOffsetsWithoutEdges(clockOffsets []time.Duration) []time.Duration {
	sorted := make([]time.Duration, len(clockOffsets))
	copy(sorted, clockOffsets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	if len(sorted) < 3 {
		return sorted
	}

	return sorted[1 : len(sorted)-1]
}

// getHarmonicMean returns the signed harmonic mean of the offsets, zero offsets being skipped
func (s *syncTime) getHarmonicMean(clockOffsets []time.Duration) time.Duration {
	inverseSum := float64(0)
	count := 0
	for _, clockOffset := range clockOffsets {
		if clockOffset == 0 {
			continue
		}

		inverseSum += 1 / float64(clockOffset)
		count++
	}

	if count == 0 || inverseSum == 0 {
		return 0
	}

	harmonicMean := float64(count) / inverseSum
	if math.IsInf(harmonicMean, 0) || math.IsNaN(harmonicMean) {
		return 0
	}

	return time.Duration(math.Round(harmonicMean))
}

// ClockOffset returns the last measured clock offset
func (s *syncTime) ClockOffset() time.Duration {
	s.mut.RLock()
	defer s.mut.RUnlock()

	return s.clockOffset
}

func (s *syncTime) setClockOffset(clockOffset time.Duration) {
	s.mut.Lock()
	s.clockOffset = clockOffset
	s.mut.Unlock()
}

// CurrentTime returns the local time corrected by the clock offset
func (s *syncTime) CurrentTime() time.Time {
	return time.Now().Add(s.ClockOffset())
}

// Close stops the background syncing
func (s *syncTime) Close() error {
	s.mut.RLock()
	cancel := s.cancelFunc
	s.mut.RUnlock()

	cancel()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *syncTime) IsInterfaceNil() bool {
	return s == nil
}
