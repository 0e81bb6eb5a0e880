package statusHandler

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SaveMetricsToFile writes the gathered metrics in the prometheus text format, ready for a node exporter textfile
// collector
func SaveMetricsToFile(path string, gatherer prometheus.Gatherer) error {
	if len(path) == 0 {
		return ErrEmptyTextfilePath
	}

	return prometheus.WriteToTextfile(path, gatherer)
}
