package client

import (
	"time"

	"github.com/healsmart/healsmart-api/pkg/metrics"
)

// observeUpstream records one upstream call. A nil metrics handle
// disables recording so clients stay usable without a registry.
func observeUpstream(m *metrics.Metrics, service string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.UpstreamRequests.WithLabelValues(service, status).Inc()
	m.UpstreamLatency.WithLabelValues(service).Observe(time.Since(start).Seconds())
}
