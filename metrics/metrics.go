// Package metrics exposes a Semaphore's observational state as Prometheus
// gauges. The collector reads the semaphore at scrape time, so the exported
// values carry the same staleness caveat as the Value method itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maldenol/semaphore"
)

// Collector implements prometheus.Collector for a single Semaphore. Register
// one per semaphore, each under a distinct name label.
type Collector struct {
	sem *semaphore.Semaphore

	available *prometheus.Desc
	capacity  *prometheus.Desc
	waiters   *prometheus.Desc
}

// NewCollector creates a Collector for s. The name labels every exported
// metric so several semaphores can be registered side by side.
func NewCollector(name string, s *semaphore.Semaphore) *Collector {
	labels := prometheus.Labels{"semaphore": name}

	return &Collector{
		sem: s,
		available: prometheus.NewDesc(
			"semaphore_permits_available",
			"Permits currently available for acquisition",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			"semaphore_permits_capacity",
			"Permits the semaphore was constructed with",
			nil, labels,
		),
		waiters: prometheus.NewDesc(
			"semaphore_waiters",
			"Goroutines currently blocked waiting for a permit",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.available
	ch <- c.capacity
	ch <- c.waiters
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue, float64(c.sem.Value()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.sem.Capacity()))
	ch <- prometheus.MustNewConstMetric(c.waiters, prometheus.GaugeValue, float64(c.sem.Waiters()))
}
