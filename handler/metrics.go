package handler

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/linelog/linelog/core"
)

// statLevels are the levels exported as label values by StatsCollector.
var statLevels = []core.Level{
	core.DebugLevel,
	core.InfoLevel,
	core.WarnLevel,
	core.ErrorLevel,
	core.FatalLevel,
}

// StatsCollector exposes a handler's Stats as Prometheus counters. It
// reads the atomic counters on every scrape, so registering one
// collector per handler is enough; no ticking or push step is involved.
type StatsCollector struct {
	stats     *Stats
	processed *prometheus.Desc
	dropped   *prometheus.Desc
	blocked   *prometheus.Desc
}

// NewStatsCollector creates a collector over the given stats
func NewStatsCollector(stats *Stats) *StatsCollector {
	return &StatsCollector{
		stats: stats,
		processed: prometheus.NewDesc(
			"linelog_handler_processed_total",
			"Log records successfully written.",
			nil, nil,
		),
		dropped: prometheus.NewDesc(
			"linelog_handler_dropped_total",
			"Log records dropped by the overflow policy, by level.",
			[]string{"level"}, nil,
		),
		blocked: prometheus.NewDesc(
			"linelog_handler_blocked_total",
			"Times a caller hit the block-timeout on a full queue.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processed
	ch <- c.dropped
	ch <- c.blocked
}

// Collect implements prometheus.Collector
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.processed, prometheus.CounterValue, float64(c.stats.GetProcessed()))
	for _, lvl := range statLevels {
		ch <- prometheus.MustNewConstMetric(
			c.dropped, prometheus.CounterValue,
			float64(c.stats.GetDropped(lvl)), strings.ToLower(lvl.String()))
	}
	ch <- prometheus.MustNewConstMetric(
		c.blocked, prometheus.CounterValue, float64(c.stats.GetBlocked()))
}
