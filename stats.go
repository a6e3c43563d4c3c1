// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const metricNamespace = "analyzer"

// Metric names, without namespace.
const (
	MetricLines          = "input_lines_total"
	MetricSkipped        = "records_skipped_total"
	MetricWithheld       = "records_withheld_total"
	MetricRejected       = "records_rejected_total"
	MetricAccepted       = "records_accepted_total"
	MetricPhaseDuration  = "phase_duration_seconds"
	MetricClosedItemsets = "closed_itemsets"
)

// Pipeline phases, used as the phase label of MetricPhaseDuration.
const (
	PhaseImport  = "import"
	PhaseEncode  = "encode"
	PhaseSave    = "save"
	PhaseRestore = "restore"
	PhaseMine    = "mine"
)

// Stats holds the counters of one run on a private registry.
type Stats struct {
	registry *prometheus.Registry

	Lines          prometheus.Counter
	Skipped        prometheus.Counter
	Withheld       prometheus.Counter
	Rejected       prometheus.Counter
	Accepted       prometheus.Counter
	ClosedItemsets prometheus.Gauge
	phaseDuration  *prometheus.GaugeVec
}

// NewStats returns a new instance of Stats.
func NewStats() *Stats {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      name,
			Help:      help,
		})
	}
	s := &Stats{
		registry: prometheus.NewRegistry(),
		Lines:    counter(MetricLines, "Data lines read from the input, header excluded."),
		Skipped:  counter(MetricSkipped, "Lines skipped because a field could not be decoded."),
		Withheld: counter(MetricWithheld, "Records withheld as the earliest admission of their subject."),
		Rejected: counter(MetricRejected, "Records rejected by the validity and attribute filters."),
		Accepted: counter(MetricAccepted, "Records accepted into the dataset."),
		ClosedItemsets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      MetricClosedItemsets,
			Help:      "Closed itemsets found by the last mining run.",
		}),
		phaseDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      MetricPhaseDuration,
			Help:      "Wall time of each pipeline phase.",
		}, []string{"phase"}),
	}
	s.registry.MustRegister(
		s.Lines,
		s.Skipped,
		s.Withheld,
		s.Rejected,
		s.Accepted,
		s.ClosedItemsets,
		s.phaseDuration,
	)
	return s
}

// ObservePhase records the duration of a pipeline phase.
func (s *Stats) ObservePhase(phase string, d time.Duration) {
	s.phaseDuration.WithLabelValues(phase).Set(d.Seconds())
}

// Registry returns the registry holding the metrics.
func (s *Stats) Registry() *prometheus.Registry {
	return s.registry
}

// WriteMetrics writes every metric in the Prometheus text format.
func (s *Stats) WriteMetrics(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
