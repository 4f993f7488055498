// Package metrics counts decode outcomes and fallback labels with
// Prometheus collectors.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/HerbHall/opticode/pkg/models"
)

const namespace = "opticode"

// Outcome label values for opticode_decodes_total.
const (
	OutcomeOK        = "ok"
	OutcomeMalformed = "malformed"
)

// Field label values for opticode_fallback_labels_total.
const (
	FieldModuleType     = "module_type"
	FieldHostElectrical = "host_electrical"
	FieldModuleMedia    = "module_media"
	FieldHostLanes      = "host_lanes"
	FieldMediaLanes     = "media_lanes"
)

// Metrics holds the decoder collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	decodes    *prometheus.CounterVec
	laneGroups prometheus.Counter
	fallbacks  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decodes_total",
				Help:      "Compliance codes decoded, by outcome.",
			},
			[]string{"outcome"},
		),
		laneGroups: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lane_groups_total",
				Help:      "Lane groups decoded.",
			},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fallback_labels_total",
				Help:      "Fields resolved through a range, unknown or invalid label instead of a table entry.",
			},
			[]string{"field"},
		),
	}

	for _, c := range []prometheus.Collector{m.decodes, m.laneGroups, m.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}

	// Pre-create label values so every series is exported from the start.
	m.decodes.WithLabelValues(OutcomeOK)
	m.decodes.WithLabelValues(OutcomeMalformed)
	for _, f := range []string{FieldModuleType, FieldHostElectrical, FieldModuleMedia, FieldHostLanes, FieldMediaLanes} {
		m.fallbacks.WithLabelValues(f)
	}
	return m, nil
}

// ObserveReport records a successful decode.
func (m *Metrics) ObserveReport(r models.TransceiverReport) {
	if m == nil {
		return
	}
	m.decodes.WithLabelValues(OutcomeOK).Inc()
	m.laneGroups.Add(float64(len(r.LaneGroups)))

	if r.ModuleTypeMatch != models.MatchExact {
		m.fallbacks.WithLabelValues(FieldModuleType).Inc()
	}
	for i := range r.LaneGroups {
		g := &r.LaneGroups[i]
		if g.HostElectricalMatch != models.MatchExact {
			m.fallbacks.WithLabelValues(FieldHostElectrical).Inc()
		}
		if g.ModuleMediaMatch != models.MatchExact {
			m.fallbacks.WithLabelValues(FieldModuleMedia).Inc()
		}
		if !g.HostLanes.Valid() {
			m.fallbacks.WithLabelValues(FieldHostLanes).Inc()
		}
		if !g.MediaLanes.Valid() {
			m.fallbacks.WithLabelValues(FieldMediaLanes).Inc()
		}
	}
}

// ObserveMalformed records a code rejected by the parser.
func (m *Metrics) ObserveMalformed() {
	if m == nil {
		return
	}
	m.decodes.WithLabelValues(OutcomeMalformed).Inc()
}

// WriteTextfile writes everything g gathers to path in the Prometheus text
// format, for node-exporter's textfile collector. The file is replaced
// atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
