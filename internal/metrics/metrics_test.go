package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/opticode/pkg/models"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)
	return m, reg
}

func TestObserveReport_CountsFallbacks(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveReport(models.TransceiverReport{
		ModuleTypeMatch: models.MatchRange,
		LaneGroups: []models.LaneGroup{
			{
				HostElectricalMatch: models.MatchExact,
				ModuleMediaMatch:    models.MatchRange,
				HostLanes:           models.NewLaneCount(4),
				MediaLanes:          models.InvalidLaneCount("Invalid Media Lane Count"),
			},
			{
				HostElectricalMatch: models.MatchUnknown,
				ModuleMediaMatch:    models.MatchExact,
				HostLanes:           models.InvalidLaneCount("Invalid Host Lane Count"),
				MediaLanes:          models.NewLaneCount(1),
			},
		},
	})

	assert.InDelta(t, 1, testutil.ToFloat64(m.decodes.WithLabelValues(OutcomeOK)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.decodes.WithLabelValues(OutcomeMalformed)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.laneGroups), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.fallbacks.WithLabelValues(FieldModuleType)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.fallbacks.WithLabelValues(FieldHostElectrical)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.fallbacks.WithLabelValues(FieldModuleMedia)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.fallbacks.WithLabelValues(FieldHostLanes)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.fallbacks.WithLabelValues(FieldMediaLanes)), 0)
}

func TestObserveMalformed(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.ObserveMalformed()
	m.ObserveMalformed()

	assert.InDelta(t, 2, testutil.ToFloat64(m.decodes.WithLabelValues(OutcomeMalformed)), 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveReport(models.TransceiverReport{})
		m.ObserveMalformed()
	})
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	require.Error(t, err)
}

func TestWriteTextfile(t *testing.T) {
	m, reg := newTestMetrics(t)
	m.ObserveMalformed()

	path := filepath.Join(t.TempDir(), "opticode.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `opticode_decodes_total{outcome="malformed"} 1`), text)
	assert.Contains(t, text, `opticode_fallback_labels_total{field="module_media"} 0`)
	assert.Contains(t, text, "opticode_lane_groups_total 0")
}
