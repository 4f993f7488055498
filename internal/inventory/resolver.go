package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/HerbHall/opticode/internal/compliance"
	"github.com/HerbHall/opticode/internal/metrics"
	"github.com/HerbHall/opticode/pkg/models"
)

// DefaultConcurrency is used when NewResolver is given a non-positive value.
const DefaultConcurrency = 8

// Entry is the decode result for one inventory port. Exactly one of Report
// and Error is set.
type Entry struct {
	Host       string                    `json:"host" yaml:"host"`
	Port       string                    `json:"port" yaml:"port"`
	Compliance string                    `json:"optical_compliance" yaml:"optical_compliance"`
	Report     *models.TransceiverReport `json:"report,omitempty" yaml:"report,omitempty"`
	Error      string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result is the outcome of one Resolve run. Entries follow inventory order.
type Result struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Decoded   int       `json:"decoded" yaml:"decoded"`
	Malformed int       `json:"malformed" yaml:"malformed"`
	Entries   []Entry   `json:"entries" yaml:"entries"`
}

// Resolver decodes every port of an inventory on a bounded worker pool.
type Resolver struct {
	logger      *zap.Logger
	metrics     *metrics.Metrics
	concurrency int
	now         func() time.Time
}

// NewResolver creates a Resolver. m may be nil.
func NewResolver(logger *zap.Logger, m *metrics.Metrics, concurrency int) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Resolver{
		logger:      logger,
		metrics:     m,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Resolve decodes every port. Malformed codes are recorded on their entry
// and do not stop the run. If ctx is canceled, ports not yet started are
// skipped and ctx.Err() is returned.
func (r *Resolver) Resolve(ctx context.Context, inv *Inventory) (*Result, error) {
	res := &Result{
		RunID:     uuid.New().String(),
		StartedAt: r.now().UTC(),
		Entries:   make([]Entry, 0, inv.PortCount()),
	}
	for _, h := range inv.Hosts {
		for _, p := range h.Ports {
			res.Entries = append(res.Entries, Entry{Host: h.Name, Port: p.ID, Compliance: p.Compliance})
		}
	}

	logger := r.logger.With(zap.String("run_id", res.RunID))
	logger.Info("inventory decode started",
		zap.Int("hosts", len(inv.Hosts)),
		zap.Int("ports", len(res.Entries)),
		zap.Int("concurrency", r.concurrency),
	)

	// Each task owns exactly one slot of res.Entries.
	p := pool.New().WithMaxGoroutines(r.concurrency)
	for i := range res.Entries {
		if ctx.Err() != nil {
			break
		}
		e := &res.Entries[i]
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			r.decodeEntry(logger, e)
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		logger.Warn("inventory decode canceled", zap.Error(err))
		return nil, err
	}

	for i := range res.Entries {
		if res.Entries[i].Report != nil {
			res.Decoded++
		} else {
			res.Malformed++
		}
	}

	logger.Info("inventory decode finished",
		zap.Int("decoded", res.Decoded),
		zap.Int("malformed", res.Malformed),
		zap.Duration("elapsed", r.now().UTC().Sub(res.StartedAt)),
	)
	return res, nil
}

func (r *Resolver) decodeEntry(logger *zap.Logger, e *Entry) {
	report, err := compliance.Decode(e.Compliance)
	if err != nil {
		e.Error = err.Error()
		r.metrics.ObserveMalformed()
		logger.Warn("malformed compliance code",
			zap.String("host", e.Host),
			zap.String("port", e.Port),
			zap.String("code", e.Compliance),
			zap.Error(err),
		)
		return
	}

	e.Report = &report
	r.metrics.ObserveReport(report)
	logger.Debug("compliance code decoded",
		zap.String("host", e.Host),
		zap.String("port", e.Port),
		zap.String("module_type", report.ModuleType),
		zap.Int("lane_groups", len(report.LaneGroups)),
	)
}
