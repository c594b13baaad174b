package rainfall

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Pipeline runs the extraction strategies in priority order, then
// deduplicates, window-filters, and sums the results. It is purely
// computational: no I/O, no shared state, safe to run concurrently for
// different gauges from separate goroutines.
type Pipeline struct {
	loc        *time.Location
	clock      clockwork.Clock
	logger     *zap.Logger
	extractors []Extractor
}

// New builds a Pipeline for the given civil calendar. A nil clock falls
// back to real time and a nil logger to a no-op logger.
func New(loc *time.Location, clock clockwork.Clock, logger *zap.Logger) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		loc:        loc,
		clock:      clock,
		logger:     logger,
		extractors: Extractors(loc),
	}
}

// ComputeSevenDayTotal runs the pipeline with "now" as the as-of instant.
func (p *Pipeline) ComputeSevenDayTotal(content []byte) (Report, error) {
	return p.ComputeSevenDayTotalAt(content, p.clock.Now())
}

// ComputeSevenDayTotalAt runs the pipeline against an explicit as-of
// instant. Extraction stops at the first strategy that yields candidates;
// everything downstream is a total function, so the only failure path is
// ErrNoDataExtracted.
func (p *Pipeline) ComputeSevenDayTotalAt(content []byte, asOf time.Time) (Report, error) {
	candidates, strategy, attempted := p.extract(content)
	if len(candidates) == 0 {
		return Report{}, &PipelineError{
			Stage:     StageExtracting,
			Attempted: attempted,
			Err:       ErrNoDataExtracted,
		}
	}

	canonical := Dedupe(candidates)
	window := NewWindow(asOf, p.loc)
	filtered := window.Filter(canonical)
	total, count := Sum(filtered)

	p.logger.Debug("pipeline complete",
		zap.String("strategy", strategy),
		zap.Int("candidates", len(candidates)),
		zap.Int("canonical", len(canonical)),
		zap.Int("in_window", count),
		zap.Float64("total_inches", total),
	)

	return Report{
		Total:       total,
		RecordCount: count,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Strategy:    strategy,
		Records:     filtered,
	}, nil
}

func (p *Pipeline) extract(content []byte) (records []Record, strategy string, attempted []string) {
	for _, ex := range p.extractors {
		attempted = append(attempted, ex.Name())
		records = ex.Extract(content)
		if len(records) > 0 {
			return records, ex.Name(), attempted
		}
		p.logger.Debug("strategy yielded no records", zap.String("strategy", ex.Name()))
	}
	return nil, "", attempted
}
