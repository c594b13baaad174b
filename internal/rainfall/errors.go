package rainfall

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDataExtracted means every extraction strategy produced zero
// candidate records. It is distinct from a zero total: a dry week still
// yields records, this means the page format was not recognized.
var ErrNoDataExtracted = errors.New("no rainfall data extracted")

// Stage names a pipeline phase for error reporting.
type Stage string

// Pipeline stages in execution order.
const (
	StageExtracting    Stage = "extracting"
	StageDeduplicating Stage = "deduplicating"
	StageFiltering     Stage = "filtering"
	StageAggregating   Stage = "aggregating"
)

// PipelineError reports which stage failed and which strategies were
// attempted, so site-format drift can be diagnosed from logs alone.
type PipelineError struct {
	Stage     Stage
	Attempted []string
	Err       error
}

func (e *PipelineError) Error() string {
	if len(e.Attempted) == 0 {
		return fmt.Sprintf("rainfall pipeline failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("rainfall pipeline failed at %s (strategies tried: %s): %v",
		e.Stage, strings.Join(e.Attempted, ", "), e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
