package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/matzehuels/autolayout/pkg/observability"
)

// statsHooks counts builder and solver events for --stats.
type statsHooks struct {
	mu        sync.Mutex
	installed int
	rejected  int
	removed   int
	rollbacks int
	solves    int
	elements  int
	dropped   int
	solveTime time.Duration
}

func (s *statsHooks) OnInstall(_ string, _ float64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.rejected++
		return
	}
	s.installed++
}

func (s *statsHooks) OnRemove(n int) {
	s.mu.Lock()
	s.removed += n
	s.mu.Unlock()
}

func (s *statsHooks) OnRollback(_ string, n int) {
	s.mu.Lock()
	s.rollbacks++
	s.removed += n
	s.mu.Unlock()
}

func (s *statsHooks) OnSolveStart(_ context.Context, elements int) {
	s.mu.Lock()
	s.elements += elements
	s.mu.Unlock()
}

func (s *statsHooks) OnSolveComplete(_ context.Context, _, dropped int, d time.Duration, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solves++
	s.dropped += dropped
	s.solveTime += d
}

// register installs s as the global hooks and returns a func that restores
// the no-op defaults.
func (s *statsHooks) register() func() {
	observability.SetConstraintHooks(s)
	observability.SetSolverHooks(s)
	return observability.Reset
}

// summary returns the counters as display parts.
func (s *statsHooks) summary() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := []string{
		fmt.Sprintf("%d installed", s.installed),
		fmt.Sprintf("%d dropped", s.dropped),
		fmt.Sprintf("%d elements", s.elements),
		fmt.Sprintf("solved in %s", s.solveTime.Round(time.Microsecond)),
	}
	if s.rejected > 0 {
		parts = append(parts, fmt.Sprintf("%d rejected", s.rejected))
	}
	if s.removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", s.removed))
	}
	if s.rollbacks > 0 {
		parts = append(parts, fmt.Sprintf("%d rollbacks", s.rollbacks))
	}
	return parts
}
