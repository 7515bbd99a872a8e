// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about constraint construction and solving.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the layout core stays
// free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConstraintHooks(&myConstraintHooks{})
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Constraints().OnInstall("left", 1000, nil)
//	observability.Solver().OnSolveComplete(ctx, 12, 0, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Constraint Hooks
// =============================================================================

// ConstraintHooks receives events from the constraint builder.
// Builder calls are synchronous and carry no context.
type ConstraintHooks interface {
	// OnInstall records an attempt to install a constraint on attr.
	// err is non-nil when validation or the solver rejected it.
	OnInstall(attr string, priority float64, err error)

	// OnRemove records constraints detached by a removal operation.
	OnRemove(count int)

	// OnRollback records a composite operation that failed part way and
	// removed the constraints it had already installed.
	OnRollback(op string, count int)
}

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from a solver.
type SolverHooks interface {
	// OnSolveStart records the start of a solve over elements nodes.
	OnSolveStart(ctx context.Context, elements int)

	// OnSolveComplete records the end of a solve. dropped counts constraints
	// that could not be satisfied and were left out of the solution.
	OnSolveComplete(ctx context.Context, constraints, dropped int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConstraintHooks is a no-op implementation of ConstraintHooks.
type NoopConstraintHooks struct{}

func (NoopConstraintHooks) OnInstall(string, float64, error) {}
func (NoopConstraintHooks) OnRemove(int)                     {}
func (NoopConstraintHooks) OnRollback(string, int)           {}

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, int) {}
func (NoopSolverHooks) OnSolveComplete(context.Context, int, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	constraintHooks ConstraintHooks = NoopConstraintHooks{}
	solverHooks     SolverHooks     = NoopSolverHooks{}
	hooksMu         sync.RWMutex
)

// SetConstraintHooks registers custom constraint hooks.
// This should be called once at application startup before building constraints.
func SetConstraintHooks(h ConstraintHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		constraintHooks = h
	}
}

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any solve.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// Constraints returns the registered constraint hooks.
func Constraints() ConstraintHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return constraintHooks
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	constraintHooks = NoopConstraintHooks{}
	solverHooks = NoopSolverHooks{}
}
