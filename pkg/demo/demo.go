package demo

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/layout"
	"github.com/matzehuels/autolayout/pkg/solver"
	"github.com/matzehuels/autolayout/pkg/tree"
)

// DefaultSize is the container size used when Options.Size is zero.
var DefaultSize = layout.Size{Width: 320, Height: 480}

// Scene is a named layout built under a sized root element.
type Scene struct {
	Name        string
	Description string
	Build       func(b *layout.Builder, root *tree.Node) error
}

// Options configures Run.
type Options struct {
	// Size is the root container size. Zero components fall back to
	// DefaultSize.
	Size layout.Size
	// Direction is the root's layout direction.
	Direction layout.Direction
	// Priority, when set, is the default priority for the scene's own
	// constraints. The container size stays required.
	Priority layout.Priority
	// Strict fails the run when a required constraint was dropped.
	Strict bool
	// Logger receives builder and solver diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Result holds everything a run produced.
type Result struct {
	Scene  Scene
	Root   *tree.Node
	Solver *solver.Solver
	Layout *solver.Layout
}

// Run builds sc under a fresh root and solves it.
func Run(ctx context.Context, sc Scene, opts Options) (*Result, error) {
	size := opts.Size
	if size.Width <= 0 {
		size.Width = DefaultSize.Width
	}
	if size.Height <= 0 {
		size.Height = DefaultSize.Height
	}

	root := tree.New(sc.Name, tree.WithDirection(opts.Direction))
	s := solver.New(solver.WithLogger(opts.Logger))
	b := layout.New(s, layout.WithLogger(opts.Logger), layout.WithDirection(opts.Direction))

	if _, err := b.SetSize(root, size); err != nil {
		return nil, fmt.Errorf("size container: %w", err)
	}

	build := func(b *layout.Builder) error { return sc.Build(b, root) }
	var err error
	if opts.Priority != 0 {
		err = b.WithPriority(opts.Priority, build)
	} else {
		err = build(b)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", sc.Name, err)
	}

	l, err := s.Solve(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", sc.Name, err)
	}
	if opts.Strict {
		if n := DroppedRequired(l); n > 0 {
			return nil, errs.New(errs.ErrCodeUnsatisfiable, "%s: %d required constraints could not be satisfied", sc.Name, n)
		}
	}
	return &Result{Scene: sc, Root: root, Solver: s, Layout: l}, nil
}

// DroppedRequired counts the required constraints l had to drop.
func DroppedRequired(l *solver.Layout) int {
	n := 0
	for _, r := range l.Dropped {
		if r.Descriptor.Priority >= layout.PriorityRequired {
			n++
		}
	}
	return n
}

// Lookup returns the scene with the given name.
func Lookup(name string) (Scene, error) {
	for _, sc := range scenes {
		if sc.Name == name {
			return sc, nil
		}
	}
	return Scene{}, errs.New(errs.ErrCodeUnknownDemo, "unknown demo %q (available: %v)", name, Names())
}

// All returns every scene in presentation order.
func All() []Scene {
	return append([]Scene(nil), scenes...)
}

// Names returns the scene names sorted alphabetically.
func Names() []string {
	names := make([]string, len(scenes))
	for i, sc := range scenes {
		names[i] = sc.Name
	}
	sort.Strings(names)
	return names
}
