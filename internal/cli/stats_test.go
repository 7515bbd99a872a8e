package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/autolayout/pkg/demo"
)

func TestStatsHooksCount(t *testing.T) {
	s := &statsHooks{}
	s.OnInstall("left", 1000, nil)
	s.OnInstall("width", 250, nil)
	s.OnInstall("top", 1000, errors.New("rejected"))
	s.OnRemove(2)
	s.OnRollback("PinEdgesToParent", 3)
	s.OnSolveStart(context.Background(), 4)
	s.OnSolveComplete(context.Background(), 10, 1, time.Millisecond, nil)

	if s.installed != 2 || s.rejected != 1 {
		t.Errorf("installed, rejected = %d, %d, want 2, 1", s.installed, s.rejected)
	}
	if s.removed != 5 || s.rollbacks != 1 {
		t.Errorf("removed, rollbacks = %d, %d, want 5, 1", s.removed, s.rollbacks)
	}
	if s.solves != 1 || s.elements != 4 || s.dropped != 1 {
		t.Errorf("solves, elements, dropped = %d, %d, %d", s.solves, s.elements, s.dropped)
	}

	got := strings.Join(s.summary(), " ")
	for _, want := range []string{"2 installed", "1 dropped", "4 elements", "1 rejected", "5 removed", "1 rollbacks"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary() = %q, missing %q", got, want)
		}
	}
}

func TestStatsHooksRegister(t *testing.T) {
	s := &statsHooks{}
	restore := s.register()

	sc, err := demo.Lookup("center")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := demo.Run(context.Background(), sc, demo.Options{}); err != nil {
		t.Fatal(err)
	}
	restore()

	if s.installed == 0 || s.solves != 1 {
		t.Errorf("installed = %d, solves = %d, want > 0 and 1", s.installed, s.solves)
	}

	// After restore the counters stay put.
	before := s.installed
	if _, err := demo.Run(context.Background(), sc, demo.Options{}); err != nil {
		t.Fatal(err)
	}
	if s.installed != before {
		t.Errorf("installed changed after restore: %d -> %d", before, s.installed)
	}
}
