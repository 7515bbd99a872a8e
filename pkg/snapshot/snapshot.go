package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/autolayout/pkg/layout"
	"github.com/matzehuels/autolayout/pkg/solver"
)

// =============================================================================
// Snapshot - Solved Layout Serialization
// =============================================================================

// Snapshot is the serialized form of a solved element tree together with the
// constraints that produced it.
type Snapshot struct {
	Root        string       `json:"root"`
	Elements    []Element    `json:"elements"`
	Constraints []Constraint `json:"constraints"`
	Dropped     int          `json:"dropped,omitempty"`
}

// Element is one element of the tree in pre-order.
type Element struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
	Frame  *Frame `json:"frame,omitempty"` // Nil when no layout was supplied
}

// Frame is an element's solved rectangle in its parent's coordinates.
type Frame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Constraint is an installed registration. Item and ToItem refer to
// Element IDs.
type Constraint struct {
	Host       string  `json:"host"`
	Item       string  `json:"item"`
	Attr       string  `json:"attr"`
	Relation   string  `json:"relation"`
	ToItem     string  `json:"to_item,omitempty"`
	ToAttr     string  `json:"to_attr,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Constant   float64 `json:"constant"`
	Priority   float64 `json:"priority"`
	Implicit   bool    `json:"implicit,omitempty"`
	Dropped    bool    `json:"dropped,omitempty"`
}

// Registry lists installed constraints. [*solver.Solver] implements it.
type Registry interface {
	Registrations() []layout.Registration
}

// identified is implemented by elements with a stable identity, such as
// tree nodes.
type identified interface {
	ID() uuid.UUID
}

// Capture records the tree under root, the constraints in reg hosted inside
// it, and, when l is non-nil, each element's frame rounded to two decimals.
func Capture(root layout.Element, reg Registry, l *solver.Layout) Snapshot {
	ids := make(map[layout.Element]string)
	var snap Snapshot

	layout.Walk(root, func(e layout.Element) bool {
		id := elementID(e, len(snap.Elements))
		ids[e] = id
		el := Element{ID: id, Name: name(e)}
		if p := e.Parent(); p != nil && e != root {
			el.Parent = ids[p]
		}
		if l != nil {
			if f, ok := l.Frame(e); ok {
				el.Frame = &Frame{X: round(f.X), Y: round(f.Y), Width: round(f.Width), Height: round(f.Height)}
			}
		}
		snap.Elements = append(snap.Elements, el)
		return true
	})
	if len(snap.Elements) > 0 {
		snap.Root = snap.Elements[0].ID
	}

	dropped := make(map[layout.Token]bool)
	if l != nil {
		for _, r := range l.Dropped {
			dropped[r.Token] = true
		}
		snap.Dropped = len(l.Dropped)
	}

	if reg == nil {
		return snap
	}
	for _, r := range reg.Registrations() {
		host, ok := ids[r.Host]
		if !ok {
			continue
		}
		d := r.Descriptor
		c := Constraint{
			Host:     host,
			Item:     ids[d.Item],
			Attr:     d.Attr.String(),
			Relation: d.Relation.String(),
			Constant: d.Constant,
			Priority: float64(d.Priority),
			Implicit: r.Implicit,
			Dropped:  dropped[r.Token],
		}
		if !d.IsConstant() {
			c.ToItem = ids[d.ToItem]
			c.ToAttr = d.ToAttr.String()
			c.Multiplier = d.Multiplier
		}
		snap.Constraints = append(snap.Constraints, c)
	}
	return snap
}

// Find returns the element with the given name, or false.
func (s Snapshot) Find(name string) (Element, bool) {
	for _, e := range s.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return Element{}, false
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a snapshot to indented JSON bytes.
func Marshal(s Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a snapshot as JSON to w.
func Write(s Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a snapshot to a JSON file at path.
func WriteFile(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f)
}

// Read decodes a snapshot from r.
func Read(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func elementID(e layout.Element, index int) string {
	if n, ok := e.(identified); ok {
		return n.ID().String()
	}
	return fmt.Sprintf("e%d", index)
}

func name(e layout.Element) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e)
}

func round(v float64) float64 {
	return math.Round(v*100)/100 + 0
}
