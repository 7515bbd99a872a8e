package tree

import (
	"github.com/google/uuid"

	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/layout"
)

// NoIntrinsicMetric marks an intrinsic width or height the node does not
// have. A solver adds no implicit size constraint for it.
const NoIntrinsicMetric = -1

// Node is an element in a visual tree. It implements [layout.Element] and
// [layout.Directional].
//
// The zero value is not usable; create nodes with [New].
// Node is not safe for concurrent use.
type Node struct {
	id       uuid.UUID
	Name     string
	parent   *Node
	children []*Node

	intrinsic layout.Size
	direction *layout.Direction
}

// Option configures a Node.
type Option func(*Node)

// WithIntrinsicSize gives the node a natural content size. Pass
// NoIntrinsicMetric for a component the node has no opinion about.
func WithIntrinsicSize(width, height float64) Option {
	return func(n *Node) { n.intrinsic = layout.Size{Width: width, Height: height} }
}

// WithDirection fixes the node's layout direction instead of inheriting it.
func WithDirection(d layout.Direction) Option {
	return func(n *Node) { n.SetDirection(d) }
}

// New creates a detached node.
func New(name string, opts ...Option) *Node {
	n := &Node{
		id:        uuid.New(),
		Name:      name,
		intrinsic: layout.Size{Width: NoIntrinsicMetric, Height: NoIntrinsicMetric},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the node's unique identity.
func (n *Node) ID() uuid.UUID { return n.id }

func (n *Node) String() string {
	if n.Name != "" {
		return n.Name
	}
	return n.id.String()[:8]
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() layout.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentNode is Parent without the interface conversion.
func (n *Node) ParentNode() *Node { return n.parent }

// Children returns the children in order.
func (n *Node) Children() []layout.Element {
	out := make([]layout.Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// ChildNodes returns the children in order as nodes.
func (n *Node) ChildNodes() []*Node {
	return append([]*Node(nil), n.children...)
}

// AddChild appends child to n, detaching it from its current parent first.
// Adding an ancestor of n (or n itself) fails with INVALID_INPUT.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return errs.New(errs.ErrCodeInvalidInput, "nil child")
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return errs.New(errs.ErrCodeInvalidInput, "adding %s to %s would create a cycle", child, n)
		}
	}
	child.RemoveFromParent()
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Add creates a node, appends it to n and returns it.
func (n *Node) Add(name string, opts ...Option) *Node {
	child := New(name, opts...)
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveFromParent detaches n. It is a no-op for a root.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// SetDirection fixes the layout direction of n and the descendants that
// inherit it.
func (n *Node) SetDirection(d layout.Direction) {
	n.direction = &d
}

// LayoutDirection returns the node's own direction or the nearest
// ancestor's. Roots default to left-to-right.
func (n *Node) LayoutDirection() layout.Direction {
	for p := n; p != nil; p = p.parent {
		if p.direction != nil {
			return *p.direction
		}
	}
	return layout.DirectionLeftToRight
}

// IntrinsicSize returns the natural content size. Components without one
// are NoIntrinsicMetric.
func (n *Node) IntrinsicSize() layout.Size { return n.intrinsic }

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in n's subtree with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Len returns the number of nodes in n's subtree, n included.
func (n *Node) Len() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
