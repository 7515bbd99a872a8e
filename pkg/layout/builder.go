package layout

import (
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/autolayout/pkg/errors"
	"github.com/matzehuels/autolayout/pkg/observability"
)

// Builder creates constraints and installs them in a Solver.
//
// A Builder carries the ambient priority for the constraints it creates.
// WithPriority never mutates its receiver: it hands a derived Builder to the
// scoped block, so nesting and early returns restore the outer priority
// automatically and goroutines holding different Builders never observe each
// other's scope. A single Builder is not safe for concurrent use unless its
// Solver is.
type Builder struct {
	solver    Solver
	direction Direction
	priority  Priority
	scoped    bool
	logger    *log.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithDirection sets the layout direction used for elements that don't
// implement Directional. The default is left-to-right.
func WithDirection(d Direction) Option {
	return func(b *Builder) { b.direction = d }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a Builder that installs constraints into s.
func New(s Solver, opts ...Option) *Builder {
	b := &Builder{
		solver:    s,
		direction: DirectionLeftToRight,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Solver returns the solver constraints are installed into.
func (b *Builder) Solver() Solver { return b.solver }

// Priority returns the active scoped priority, if any.
func (b *Builder) Priority() (Priority, bool) {
	return b.priority, b.scoped
}

// WithPriority calls fn with a Builder whose constraints default to p.
// The receiver keeps its own priority; only constraints created through the
// Builder passed to fn are affected. Constraints installed directly on the
// solver inside fn are not.
func (b *Builder) WithPriority(p Priority, fn func(*Builder) error) error {
	if err := errs.ValidatePriority(float64(p)); err != nil {
		return err
	}
	scoped := *b
	scoped.priority = p
	scoped.scoped = true
	return fn(&scoped)
}

// Direction returns the layout direction that applies to e at this moment.
func (b *Builder) Direction(e Element) Direction {
	if d, ok := e.(Directional); ok {
		return d.LayoutDirection()
	}
	return b.direction
}

func (b *Builder) effectivePriority() Priority {
	if b.scoped {
		return b.priority
	}
	return DefaultPriority
}

// =============================================================================
// Constraint Options
// =============================================================================

// ConstraintOption adjusts a single constraint built by a convenience method.
type ConstraintOption func(*constraintConfig)

type constraintConfig struct {
	relation   Relation
	multiplier float64
	offset     float64
}

func newConstraintConfig(opts []ConstraintOption) constraintConfig {
	c := constraintConfig{relation: RelationEqual, multiplier: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithOffset sets the constant added to the right-hand side.
func WithOffset(v float64) ConstraintOption {
	return func(c *constraintConfig) { c.offset = v }
}

// WithRelation turns the constraint into a bound.
func WithRelation(r Relation) ConstraintOption {
	return func(c *constraintConfig) { c.relation = r }
}

// WithMultiplier scales the right-hand side attribute.
func WithMultiplier(m float64) ConstraintOption {
	return func(c *constraintConfig) { c.multiplier = m }
}

// =============================================================================
// Primitives
// =============================================================================

// Install registers a fully resolved descriptor. The host is d.Item for
// constant constraints and the nearest common ancestor of d.Item and
// d.ToItem otherwise. A zero d.Priority takes the active scoped priority, or
// DefaultPriority outside any scope. A zero d.Multiplier on a two-item
// constraint defaults to 1.
func (b *Builder) Install(d Descriptor) (Handle, error) {
	if d.Priority == 0 {
		d.Priority = b.effectivePriority()
	}
	if !d.IsConstant() && d.Multiplier == 0 {
		d.Multiplier = 1
	}
	h, err := b.install(d)
	observability.Constraints().OnInstall(d.Attr.String(), float64(d.Priority), err)
	return h, err
}

func (b *Builder) install(d Descriptor) (Handle, error) {
	if isNil(d.Item) {
		return Handle{}, errs.New(errs.ErrCodeInvalidInput, "constraint without an item")
	}
	if !d.Relation.valid() {
		return Handle{}, errs.New(errs.ErrCodeInvalidInput, "unknown relation %d", int(d.Relation))
	}
	if err := errs.ValidateFinite("constant", d.Constant); err != nil {
		return Handle{}, err
	}
	if err := errs.ValidateFinite("multiplier", d.Multiplier); err != nil {
		return Handle{}, err
	}
	if err := errs.ValidatePriority(float64(d.Priority)); err != nil {
		return Handle{}, err
	}

	host := d.Item
	if !d.IsConstant() {
		var err error
		if host, err = CommonAncestor(d.Item, d.ToItem); err != nil {
			return Handle{}, err
		}
	}

	token, err := b.solver.Install(host, d)
	if err != nil {
		return Handle{}, errs.Wrap(errs.ErrCodeSolverRejected, err, "install %s", d)
	}
	b.logger.Debug("installed constraint", "constraint", d.String(), "host", describe(host))
	return NewHandle(b.solver, token), nil
}

// Constrain is the general primitive every convenience method derives from:
//
//	item.attr  rel  toItem.toAttr * multiplier + constant
//
// Pass a nil toItem and toAttr for a constant constraint.
//
// Constraints written in terms of leading and trailing edges are expressed
// in reading-direction coordinates. Under a right-to-left direction the
// constant is negated and inequalities flip when the attributes are resolved
// to left and right, so "trailing of a == leading of b + 8" keeps meaning
// "8 points after b" in either direction. Mixing leading/trailing with
// left/right in one constraint is rejected.
func (b *Builder) Constrain(item Element, attr Attribute, rel Relation, toItem Element, toAttr Attribute, multiplier, constant float64) (Handle, error) {
	if isNil(item) || attr == nil {
		return Handle{}, errs.New(errs.ErrCodeInvalidInput, "constraint without an item or attribute")
	}
	dir := b.Direction(item)
	native, err := attr.Resolve(dir)
	if err != nil {
		return Handle{}, err
	}

	d := Descriptor{
		Item:       item,
		Attr:       native,
		Relation:   rel,
		ToItem:     toItem,
		Multiplier: multiplier,
		Constant:   constant,
	}
	if toItem != nil {
		if toAttr == nil {
			return Handle{}, errs.New(errs.ErrCodeInvalidInput, "constraint to %s without an attribute", describe(toItem))
		}
		if d.ToAttr, err = toAttr.Resolve(dir); err != nil {
			return Handle{}, err
		}
		flip, err := readingDirectionFlip(attr, toAttr, dir)
		if err != nil {
			return Handle{}, err
		}
		if flip {
			d.Constant = -d.Constant
			d.Relation = d.Relation.Inverse()
		}
	}
	return b.Install(d)
}

// readingDirectionFlip reports whether a constraint between attr and toAttr
// has to be mirrored to stay meaningful under dir.
func readingDirectionFlip(attr, toAttr Attribute, dir Direction) (bool, error) {
	da, db := isDirectionalEdge(attr), isDirectionalEdge(toAttr)
	if !da && !db {
		return false, nil
	}
	if isAbsoluteHorizontalEdge(attr) || isAbsoluteHorizontalEdge(toAttr) {
		return false, errs.New(errs.ErrCodeInvalidInput, "cannot relate %s to %s: mixes reading-direction and absolute edges", attr, toAttr)
	}
	rtl, err := isRightToLeft(dir)
	if err != nil {
		return false, err
	}
	return rtl, nil
}

func isDirectionalEdge(a Attribute) bool {
	e, ok := a.(Edge)
	return ok && e.IsDirectional()
}

func isAbsoluteHorizontalEdge(a Attribute) bool {
	e, ok := a.(Edge)
	return ok && (e == EdgeLeft || e == EdgeRight)
}

// =============================================================================
// Composites
// =============================================================================

// collector accumulates the handles of a composite operation.
type collector struct {
	handles []Handle
}

func (c *collector) add(h Handle, err error) error {
	if err != nil {
		return err
	}
	c.handles = append(c.handles, h)
	return nil
}

func (c *collector) addAll(hs []Handle, err error) error {
	if err != nil {
		return err
	}
	c.handles = append(c.handles, hs...)
	return nil
}

// composite runs fn and returns everything it installed. Composites are
// all-or-nothing: when fn fails, the constraints it already installed are
// removed before the error is returned.
func (b *Builder) composite(op string, fn func(c *collector) error) ([]Handle, error) {
	c := &collector{handles: []Handle{}}
	if err := fn(c); err != nil {
		if n := RemoveAll(c.handles); n > 0 {
			b.logger.Warn("rolled back partial constraint set", "op", op, "removed", n, "err", err)
			observability.Constraints().OnRollback(op, n)
		}
		return nil, err
	}
	return c.handles, nil
}
