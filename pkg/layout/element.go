package layout

import (
	"fmt"
	"reflect"

	errs "github.com/matzehuels/autolayout/pkg/errors"
)

// Element is a node in the host's visual tree. The tree is owned and
// maintained by the host; this package only reads it.
//
// Elements are compared with ==, so implementations must use comparable
// dynamic types (pointers in practice). Parent must return an untyped nil
// for the root, not a nil pointer wrapped in the interface. A nil pointer
// passed as an element is rejected with INVALID_INPUT.
type Element interface {
	Parent() Element
	Children() []Element
}

// Directional is implemented by elements that know their own layout
// direction. Elements that don't implement it use the builder's default.
type Directional interface {
	LayoutDirection() Direction
}

// CommonAncestor returns the nearest element that is an ancestor of (or
// equal to) both a and b. Constraints between a and b must be registered
// with this element.
func CommonAncestor(a, b Element) (Element, error) {
	if isNil(a) || isNil(b) {
		return nil, errs.New(errs.ErrCodeInvalidInput, "common ancestor of nil element")
	}
	if a == b {
		return a, nil
	}

	chain := make(map[Element]struct{})
	for e := a; e != nil; e = e.Parent() {
		chain[e] = struct{}{}
	}
	for e := b; e != nil; e = e.Parent() {
		if _, ok := chain[e]; ok {
			return e, nil
		}
	}
	return nil, errs.New(errs.ErrCodeNoCommonAncestor, "%s and %s share no common ancestor", describe(a), describe(b))
}

// CommonAncestorOf folds CommonAncestor across elements. It fails with
// INSUFFICIENT_ELEMENTS for an empty list.
func CommonAncestorOf(elements []Element) (Element, error) {
	if len(elements) == 0 {
		return nil, errs.New(errs.ErrCodeInsufficientElements, "no elements")
	}
	common := elements[0]
	if isNil(common) {
		return nil, errs.New(errs.ErrCodeInvalidInput, "element 0 is nil")
	}
	for _, e := range elements[1:] {
		var err error
		if common, err = CommonAncestor(common, e); err != nil {
			return nil, err
		}
	}
	return common, nil
}

// IsAncestor reports whether ancestor is e or one of e's ancestors.
func IsAncestor(ancestor, e Element) bool {
	if ancestor == nil {
		return false
	}
	for ; e != nil; e = e.Parent() {
		if e == ancestor {
			return true
		}
	}
	return false
}

// Walk calls fn for root and every descendant in depth-first pre-order.
// Returning false from fn skips that element's children.
func Walk(root Element, fn func(Element) bool) {
	if root == nil {
		return
	}
	stack := []Element{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(e) {
			continue
		}
		kids := e.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

func parentOf(e Element) (Element, error) {
	if isNil(e) {
		return nil, errs.New(errs.ErrCodeInvalidInput, "nil element")
	}
	p := e.Parent()
	if p == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "%s has no parent", describe(e))
	}
	return p, nil
}

// isNil reports whether e is nil or a nil pointer held in the interface.
func isNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// describe returns a short label for log lines and error messages.
func describe(e Element) string {
	if isNil(e) {
		return "<nil>"
	}
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T@%p", e, e)
}
