package visit

import "github.com/relquery/relquery/ast"

// Predicate reports whether a Segment is the one a sub-visitor is looking for.
type Predicate func(ast.Segment) bool

// MatchHooks is implemented by renderers that embed a FilteredVisitor or a
// ForwardingVisitor. EnterMatched/LeaveMatched bracket the matched segment
// itself; EnterNested/LeaveNested bracket everything beneath it that the
// sub-visitor chooses to observe directly rather than delegate to a
// further pushed child.
type MatchHooks interface {
	EnterMatched(seg ast.Segment)
	LeaveMatched(seg ast.Segment)
	EnterNested(seg ast.Segment)
	LeaveNested(seg ast.Segment)
}

// FilteredVisitor is the "single-match" template: it matches exactly one
// Segment against a predicate, then pops itself once that segment's Leave
// event arrives.
type FilteredVisitor struct {
	d         *Dispatcher
	predicate Predicate
	outer     MatchHooks
	current   ast.Segment
}

// NewFilteredVisitor constructs a FilteredVisitor. outer receives the
// match/nested hooks and is typically the renderer embedding this visitor.
// When outer is itself an ast.Visitor, it is the identity pushed onto and
// popped from d; otherwise the FilteredVisitor itself is.
func NewFilteredVisitor(d *Dispatcher, predicate Predicate, outer MatchHooks) *FilteredVisitor {
	return &FilteredVisitor{d: d, predicate: predicate, outer: outer}
}

// self returns the identity this visitor occupies on the Dispatcher stack.
func (f *FilteredVisitor) self() ast.Visitor {
	if v, ok := f.outer.(ast.Visitor); ok {
		return v
	}
	return f
}

// Enter implements ast.Visitor.
func (f *FilteredVisitor) Enter(seg ast.Segment) {
	if f.current == nil {
		if !f.predicate(seg) {
			f.d.Pop(f.self())
			f.d.Enter(seg)
			return
		}
		f.current = seg
		f.outer.EnterMatched(seg)
		return
	}
	f.outer.EnterNested(seg)
}

// Leave implements ast.Visitor.
func (f *FilteredVisitor) Leave(seg ast.Segment) {
	if f.current != nil && seg == f.current {
		f.outer.LeaveMatched(seg)
		f.d.Pop(f.self())
		return
	}
	f.outer.LeaveNested(seg)
}
