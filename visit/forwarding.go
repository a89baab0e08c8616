package visit

import "github.com/relquery/relquery/ast"

// ForwardingVisitor is the "while-matches" template: like FilteredVisitor,
// but after a match completes it stays on the stack instead of popping,
// ready to match the next sibling. It relinquishes control only when a
// Leave event arrives with no match active, signalling that the parent's
// own subtree is finished.
type ForwardingVisitor struct {
	d         *Dispatcher
	predicate Predicate
	outer     MatchHooks
	current   ast.Segment
}

// NewForwardingVisitor constructs a ForwardingVisitor. As with
// NewFilteredVisitor, an outer that is itself an ast.Visitor is the identity
// pushed onto and popped from d; otherwise the ForwardingVisitor itself is.
func NewForwardingVisitor(d *Dispatcher, predicate Predicate, outer MatchHooks) *ForwardingVisitor {
	return &ForwardingVisitor{d: d, predicate: predicate, outer: outer}
}

// self returns the identity this visitor occupies on the Dispatcher stack.
func (f *ForwardingVisitor) self() ast.Visitor {
	if v, ok := f.outer.(ast.Visitor); ok {
		return v
	}
	return f
}

// Enter implements ast.Visitor.
func (f *ForwardingVisitor) Enter(seg ast.Segment) {
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
func (f *ForwardingVisitor) Leave(seg ast.Segment) {
	if f.current != nil && seg == f.current {
		f.outer.LeaveMatched(seg)
		f.current = nil
		return
	}
	if f.current != nil {
		f.outer.LeaveNested(seg)
		return
	}
	// No current match: this Leave belongs to our parent's own subtree.
	f.d.Pop(f.self())
	f.d.Leave(seg)
}
