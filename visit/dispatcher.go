// Package visit implements the stack-based visitor core used to render an
// ast.Select: a delegating Dispatcher, plus the FilteredVisitor and
// ForwardingVisitor sub-visitor templates renderers compose from.
package visit

import "github.com/relquery/relquery/ast"

// Dispatcher is a stack-based ast.Visitor: every Enter/Leave event it
// receives is forwarded to whichever visitor is currently on top of its
// stack. Sub-visitors push themselves to take over dispatch for a subtree
// and pop themselves when done.
type Dispatcher struct {
	stack []ast.Visitor
}

// NewDispatcher returns an empty Dispatcher. Callers must Push a root
// visitor before walking a tree with it.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Enter forwards to the current top of the stack.
func (d *Dispatcher) Enter(seg ast.Segment) {
	d.top().Enter(seg)
}

// Leave forwards to the current top of the stack.
func (d *Dispatcher) Leave(seg ast.Segment) {
	d.top().Leave(seg)
}

// Push installs v as the new top of the stack; it receives every
// subsequent Enter/Leave event until it pops itself.
func (d *Dispatcher) Push(v ast.Visitor) {
	if v == nil {
		panic(ast.NewInvariantViolation("Dispatcher.Push", "visitor must not be nil"))
	}
	d.stack = append(d.stack, v)
}

// Pop removes the caller's own frame from the stack. requester must be the
// current top; a mismatch means the stack discipline was violated and is
// reported as an InvariantViolation rather than silently accepted.
func (d *Dispatcher) Pop(requester ast.Visitor) {
	if len(d.stack) == 0 {
		panic(ast.NewInvariantViolation("Dispatcher.Pop", "pop on empty stack"))
	}
	top := d.stack[len(d.stack)-1]
	if top != requester {
		panic(ast.NewInvariantViolation("Dispatcher.Pop", "caller is not the current top of stack"))
	}
	d.stack = d.stack[:len(d.stack)-1]
}

func (d *Dispatcher) top() ast.Visitor {
	if len(d.stack) == 0 {
		panic(ast.NewInvariantViolation("Dispatcher", "no visitor on stack"))
	}
	return d.stack[len(d.stack)-1]
}
