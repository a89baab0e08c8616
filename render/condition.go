package render

import (
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// conditionRenderer matches a single Condition and renders it per the
// operand table: it pushes one sub-renderer per operand, in reverse of
// Children() order, so operands pop and render in their natural left-to-
// right visit order.
type conditionRenderer struct {
	d *visit.Dispatcher
	f *visit.FilteredVisitor

	result string

	leftCond, rightCond *conditionRenderer
	nested              *conditionRenderer
	left, right         *expressionRenderer
	rights              []*expressionRenderer
	expr                *expressionRenderer
}

func newConditionRenderer(d *visit.Dispatcher) *conditionRenderer {
	r := &conditionRenderer{d: d}
	r.f = visit.NewFilteredVisitor(d, isCondition, r)
	return r
}

func (r *conditionRenderer) Enter(seg ast.Segment) { r.f.Enter(seg) }
func (r *conditionRenderer) Leave(seg ast.Segment) { r.f.Leave(seg) }

func (r *conditionRenderer) EnterMatched(seg ast.Segment) {
	switch n := seg.(type) {
	case ast.MultipleCondition:
		r.leftCond = newConditionRenderer(r.d)
		r.rightCond = newConditionRenderer(r.d)
		r.d.Push(r.rightCond)
		r.d.Push(r.leftCond)
	case *ast.IsNullCondition:
		r.expr = newExpressionRenderer(r.d)
		r.d.Push(r.expr)
	case *ast.EqualsCondition:
		r.left = newExpressionRenderer(r.d)
		r.right = newExpressionRenderer(r.d)
		r.d.Push(r.right)
		r.d.Push(r.left)
	case *ast.InCondition:
		r.left = newExpressionRenderer(r.d)
		r.rights = make([]*expressionRenderer, len(n.Rights))
		for i := range n.Rights {
			r.rights[i] = newExpressionRenderer(r.d)
		}
		for i := len(r.rights) - 1; i >= 0; i-- {
			r.d.Push(r.rights[i])
		}
		r.d.Push(r.left)
	case *ast.ConditionGroup:
		r.nested = newConditionRenderer(r.d)
		r.d.Push(r.nested)
	case *ast.ConstantCondition:
		// nothing to push; rendered verbatim at LeaveMatched.
	default:
		reportUnsupported("condition", seg)
	}
}

func (r *conditionRenderer) LeaveMatched(seg ast.Segment) {
	switch n := seg.(type) {
	case *ast.AndCondition:
		r.result = r.leftCond.RenderedPart() + " AND " + r.rightCond.RenderedPart()
	case *ast.OrCondition:
		r.result = "(" + r.leftCond.RenderedPart() + " OR " + r.rightCond.RenderedPart() + ")"
	case *ast.IsNullCondition:
		if n.Negated {
			r.result = r.expr.RenderedPart() + " IS NOT NULL"
		} else {
			r.result = r.expr.RenderedPart() + " IS NULL"
		}
	case *ast.EqualsCondition:
		r.result = r.left.RenderedPart() + " = " + r.right.RenderedPart()
	case *ast.InCondition:
		parts := make([]string, len(r.rights))
		for i, rr := range r.rights {
			parts[i] = rr.RenderedPart()
		}
		r.result = r.left.RenderedPart() + " IN (" + strings.Join(parts, ", ") + ")"
	case *ast.ConditionGroup:
		r.result = "(" + r.nested.RenderedPart() + ")"
	case *ast.ConstantCondition:
		r.result = n.Raw
	}
}

// EnterNested/LeaveNested are unreachable: every operand is delegated to a
// pushed sub-renderer that matches it directly.
func (r *conditionRenderer) EnterNested(ast.Segment) {}
func (r *conditionRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns the rendered condition text.
func (r *conditionRenderer) RenderedPart() string { return r.result }
