package render

import (
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// joinRenderer matches each Join in a Select's ordered Joins list. For each
// match it pushes two renderers, in reverse of Join.Children order (table,
// then condition), so the table renderer ends on top and matches first.
type joinRenderer struct {
	d     *visit.Dispatcher
	fv    *visit.ForwardingVisitor
	table *joinTableRenderer
	cond  *conditionRenderer
	parts []string
}

func newJoinRenderer(d *visit.Dispatcher) *joinRenderer {
	r := &joinRenderer{d: d}
	r.fv = visit.NewForwardingVisitor(d, isJoin, r)
	return r
}

func (r *joinRenderer) Enter(seg ast.Segment) { r.fv.Enter(seg) }
func (r *joinRenderer) Leave(seg ast.Segment) { r.fv.Leave(seg) }

func (r *joinRenderer) EnterMatched(seg ast.Segment) {
	r.table = newJoinTableRenderer(r.d)
	r.cond = newConditionRenderer(r.d)
	r.d.Push(r.cond)
	r.d.Push(r.table)
}

func (r *joinRenderer) LeaveMatched(seg ast.Segment) {
	j := seg.(*ast.Join)
	r.parts = append(r.parts, j.Type.String()+" "+r.table.RenderedPart()+" ON "+r.cond.RenderedPart())
}

func (r *joinRenderer) EnterNested(ast.Segment) {}
func (r *joinRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns each join, space-prefixed, concatenated in order.
func (r *joinRenderer) RenderedPart() string {
	if len(r.parts) == 0 {
		return ""
	}
	return " " + strings.Join(r.parts, " ")
}

// joinTableRenderer matches a Join's table child directly and renders its
// "name[ AS alias]" fragment.
type joinTableRenderer struct {
	d    *visit.Dispatcher
	f    *visit.FilteredVisitor
	frag string
}

func newJoinTableRenderer(d *visit.Dispatcher) *joinTableRenderer {
	r := &joinTableRenderer{d: d}
	r.f = visit.NewFilteredVisitor(d, isTableExpression, r)
	return r
}

func (r *joinTableRenderer) Enter(seg ast.Segment) { r.f.Enter(seg) }
func (r *joinTableRenderer) Leave(seg ast.Segment) { r.f.Leave(seg) }

func (r *joinTableRenderer) EnterMatched(seg ast.Segment) {
	r.frag = tableFragment(seg.(ast.TableExpression))
}

func (r *joinTableRenderer) LeaveMatched(ast.Segment) {}
func (r *joinTableRenderer) EnterNested(ast.Segment)  {}
func (r *joinTableRenderer) LeaveNested(ast.Segment)  {}

// RenderedPart returns the rendered table fragment.
func (r *joinTableRenderer) RenderedPart() string { return r.frag }
