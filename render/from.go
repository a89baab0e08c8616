package render

import (
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// fromRenderer matches the optional From child of a Select and pushes a
// fromTableRenderer to comma-join its tables. It is built on a
// ForwardingVisitor rather than a FilteredVisitor even though a Select has
// at most one From: only the forwarding template's Leave handling correctly
// relinquishes the stack when From is absent instead of swallowing the
// Select's own Leave event.
type fromRenderer struct {
	d      *visit.Dispatcher
	fv     *visit.ForwardingVisitor
	tables *fromTableRenderer
	part   string
}

func newFromRenderer(d *visit.Dispatcher) *fromRenderer {
	r := &fromRenderer{d: d}
	r.fv = visit.NewForwardingVisitor(d, isFrom, r)
	return r
}

func (r *fromRenderer) Enter(seg ast.Segment) { r.fv.Enter(seg) }
func (r *fromRenderer) Leave(seg ast.Segment) { r.fv.Leave(seg) }

func (r *fromRenderer) EnterMatched(seg ast.Segment) {
	r.tables = newFromTableRenderer(r.d)
	r.d.Push(r.tables)
}

func (r *fromRenderer) LeaveMatched(seg ast.Segment) {
	r.part = " FROM " + r.tables.RenderedPart()
}

func (r *fromRenderer) EnterNested(ast.Segment) {}
func (r *fromRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns "" when From was absent, else " FROM ...".
func (r *fromRenderer) RenderedPart() string { return r.part }

// fromTableRenderer comma-joins the "name[ AS alias]" fragments of each
// table in a From clause.
type fromTableRenderer struct {
	d     *visit.Dispatcher
	fv    *visit.ForwardingVisitor
	parts []string
}

func newFromTableRenderer(d *visit.Dispatcher) *fromTableRenderer {
	r := &fromTableRenderer{d: d}
	r.fv = visit.NewForwardingVisitor(d, isTableExpression, r)
	return r
}

func (r *fromTableRenderer) Enter(seg ast.Segment) { r.fv.Enter(seg) }
func (r *fromTableRenderer) Leave(seg ast.Segment) { r.fv.Leave(seg) }

func (r *fromTableRenderer) EnterMatched(seg ast.Segment) {
	r.parts = append(r.parts, tableFragment(seg.(ast.TableExpression)))
}

func (r *fromTableRenderer) LeaveMatched(ast.Segment) {}
func (r *fromTableRenderer) EnterNested(ast.Segment)  {}
func (r *fromTableRenderer) LeaveNested(ast.Segment)  {}

// RenderedPart returns the comma-joined table fragments.
func (r *fromTableRenderer) RenderedPart() string { return strings.Join(r.parts, ", ") }

func tableFragment(t ast.TableExpression) string {
	switch n := t.(type) {
	case *ast.Table:
		return n.Name
	case *ast.AliasedTable:
		return n.Table.Name + " AS " + n.AliasValue
	default:
		reportUnsupported("table", t)
		return ""
	}
}
