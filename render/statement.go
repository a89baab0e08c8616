package render

import (
	"strconv"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// statementRenderer matches the top-level Select and assembles the final
// SQL text from its pushed sub-renderers. It pushes renderers for the
// select-list, from, joins, where, and order-by clauses in reverse of their
// syntactic order, so the select-list renderer ends on top of the stack and
// handles Select's first child.
type statementRenderer struct {
	d *visit.Dispatcher
	f *visit.FilteredVisitor

	list    *selectListRenderer
	from    *fromRenderer
	joins   *joinRenderer
	where   *whereRenderer
	orderBy *orderByRenderer

	result string
}

func newStatementRenderer(d *visit.Dispatcher) *statementRenderer {
	r := &statementRenderer{d: d}
	r.f = visit.NewFilteredVisitor(d, isSelect, r)
	return r
}

func (r *statementRenderer) Enter(seg ast.Segment) { r.f.Enter(seg) }
func (r *statementRenderer) Leave(seg ast.Segment) { r.f.Leave(seg) }

func (r *statementRenderer) EnterMatched(seg ast.Segment) {
	r.orderBy = newOrderByRenderer(r.d)
	r.where = newWhereRenderer(r.d)
	r.joins = newJoinRenderer(r.d)
	r.from = newFromRenderer(r.d)
	r.list = newSelectListRenderer(r.d)

	r.d.Push(r.orderBy)
	r.d.Push(r.where)
	r.d.Push(r.joins)
	r.d.Push(r.from)
	r.d.Push(r.list)
}

func (r *statementRenderer) LeaveMatched(seg ast.Segment) {
	s := seg.(*ast.Select)

	out := "SELECT "
	if s.Distinct {
		out += "DISTINCT "
	}
	out += r.list.RenderedPart()
	out += r.from.RenderedPart()
	out += r.joins.RenderedPart()
	out += r.where.RenderedPart()
	out += r.orderBy.RenderedPart()
	if s.Limit != nil {
		out += " LIMIT " + strconv.Itoa(*s.Limit)
	}
	if s.Offset != nil {
		out += " OFFSET " + strconv.Itoa(*s.Offset)
	}

	r.result = out
}

// EnterNested/LeaveNested are unreachable: every child of Select is
// delegated to one of the pushed clause renderers.
func (r *statementRenderer) EnterNested(ast.Segment) {}
func (r *statementRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns the complete rendered SQL statement.
func (r *statementRenderer) RenderedPart() string { return r.result }
