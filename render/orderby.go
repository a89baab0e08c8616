package render

import (
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// orderByRenderer matches every OrderByField in a Select's ordered OrderBy
// list and comma-joins their rendered fragments under a single " ORDER BY "
// prefix.
type orderByRenderer struct {
	d     *visit.Dispatcher
	fv    *visit.ForwardingVisitor
	field string
	parts []string
}

func newOrderByRenderer(d *visit.Dispatcher) *orderByRenderer {
	r := &orderByRenderer{d: d}
	r.fv = visit.NewForwardingVisitor(d, isOrderByField, r)
	return r
}

func (r *orderByRenderer) Enter(seg ast.Segment) { r.fv.Enter(seg) }
func (r *orderByRenderer) Leave(seg ast.Segment) { r.fv.Leave(seg) }

func (r *orderByRenderer) EnterMatched(seg ast.Segment) { r.field = "" }

func (r *orderByRenderer) LeaveMatched(seg ast.Segment) {
	f := seg.(*ast.OrderByField)
	switch f.Direction {
	case ast.Asc:
		r.field += " ASC"
	case ast.Desc:
		r.field += " DESC"
	}
	r.parts = append(r.parts, r.field)
}

// EnterNested reads the nested Column's unqualified reference name directly;
// order-by fields never carry a table qualifier.
func (r *orderByRenderer) EnterNested(seg ast.Segment) {
	if col, ok := seg.(*ast.Column); ok {
		r.field = col.ReferenceName()
	}
}

func (r *orderByRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns "" when OrderBy was empty, else " ORDER BY ...".
func (r *orderByRenderer) RenderedPart() string {
	if len(r.parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(r.parts, ", ")
}
