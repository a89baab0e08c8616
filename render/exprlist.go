package render

import (
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// exprListRenderer renders a comma-joined run of sibling expressions. It
// serves two roles: the projection's select-list (inProjection=true,
// pushed by selectListRenderer) and a SimpleFunction's argument list
// (inProjection=false, pushed from within exprWriter itself) — the
// "dedicated function-argument renderer" alternative to a flat "inside
// function" flag.
type exprListRenderer struct {
	d  *visit.Dispatcher
	fv *visit.ForwardingVisitor
	w  exprWriter

	parts []string
}

func newExprListRenderer(d *visit.Dispatcher, inProjection bool) *exprListRenderer {
	r := &exprListRenderer{d: d}
	r.w = exprWriter{d: d, inProjection: inProjection}
	r.fv = visit.NewForwardingVisitor(d, isExpression, r)
	return r
}

func (r *exprListRenderer) Enter(seg ast.Segment) { r.fv.Enter(seg) }
func (r *exprListRenderer) Leave(seg ast.Segment) { r.fv.Leave(seg) }

func (r *exprListRenderer) EnterMatched(seg ast.Segment) {
	r.w.reset()
	r.w.enter(seg)
}

func (r *exprListRenderer) LeaveMatched(seg ast.Segment) {
	r.w.leave(seg)
	r.parts = append(r.parts, r.w.result())
}

func (r *exprListRenderer) EnterNested(seg ast.Segment) { r.w.enter(seg) }
func (r *exprListRenderer) LeaveNested(seg ast.Segment) { r.w.leave(seg) }

// RenderedPart returns the comma-joined rendering of every matched sibling.
func (r *exprListRenderer) RenderedPart() string {
	return strings.Join(r.parts, ", ")
}
