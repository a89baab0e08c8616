package render

import (
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// exprWriter accumulates the text for a single expression value. It is
// embedded by both expressionRenderer (a single match) and exprListRenderer
// (a forwarding run of sibling matches), which is how a SimpleFunction's
// argument list and a projection's column list share the same rendering
// logic.
//
// inProjection controls the one place behavior differs: whether an
// AliasedColumn match appends " AS alias" (projection) or renders only its
// qualified reference name (everywhere else — data-model invariant 3).
type exprWriter struct {
	d            *visit.Dispatcher
	inProjection bool

	buf          strings.Builder
	pendingAlias string

	funcChildren []*exprListRenderer
	subChildren  []*statementRenderer
}

func (w *exprWriter) reset() {
	w.buf.Reset()
	w.pendingAlias = ""
}

func (w *exprWriter) result() string {
	if w.pendingAlias != "" {
		return w.buf.String() + " AS " + w.pendingAlias
	}
	return w.buf.String()
}

func qualify(t ast.TableExpression) string {
	if t == nil {
		return ""
	}
	return t.ReferenceName() + "."
}

func (w *exprWriter) enter(seg ast.Segment) {
	switch n := seg.(type) {
	case *ast.Column:
		w.buf.WriteString(qualify(n.Table))
		w.buf.WriteString(n.Name)
	case *ast.AliasedColumn:
		w.buf.WriteString(qualify(n.Table))
		if w.inProjection {
			w.buf.WriteString(n.Name)
			w.pendingAlias = n.AliasValue
		} else {
			w.buf.WriteString(n.AliasValue)
		}
	case *ast.Table:
		w.buf.WriteString(n.Name)
	case *ast.AliasedTable:
		w.buf.WriteString(n.AliasValue)
	case *ast.BindMarker:
		w.buf.WriteString("?")
	case *ast.NamedBindMarker:
		w.buf.WriteString(":" + n.Name)
	case *ast.JustExpression:
		w.buf.WriteString(n.Text)
	case *ast.SimpleFunction:
		validateFunctionName(n.Name)
		w.buf.WriteString(n.Name)
		w.buf.WriteString("(")
		child := newExprListRenderer(w.d, false)
		w.funcChildren = append(w.funcChildren, child)
		w.d.Push(child)
	case *ast.SubselectExpression:
		sub := newStatementRenderer(w.d)
		w.subChildren = append(w.subChildren, sub)
		w.d.Push(sub)
	default:
		// A Condition used as a function argument would also land here,
		// but SimpleFunction.Args is typed []Expression so that can never
		// happen with this tree's node shapes; reportUnsupported covers
		// it the same as any other unrecognized Expression kind.
		reportUnsupported("expression", seg)
	}
}

func (w *exprWriter) leave(seg ast.Segment) {
	switch seg.(type) {
	case *ast.SimpleFunction:
		n := len(w.funcChildren) - 1
		child := w.funcChildren[n]
		w.funcChildren = w.funcChildren[:n]
		w.buf.WriteString(child.RenderedPart())
		w.buf.WriteString(")")
	case *ast.SubselectExpression:
		n := len(w.subChildren) - 1
		sub := w.subChildren[n]
		w.subChildren = w.subChildren[:n]
		w.buf.WriteString(sub.RenderedPart())
	}
}
