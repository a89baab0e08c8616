package render

import "github.com/relquery/relquery/ast"

func isSelect(seg ast.Segment) bool {
	_, ok := seg.(*ast.Select)
	return ok
}

func isSelectList(seg ast.Segment) bool {
	_, ok := seg.(*ast.SelectList)
	return ok
}

func isFrom(seg ast.Segment) bool {
	_, ok := seg.(*ast.From)
	return ok
}

func isJoin(seg ast.Segment) bool {
	_, ok := seg.(*ast.Join)
	return ok
}

func isWhere(seg ast.Segment) bool {
	_, ok := seg.(*ast.Where)
	return ok
}

func isOrderByField(seg ast.Segment) bool {
	_, ok := seg.(*ast.OrderByField)
	return ok
}

func isExpression(seg ast.Segment) bool {
	_, ok := seg.(ast.Expression)
	return ok
}

func isCondition(seg ast.Segment) bool {
	_, ok := seg.(ast.Condition)
	return ok
}

func isTableExpression(seg ast.Segment) bool {
	_, ok := seg.(ast.TableExpression)
	return ok
}
