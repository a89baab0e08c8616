package ast

import "testing"

// --- Segment.Walk visits every node exactly once ---

type countingVisitor struct {
	enters map[Segment]int
	leaves map[Segment]int
	order  []string
}

func newCountingVisitor() *countingVisitor {
	return &countingVisitor{enters: map[Segment]int{}, leaves: map[Segment]int{}}
}

func (v *countingVisitor) Enter(seg Segment) {
	v.enters[seg]++
	v.order = append(v.order, "enter")
}

func (v *countingVisitor) Leave(seg Segment) {
	v.leaves[seg]++
	v.order = append(v.order, "leave")
}

func TestSelectWalkVisitsEveryNodeExactlyOnce(t *testing.T) {
	t.Parallel()

	employee := NewTable("employee")
	col := employee.Column("id")
	sel := NewSelect(NewSelectList(col))
	sel.From = NewFrom(employee)

	v := newCountingVisitor()
	sel.Walk(v)

	for _, seg := range []Segment{sel, sel.List, sel.From, col} {
		if v.enters[seg] != 1 {
			t.Errorf("enters[%T] = %d, want 1", seg, v.enters[seg])
		}
		if v.leaves[seg] != 1 {
			t.Errorf("leaves[%T] = %d, want 1", seg, v.leaves[seg])
		}
	}
}

func TestSelectChildrenOrder(t *testing.T) {
	t.Parallel()

	employee := NewTable("employee")
	dept := NewTable("department")
	col := employee.Column("id")
	join := NewJoin(InnerJoin, dept, NewEquals(employee.Column("dept_id"), dept.Column("id")))
	where := NewWhere(NewIsNull(employee.Column("manager_id"), false))
	order := NewOrderByField(employee.Column("name"), Asc)

	sel := NewSelect(NewSelectList(col))
	sel.From = NewFrom(employee)
	sel.Joins = []*Join{join}
	sel.Where = where
	sel.OrderBy = []*OrderByField{order}

	children := sel.Children()
	want := []Segment{sel.List, sel.From, join, where, order}
	if len(children) != len(want) {
		t.Fatalf("len(children) = %d, want %d", len(children), len(want))
	}
	for i, c := range children {
		if c != want[i] {
			t.Errorf("children[%d] = %T, want %T", i, c, want[i])
		}
	}
}

func TestSelectChildrenOmitsLimitAndOffset(t *testing.T) {
	t.Parallel()

	employee := NewTable("employee")
	sel := NewSelect(NewSelectList(employee.Column("id")))
	limit, offset := 10, 5
	sel.Limit = &limit
	sel.Offset = &offset

	children := sel.Children()
	if len(children) != 1 || children[0] != sel.List {
		t.Fatalf("Limit/Offset leaked into Children(): %v", children)
	}
}

// --- constructors reject invalid arguments ---

func TestNewTableRejectsEmptyName(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NewTable(\"\") did not panic")
		}
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("recovered %T, want *Error", r)
		}
		if err.Kind != InvalidArgument {
			t.Errorf("Kind = %v, want InvalidArgument", err.Kind)
		}
	}()
	NewTable("")
}

func TestNewInRejectsEmptyRights(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NewIn with no rights did not panic")
		}
	}()
	employee := NewTable("employee")
	NewIn(employee.Column("id"))
}

// --- reference names ---

func TestColumnReferenceName(t *testing.T) {
	t.Parallel()

	employee := NewTable("employee")
	col := employee.Column("id")
	if got := col.ReferenceName(); got != "id" {
		t.Errorf("ReferenceName() = %q, want %q", got, "id")
	}

	aliased := col.As("employee_id")
	if got := aliased.ReferenceName(); got != "employee_id" {
		t.Errorf("ReferenceName() = %q, want %q", got, "employee_id")
	}
}

func TestAliasedTableReferenceName(t *testing.T) {
	t.Parallel()

	e := NewTable("employee").As("e")
	if got := e.ReferenceName(); got != "e" {
		t.Errorf("ReferenceName() = %q, want %q", got, "e")
	}
}

// --- capability interfaces ---

func TestAndOrSatisfyMultipleCondition(t *testing.T) {
	t.Parallel()

	employee := NewTable("employee")
	left := NewIsNull(employee.Column("a"), false)
	right := NewIsNull(employee.Column("b"), false)

	var and Condition = NewAnd(left, right)
	mc, ok := and.(MultipleCondition)
	if !ok {
		t.Fatal("AndCondition does not satisfy MultipleCondition")
	}
	l, r := mc.Operands()
	if l != left || r != right {
		t.Error("Operands() did not return the original left/right")
	}
}
