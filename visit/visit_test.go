package visit

import (
	"testing"

	"github.com/relquery/relquery/ast"
)

// leaf is a minimal ast.Segment used to exercise the dispatch templates
// without depending on the full ast node set.
type leaf struct {
	name string
}

func (l *leaf) Children() []ast.Segment { return nil }
func (l *leaf) Walk(v ast.Visitor)      { ast.Walk(l, v) }

type branch struct {
	name     string
	children []ast.Segment
}

func (b *branch) Children() []ast.Segment { return b.children }
func (b *branch) Walk(v ast.Visitor)      { ast.Walk(b, v) }

func isLeaf(seg ast.Segment) bool { _, ok := seg.(*leaf); return ok }

// --- FilteredVisitor ---

type recordingFiltered struct {
	matched string
	nested  []string
}

func (r *recordingFiltered) EnterMatched(seg ast.Segment) {
	switch n := seg.(type) {
	case *leaf:
		r.matched = n.name
	case *branch:
		r.matched = n.name
	}
}
func (r *recordingFiltered) LeaveMatched(ast.Segment)     {}
func (r *recordingFiltered) EnterNested(seg ast.Segment) {
	if l, ok := seg.(*leaf); ok {
		r.nested = append(r.nested, l.name)
	}
}
func (r *recordingFiltered) LeaveNested(ast.Segment) {}

func TestFilteredVisitorMatchesExactlyOneSegment(t *testing.T) {
	t.Parallel()

	inner := &leaf{name: "inner"}
	target := &branch{name: "target", children: []ast.Segment{inner}}
	root := &branch{name: "root", children: []ast.Segment{target}}

	d := NewDispatcher()
	rec := &recordingFiltered{}
	fv := NewFilteredVisitor(d, func(seg ast.Segment) bool {
		b, ok := seg.(*branch)
		return ok && b.name == "target"
	}, rec)
	// The parent takes root's events and pushes fv once root is entered,
	// so fv's first event is Enter(target).
	parent := &funcVisitor{enter: func(ast.Segment) { d.Push(fv) }, leave: func(ast.Segment) {}}
	d.Push(parent)

	root.Walk(d)

	if rec.matched != "target" {
		t.Errorf("matched = %q, want %q", rec.matched, "target")
	}
}

func TestFilteredVisitorPopsAndRedispatchesOnNoMatch(t *testing.T) {
	t.Parallel()

	// The filtered visitor never matches; its sole Enter/Leave pair must
	// pop and redispatch cleanly to the underlying root visitor without
	// panicking (stack discipline intact).
	root := &leaf{name: "root"}
	d := NewDispatcher()
	seen := &recordingFiltered{}
	fv := NewFilteredVisitor(d, func(ast.Segment) bool { return false }, seen)

	type rootVisitor struct{ entered, left bool }
	rv := &rootVisitor{}
	rootEnter := func(seg ast.Segment) { rv.entered = true }
	rootLeave := func(seg ast.Segment) { rv.left = true }

	root2 := &funcVisitor{enter: rootEnter, leave: rootLeave}
	d.Push(root2)
	d.Push(fv)

	root.Walk(d)

	if !rv.entered || !rv.left {
		t.Error("root visitor did not receive the redispatched Enter/Leave")
	}
}

type funcVisitor struct {
	enter, leave func(ast.Segment)
}

func (f *funcVisitor) Enter(seg ast.Segment) { f.enter(seg) }
func (f *funcVisitor) Leave(seg ast.Segment) { f.leave(seg) }

// --- ForwardingVisitor ---

type recordingForwarding struct {
	matches []string
}

func (r *recordingForwarding) EnterMatched(seg ast.Segment) {
	r.matches = append(r.matches, seg.(*leaf).name)
}
func (r *recordingForwarding) LeaveMatched(ast.Segment) {}
func (r *recordingForwarding) EnterNested(ast.Segment)  {}
func (r *recordingForwarding) LeaveNested(ast.Segment)  {}

func TestForwardingVisitorMatchesEverySibling(t *testing.T) {
	t.Parallel()

	a, b, c := &leaf{name: "a"}, &leaf{name: "b"}, &leaf{name: "c"}
	root := &branch{name: "root", children: []ast.Segment{a, b, c}}

	d := NewDispatcher()
	rec := &recordingForwarding{}
	fv := NewForwardingVisitor(d, isLeaf, rec)
	// The parent takes root's events and pushes fv once root is entered,
	// so fv sees root's children and then pops on Leave(root).
	parent := &funcVisitor{enter: func(ast.Segment) { d.Push(fv) }, leave: func(ast.Segment) {}}
	d.Push(parent)

	root.Walk(d)

	want := []string{"a", "b", "c"}
	if len(rec.matches) != len(want) {
		t.Fatalf("matches = %v, want %v", rec.matches, want)
	}
	for i, m := range want {
		if rec.matches[i] != m {
			t.Errorf("matches[%d] = %q, want %q", i, rec.matches[i], m)
		}
	}
}

// --- Dispatcher.Pop stack discipline ---

func TestDispatcherPopByNonTopPanics(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	top := &funcVisitor{enter: func(ast.Segment) {}, leave: func(ast.Segment) {}}
	other := &funcVisitor{enter: func(ast.Segment) {}, leave: func(ast.Segment) {}}
	d.Push(top)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Pop by non-top visitor did not panic")
		}
		err, ok := r.(*ast.Error)
		if !ok {
			t.Fatalf("recovered %T, want *ast.Error", r)
		}
		if err.Kind != ast.InvariantViolation {
			t.Errorf("Kind = %v, want InvariantViolation", err.Kind)
		}
	}()
	d.Pop(other)
}
