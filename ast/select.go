package ast

// Select is a single SELECT statement: a projection, optional source
// tables, joins, an optional filter, ordering, and paging.
//
// Limit and Offset are scalar properties, not traversal children: they are
// read directly by the statement renderer at leave(Select) time rather than
// walked (data-model invariant 2).
type Select struct {
	List     *SelectList
	From     *From
	Joins    []*Join
	Where    *Where
	OrderBy  []*OrderByField
	Distinct bool
	Limit    *int
	Offset   *int
}

// NewSelect constructs a Select over the given projection. list must not be nil.
func NewSelect(list *SelectList) *Select {
	if list == nil {
		panic(invalidArgument("Select", "list must not be nil"))
	}
	return &Select{List: list}
}

// Children implements Segment, in the order data-model invariant 2 requires:
// select-list, from (if present), joins in order, where (if present),
// order-by fields in order.
func (s *Select) Children() []Segment {
	children := make([]Segment, 0, 3+len(s.Joins)+len(s.OrderBy))
	children = append(children, s.List)
	if s.From != nil {
		children = append(children, s.From)
	}
	for _, j := range s.Joins {
		children = append(children, j)
	}
	if s.Where != nil {
		children = append(children, s.Where)
	}
	for _, o := range s.OrderBy {
		children = append(children, o)
	}
	return children
}

// Walk implements Segment.
func (s *Select) Walk(v Visitor) { Walk(s, v) }
