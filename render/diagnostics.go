package render

import (
	"fmt"
	"os"

	"github.com/relquery/relquery/ast"
)

// reportUnsupported logs a diagnostic for a concrete Segment kind a
// renderer does not recognize. Rendering continues — producing a partial
// fragment at that position — so that node types added later do not break
// an otherwise-working render.
func reportUnsupported(where string, seg ast.Segment) {
	fmt.Fprintf(os.Stderr, "relquery: %s\n", ast.NewUnsupportedNode(where, fmt.Sprintf("unrecognized node %T", seg)))
}
