// Package plugins defines the Transformer interface for AST middleware:
// functions that rewrite a built *ast.Select before it is rendered.
package plugins

import "github.com/relquery/relquery/ast"

// Transformer rewrites a Select before it is rendered. Implementations may
// return sel unchanged, a new Select, or an error that aborts the pipeline.
type Transformer interface {
	TransformSelect(sel *ast.Select) (*ast.Select, error)
}

// BaseTransformer provides a no-op TransformSelect. Plugins embed this and
// override it.
type BaseTransformer struct{}

// TransformSelect implements Transformer as a no-op.
func (BaseTransformer) TransformSelect(sel *ast.Select) (*ast.Select, error) {
	return sel, nil
}

// Apply runs each transformer over sel in order, stopping at the first
// error.
func Apply(sel *ast.Select, transformers ...Transformer) (*ast.Select, error) {
	var err error
	for _, t := range transformers {
		sel, err = t.TransformSelect(sel)
		if err != nil {
			return nil, err
		}
	}
	return sel, nil
}
