package render

import "github.com/relquery/relquery/ast"

// validateFunctionName guards against SQL injection through a function
// name that was built from untrusted input: only identifier characters are
// allowed, so a caller can never smuggle arbitrary SQL through NewSimpleFunction's
// name argument into rendered text.
func validateFunctionName(name string) {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			panic(ast.NewInvariantViolation("SimpleFunction", "function name contains characters outside [A-Za-z0-9_]: "+name))
		}
	}
}
