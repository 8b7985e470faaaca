package path

import "github.com/libfyaml-go/fyaml/internal/document"

// Query compiles src and evaluates it against doc starting from the
// document root, the common case spec §6's --path CLI flag drives.
func Query(doc *document.Document, src string) (Result, error) {
	expr, err := Compile(src)
	if err != nil {
		return Result{}, err
	}
	return Eval(expr, doc, NodeResult(doc.Root))
}
