package yaml

import "github.com/libfyaml-go/fyaml/internal/document"

// Document owns a root node, the anchor table gathered while building it,
// the version/tag directives inherited from its DOCUMENT-START event, and
// the diagnostics accumulated while building and resolving it.
type Document = document.Document
