package common

import (
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

var DefaultTagDirectives = []yamlh.TagDirective{
	{Handle: []byte("!"), Prefix: []byte("!")},
	{Handle: []byte("!!"), Prefix: []byte("tag:yaml.org,2002:")},
}
