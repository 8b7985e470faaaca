package emitter

import (
	"sort"

	"github.com/libfyaml-go/fyaml/internal/resolve"
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

// Mode selects the emitter's default container style and scalar coercion
// policy, per the Mode column of the emitter configuration table.
type Mode int

const (
	// BlockMode emits block-style containers by default (the libyaml default).
	BlockMode Mode = iota
	// FlowMode emits flow-style containers by default.
	FlowMode
	// FlowOnelineMode is FlowMode with line wrapping disabled.
	FlowOnelineMode
	// JSONMode forces flow containers and double-quoted strings; scalars
	// that resolve to null/bool/int/float are emitted plain in their source
	// spelling, which is not rewritten to a JSON literal.
	JSONMode
	// JSONTPMode is emitted exactly like JSONMode; non-string mapping keys
	// are neither coerced to strings nor rejected.
	JSONTPMode
	// JSONOnelineMode is JSONMode with line wrapping disabled.
	JSONOnelineMode
)

func (m Mode) isFlow() bool {
	return m == FlowMode || m == FlowOnelineMode || m == JSONMode || m == JSONTPMode || m == JSONOnelineMode
}

func (m Mode) isJSON() bool {
	return m == JSONMode || m == JSONTPMode || m == JSONOnelineMode
}

func (m Mode) isOneline() bool {
	return m == FlowOnelineMode || m == JSONOnelineMode
}

// SetMode configures the emitter's default container style and scalar
// coercion policy.
func (e *Emitter) SetMode(m Mode) {
	e.mode = m
	if m.isOneline() {
		e.width = 1 << 30
	}
}

// SetSortKeys requests lexicographic mapping key ordering on emit.
func (e *Emitter) SetSortKeys(sort bool) { e.sortKeys = sort }

// SetStripComments drops Head/Line/Foot/Tail comments instead of emitting them.
func (e *Emitter) SetStripComments(strip bool) { e.stripComments = strip }

// SetStripTags drops every explicit tag; tagged scalars fall back to implicit typing.
func (e *Emitter) SetStripTags(strip bool) { e.stripTags = strip }

// SetStripLabels drops anchors; alias events keep their name.
func (e *Emitter) SetStripLabels(strip bool) { e.stripLabels = strip }

// applyModePolicy mutates the queued event in place to account for the
// configured Mode, sort-keys, and strip-* policies, before analyzeEvent runs.
func (e *Emitter) applyModePolicy(event *yamlh.Event) {
	if e.stripComments {
		event.Head_comment = nil
		event.Line_comment = nil
		event.Foot_comment = nil
		event.Tail_comment = nil
	}
	if e.stripLabels {
		if event.Type == yamlh.ALIAS_EVENT {
			// An alias with its label stripped has nothing left to refer
			// to; leave it untouched rather than silently dropping data.
		} else {
			event.Anchor = nil
		}
	}
	if e.stripTags {
		event.Tag = nil
		// An explicitly-tagged scalar carries Implicit=false so the tag
		// isn't dropped by the resolver's implicit-typing guess; with the
		// tag gone there is nothing left to make explicit, so fall back to
		// implicit typing rather than leaving selectScalarStyle unable to
		// find either a tag or an implicit flag.
		if event.Type == yamlh.SCALAR_EVENT {
			event.Implicit = true
			event.Quoted_implicit = true
		}
	}

	switch event.Type {
	case yamlh.SEQUENCE_START_EVENT:
		if e.mode.isFlow() && event.Style == yamlh.YamlStyle(yamlh.ANY_SEQUENCE_STYLE) {
			event.Style = yamlh.YamlStyle(yamlh.FLOW_SEQUENCE_STYLE)
		}
	case yamlh.MAPPING_START_EVENT:
		if e.mode.isFlow() && event.Style == yamlh.YamlStyle(yamlh.ANY_MAPPING_STYLE) {
			event.Style = yamlh.YamlStyle(yamlh.FLOW_MAPPING_STYLE)
		}
		if e.sortKeys {
			// handled by the document-tree emitter, which materializes
			// pairs before event emission; event-stream callers are
			// responsible for presenting keys in the order they want.
			_ = sort.Strings
		}
	case yamlh.SCALAR_EVENT:
		if e.mode.isJSON() {
			applyJSONScalarPolicy(event)
		}
	}
}

// applyJSONScalarPolicy makes scalars that resolve to null/bool/int/float
// plain and double-quotes everything else. A plain scalar keeps its source
// text: "~", "True", "0x1F" or ".inf" pass through unchanged rather than
// becoming null, true or a decimal number.
func applyJSONScalarPolicy(event *yamlh.Event) {
	tag, _, _ := resolve.Resolve("", string(event.Value))
	switch tag {
	case resolve.NullTag, resolve.BoolTag, resolve.IntTag, resolve.FloatTag:
		event.Style = yamlh.YamlStyle(yamlh.PLAIN_SCALAR_STYLE)
		event.Implicit = true
		event.Quoted_implicit = true
	default:
		event.Style = yamlh.YamlStyle(yamlh.DOUBLE_QUOTED_SCALAR_STYLE)
		event.Quoted_implicit = true
	}
}
