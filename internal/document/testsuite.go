package document

import (
	"bufio"
	"fmt"
	"io"

	"github.com/libfyaml-go/fyaml/internal/parserc"
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

// WriteTestsuiteEvents drains a parser's event stream to w in the
// yaml-test-suite event grammar (spec §6's "Testsuite event grammar"),
// one event per line: +STR, +DOC[ ---], +MAP[ {}], +SEQ[ []], =VAL,
// =ALI, -MAP, -SEQ, -DOC[ ...], -STR.
func WriteTestsuiteEvents(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	p := parserc.New(r)
	for {
		ev, err := parserc.Parse(p)
		if err != nil {
			return err
		}
		switch ev.Type {
		case yamlh.STREAM_START_EVENT:
			fmt.Fprintln(bw, "+STR")
		case yamlh.STREAM_END_EVENT:
			fmt.Fprintln(bw, "-STR")
			return nil
		case yamlh.DOCUMENT_START_EVENT:
			if ev.Implicit {
				fmt.Fprintln(bw, "+DOC")
			} else {
				fmt.Fprintln(bw, "+DOC ---")
			}
		case yamlh.DOCUMENT_END_EVENT:
			if ev.Implicit {
				fmt.Fprintln(bw, "-DOC")
			} else {
				fmt.Fprintln(bw, "-DOC ...")
			}
		case yamlh.SEQUENCE_START_EVENT:
			fmt.Fprintf(bw, "+SEQ%s%s\n", anchorSuffix(ev.Anchor), flowSuffix(yamlh.YamlSequenceStyle(ev.Style) == yamlh.FLOW_SEQUENCE_STYLE, "[]"))
		case yamlh.SEQUENCE_END_EVENT:
			fmt.Fprintln(bw, "-SEQ")
		case yamlh.MAPPING_START_EVENT:
			fmt.Fprintf(bw, "+MAP%s%s\n", anchorSuffix(ev.Anchor), flowSuffix(yamlh.YamlMappingStyle(ev.Style) == yamlh.FLOW_MAPPING_STYLE, "{}"))
		case yamlh.MAPPING_END_EVENT:
			fmt.Fprintln(bw, "-MAP")
		case yamlh.SCALAR_EVENT:
			fmt.Fprintf(bw, "=VAL%s %s%s\n", anchorSuffix(ev.Anchor), styleIndicator(ev.Scalar_style()), escapeTestsuiteValue(ev.Value))
		case yamlh.ALIAS_EVENT:
			fmt.Fprintf(bw, "=ALI *%s\n", ev.Anchor)
		}
	}
}

func anchorSuffix(anchor []byte) string {
	if len(anchor) == 0 {
		return ""
	}
	return " &" + string(anchor)
}

func flowSuffix(isFlow bool, indicator string) string {
	if isFlow {
		return " " + indicator
	}
	return ""
}

func styleIndicator(s yamlh.YamlScalarStyle) string {
	switch {
	case s&yamlh.SINGLE_QUOTED_SCALAR_STYLE != 0:
		return "'"
	case s&yamlh.DOUBLE_QUOTED_SCALAR_STYLE != 0:
		return "\""
	case s&yamlh.LITERAL_SCALAR_STYLE != 0:
		return "|"
	case s&yamlh.FOLDED_SCALAR_STYLE != 0:
		return ">"
	default:
		return ":"
	}
}

// escapeTestsuiteValue escapes a scalar's decoded value for the single-line
// test-events grammar: backslash, NUL, and the control-character mnemonics
// spec §6 names, plus \xHH for any other byte below 0x20.
func escapeTestsuiteValue(value []byte) string {
	var out []byte
	for _, b := range value {
		switch b {
		case '\\':
			out = append(out, '\\', '\\')
		case 0:
			out = append(out, '\\', '0')
		case '\a':
			out = append(out, '\\', 'a')
		case '\b':
			out = append(out, '\\', 'b')
		case '\t':
			out = append(out, '\\', 't')
		case '\n':
			out = append(out, '\\', 'n')
		case '\v':
			out = append(out, '\\', 'v')
		case '\f':
			out = append(out, '\\', 'f')
		case '\r':
			out = append(out, '\\', 'r')
		case 0x1B:
			out = append(out, '\\', 'e')
		default:
			if b < 0x20 {
				out = append(out, []byte(fmt.Sprintf("\\x%02X", b))...)
			} else {
				out = append(out, b)
			}
		}
	}
	return string(out)
}
