// Command fyaml is the CLI front end for the fyaml core (spec §6): it
// parses, resolves, and re-emits YAML documents, or dumps the raw event
// stream in the testsuite event grammar.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/libfyaml-go/fyaml"
)

var (
	flagDump          bool
	flagTestsuite     bool
	flagStreaming     bool
	flagResolve       bool
	flagMode          string
	flagIndent        int
	flagWidth         int
	flagJSON          string
	flagSortKeys      bool
	flagStripComments bool
	flagStripTags     bool
	flagStripLabels   bool

	rootCmd = &cobra.Command{
		Use:           "fyaml [file]",
		Short:         "Parse, resolve, and re-emit YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError{"at most one input file may be given"}
			}
			return nil
		},
		RunE: runFyaml,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&flagDump, "dump", false, "parse, optionally resolve, and re-emit the document (default)")
	flags.BoolVar(&flagTestsuite, "testsuite", false, "emit the parser's event stream in the testsuite event grammar")
	flags.BoolVar(&flagStreaming, "streaming", false, "parse events without building a document")
	flags.BoolVar(&flagResolve, "resolve", false, "run the alias resolver over the loaded document")
	flags.StringVar(&flagMode, "mode", "block", "emitter mode: block, flow, flow-oneline, json, json-tp, json-oneline")
	flags.IntVar(&flagIndent, "indent", 4, "indent increment, in spaces")
	flags.IntVar(&flagWidth, "width", 0, "preferred wrap column (0 disables wrapping)")
	flags.StringVar(&flagJSON, "json", "", "shorthand for --mode=json; --json=tp or --json=oneline select a json variant")
	flags.Lookup("json").NoOptDefVal = "plain"
	flags.BoolVar(&flagSortKeys, "sort-keys", false, "emit mapping keys in lexicographic order")
	flags.BoolVar(&flagStripComments, "strip-comments", false, "drop captured comments instead of emitting them")
	flags.BoolVar(&flagStripTags, "strip-tags", false, "drop explicit tags on emit")
	flags.BoolVar(&flagStripLabels, "strip-labels", false, "drop anchors on emit (aliases are kept)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(usageError); ok {
			fmt.Fprintln(os.Stderr, "fyaml:", err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "fyaml:", err)
		os.Exit(1)
	}
}

// usageError marks an argument/flag-combination error (exit code 2) as
// distinct from a scan/parse/emit error (exit code 1), per spec §6's exit
// code table.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func resolveMode(mode, jsonFlag string) (yaml.Mode, error) {
	if jsonFlag != "" {
		switch jsonFlag {
		case "plain":
			return yaml.JSONMode, nil
		case "tp":
			return yaml.JSONTPMode, nil
		case "oneline":
			return yaml.JSONOnelineMode, nil
		default:
			return 0, usageError{fmt.Sprintf("unknown --json variant %q", jsonFlag)}
		}
	}
	switch mode {
	case "", "block":
		return yaml.BlockMode, nil
	case "flow":
		return yaml.FlowMode, nil
	case "flow-oneline":
		return yaml.FlowOnelineMode, nil
	case "json":
		return yaml.JSONMode, nil
	case "json-tp":
		return yaml.JSONTPMode, nil
	case "json-oneline":
		return yaml.JSONOnelineMode, nil
	default:
		return 0, usageError{fmt.Sprintf("unknown --mode %q", mode)}
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, usageError{err.Error()}
	}
	return f, nil
}

func runFyaml(cmd *cobra.Command, args []string) error {
	verbCount := 0
	for _, v := range []bool{flagTestsuite, flagStreaming, flagDump} {
		if v {
			verbCount++
		}
	}
	if verbCount > 1 {
		return usageError{"--dump, --testsuite, and --streaming are mutually exclusive"}
	}

	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	switch {
	case flagTestsuite:
		return yaml.WriteTestsuite(os.Stdout, in)
	case flagStreaming:
		return yaml.EventStream(in, func(ev *yaml.Event) error {
			_, err := fmt.Fprintln(os.Stdout, ev.Type)
			return err
		})
	default:
		return runDump(in)
	}
}

func runDump(in io.Reader) error {
	mode, err := resolveMode(flagMode, flagJSON)
	if err != nil {
		return err
	}

	docs, err := yaml.ParseAll(in, flagResolve)
	if err != nil {
		return err
	}

	emitter := yaml.NewEmitter(os.Stdout)
	emitter.SetMode(mode)
	emitter.SetIndent(flagIndent)
	emitter.SetWidth(flagWidth)
	emitter.SetSortKeys(flagSortKeys)
	emitter.SetStripComments(flagStripComments)
	emitter.SetStripTags(flagStripTags)
	emitter.SetStripLabels(flagStripLabels)

	for _, doc := range docs {
		if err := emitter.EmitDocument(doc); err != nil {
			return err
		}
	}
	return emitter.Close()
}
