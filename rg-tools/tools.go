package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'ragged.cli'
func tracer() tracing.Trace {
	return tracing.Select("ragged.cli")
}

func main() {
	commando.
		SetExecutableName("rg-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for broadcasting functions over nested numeric data.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	withCommonFlags(commando.
		Register("eval").
		SetDescription("Apply a built-in function element by element to nested data literals.").
		SetShortDescription("broadcast a function").
		AddArgument("fn", "function name (see 'funcs')", "").
		AddArgument("args...", "arguments in YAML flow syntax, e.g. 5 '[1, [2, 3]]'", "")).
		SetAction(runEvalCommand)

	withCommonFlags(commando.
		Register("depth").
		SetDescription("Print nesting depth and leaf count of nested data literals.").
		SetShortDescription("depth of data").
		AddArgument("args...", "literals in YAML flow syntax", "")).
		SetAction(runDepthCommand)

	withCommonFlags(commando.
		Register("zip").
		SetDescription("Zip sequences position by position up to the longest one.").
		SetShortDescription("zip sequences").
		AddArgument("args...", "sequences in YAML flow syntax", "").
		AddFlag("fill,f", "filler for exhausted sequences (default: leave empty)", commando.String, "-")).
		SetAction(runZipCommand)

	withCommonFlags(commando.
		Register("funcs").
		SetDescription("List the built-in functions.").
		SetShortDescription("list functions")).
		SetAction(runFuncsCommand)

	withCommonFlags(commando.
		Register("node").
		SetDescription("Process a node configured in the node defaults file.").
		SetShortDescription("process a node").
		AddArgument("name", "node name in the defaults file", "").
		AddArgument("inputs...", "data for the node's inputs, in socket name order", "")).
		SetAction(runNodeCommand)

	commando.Parse(nil)
}

func withCommonFlags(cmd *commando.Command) *commando.Command {
	return cmd.
		AddFlag("config,c", "TOML configuration file", commando.String, "-").
		AddFlag("policy,p", "padding policy: repeat|strict|truncate", commando.String, "-").
		AddFlag("max-depth,m", "maximum nesting depth (0 uses configured value)", commando.Int, 0).
		AddFlag("trace,t", "trace level: Debug|Info|Error", commando.String, "-")
}

// setupTracing routes traces to the Go logger.
func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.ragged":        level,
		"trace.ragged.cli":    level,
		"trace.ragged.path":   level,
		"trace.ragged.script": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		fatalf("invalid trace level: %s", level)
	}
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "rg-tools: "+format+"\n", args...)
	os.Exit(1)
}
