package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/npillmayer/ragged/internal/literal"
	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/ragged/nestfn"
	"github.com/npillmayer/ragged/script"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func runEvalCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	_, opt := mustSetup(flags)
	fname := strings.TrimSpace(args["fn"].Value)
	if fname == "" {
		fatalf("function name is required")
	}
	values := mustParseLiterals(args["args"])
	res, err := nestfn.Call(fname, values, opt)
	if err != nil {
		fatalf("%v", err)
	}
	for _, v := range res {
		fmt.Println(nest.Format(v))
	}
}

func runDepthCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	mustSetup(flags)
	for _, v := range mustParseLiterals(args["args"]) {
		printer.Printf("%s: depth=%d first=%d leaves=%d\n",
			nest.Format(v), nest.Depth(v), nest.FirstDepth(v), nest.CountLeaves(v))
	}
}

func runZipCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	mustSetup(flags)
	values := mustParseLiterals(args["args"])
	seqs := make([][]nest.Value, len(values))
	for i, v := range values {
		s, ok := v.(nest.Seq)
		if !ok {
			fatalf("argument #%d is not a sequence: %s", i, nest.Format(v))
		}
		seqs[i] = s
	}
	n := 0
	if fill := mustFlagString(flags["fill"], "fill"); fill != "" {
		f, err := nest.Parse(fill)
		if err != nil {
			fatalf("invalid --fill flag: %v", err)
		}
		for tuple := range nest.ZipLongestFill(f, seqs...) {
			fmt.Println(nest.Format(nest.List(tuple...)))
			n++
		}
	} else {
		for tuple := range nest.ZipLongest(seqs...) {
			parts := make([]string, len(tuple))
			for i, o := range tuple {
				if v, ok := o.Unwrap(); ok {
					parts[i] = nest.Format(v)
				} else {
					parts[i] = "-"
				}
			}
			fmt.Printf("[%s]\n", strings.Join(parts, ", "))
			n++
		}
	}
	printer.Printf("%d tuples\n", n)
}

func runFuncsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	mustSetup(flags)
	for _, name := range nestfn.Names() {
		fn, err := nestfn.ByName(name)
		if err != nil {
			fatalf("%v", err)
		}
		arity := fmt.Sprintf("%d", fn.Arity)
		if fn.Arity == nestfn.Variadic {
			arity = "*"
		}
		fmt.Printf("%-10s %2s -> %d  %s\n", name, arity, fn.Out, fn.Doc)
	}
}

// runNodeCommand builds an Auto node from the defaults file: one input
// socket per configured input (sorted by name), linked to the given data in
// that order. Inputs without data use their default.
func runNodeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	conf, opt := mustSetup(flags)
	if conf.Defaults == "" {
		fatalf("no node defaults file configured")
	}
	defaults, err := script.LoadDefaults(conf.Defaults)
	if err != nil {
		fatalf("%v", err)
	}
	name := strings.TrimSpace(args["name"].Value)
	nd, ok := defaults.Nodes[name]
	if !ok {
		fatalf("node %q not found in %s", name, conf.Defaults)
	}
	node := &script.Node{
		Name:    name,
		Outputs: []*script.Socket{{Name: "result", Linked: true}},
		Script:  &script.Auto{Options: opt},
	}
	for _, socket := range slices.Sorted(maps.Keys(nd.Inputs)) {
		node.Inputs = append(node.Inputs, &script.Socket{Name: socket})
	}
	values := mustParseLiterals(args["inputs"])
	if len(values) > len(node.Inputs) {
		fatalf("node %s has %d inputs, got %d", name, len(node.Inputs), len(values))
	}
	for i, v := range values {
		node.Inputs[i].Data, node.Inputs[i].Linked = v, true
	}
	if err := defaults.Apply(node); err != nil {
		fatalf("%v", err)
	}
	if err := node.Process(); err != nil {
		fatalf("%v", err)
	}
	fmt.Println(nest.Format(node.Output("result").Data))
}

func mustParseLiterals(arg commando.ArgValue) []nest.Value {
	values, err := literal.ParseAll(arg.Value, nil)
	if err != nil {
		fatalf("%v", err)
	}
	return values
}
