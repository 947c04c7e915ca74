package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "eval", "broadcast":
		pterm.Info.Println("eval FN ARG...")
		pterm.Println(`
	Applies a built-in function (see 'funcs') element by element.
	Arguments are scalars or nested lists in YAML flow syntax, or $NAME
	for a variable set with 'let'. Scalars are broadcast to every position,
	shorter lists repeat their last element:

	    eval add 5 [1, 2, 3]          => [6, 7, 8]
	    eval add [1, 2, 3] [10, 20]   => [11, 22, 23]
	    eval:r mul [[1, 2], [3]] 2    => stores [[2, 4], [6]] in r
	`)
	case "policy", "padding":
		pterm.Info.Println("policy repeat|strict|truncate")
		pterm.Println(`
	Sets how lists of unequal length are aligned.
	+----------+-----------------------------------------------+
	| repeat   | shorter lists repeat their last element       |
	| strict   | lengths must be equal (or 1), otherwise error |
	| truncate | stop at the shortest list                     |
	+----------+-----------------------------------------------+
	An empty list always yields an empty result at its level.
	`)
	case "get", "set", "path", "paths":
		pterm.Info.Println("get PATH / set PATH LITERAL")
		pterm.Println(`
	Reads and writes the property tree loaded with -props.
	Paths start at 'scene', e.g. scene.objects[0]['location'].
	Aliases: s => scene, objs => scene.objects.
	'get' wraps the value as nested data, 'set' writes the first item
	of the literal, i.e. LITERAL[0][0].
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println("\t" + strings.Join(opNames(), ", "))
		pterm.Println("\tFor details try help:eval, help:policy or help:get")
	}
}
