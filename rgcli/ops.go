package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/ragged/internal/literal"
	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/ragged/nestfn"
	"github.com/npillmayer/ragged/proppath"
	"github.com/pterm/pterm"
)

var errNoArg = errors.New("argument missing")

func (intp *Intp) lookup(name string) (nest.Value, bool) {
	v, ok := intp.vars[name]
	return v, ok
}

func (intp *Intp) literals(s string) ([]nest.Value, error) {
	return literal.ParseAll(s, intp.lookup)
}

func letOp(intp *Intp, op *Op) (error, bool) {
	name, lit, _ := strings.Cut(op.arg, " ")
	if name == "" || strings.TrimSpace(lit) == "" {
		return fmt.Errorf("usage: let NAME LITERAL: %w", errNoArg), false
	}
	if _, err := proppath.Parse(name); err != nil || strings.ContainsAny(name, ".[") {
		return fmt.Errorf("invalid variable name %q", name), false
	}
	vs, err := intp.literals(lit)
	if err != nil {
		return err, false
	}
	if len(vs) != 1 {
		return fmt.Errorf("let expects a single literal, have %d", len(vs)), false
	}
	intp.vars[name] = vs[0]
	tracer().Infof("%s = %s", name, nest.Format(vs[0]))
	return nil, false
}

func varsOp(intp *Intp, op *Op) (error, bool) {
	if len(intp.vars) == 0 {
		pterm.Println("no variables set")
		return nil, false
	}
	data := [][]string{
		{"Name", "Depth", "Leaves", "Value"},
	}
	for _, name := range sortedKeys(intp.vars) {
		v := intp.vars[name]
		data = append(data, []string{
			name,
			strconv.Itoa(nest.Depth(v)),
			intp.p.Sprintf("%d", nest.CountLeaves(v)),
			nest.Format(v),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// evalOp broadcasts a built-in function. With a topic, as in "eval:r add 1 $x",
// the (first) result is stored in a variable.
func evalOp(intp *Intp, op *Op) (error, bool) {
	fname, rest, _ := strings.Cut(op.arg, " ")
	if fname == "" {
		return fmt.Errorf("usage: eval FN ARG...: %w", errNoArg), false
	}
	args, err := intp.literals(rest)
	if err != nil {
		return err, false
	}
	res, err := nestfn.Call(fname, args, &intp.opt)
	if err != nil {
		return err, false
	}
	for i, v := range res {
		if len(res) > 1 {
			pterm.Printf("[%d] %s\n", i, nest.Format(v))
		} else {
			pterm.Println(nest.Format(v))
		}
	}
	if op.topic != "" {
		intp.vars[op.topic] = res[0]
		tracer().Infof("%s = %s", op.topic, nest.Format(res[0]))
	}
	return nil, false
}

func depthOp(intp *Intp, op *Op) (error, bool) {
	vs, err := intp.literals(op.arg)
	if err != nil {
		return err, false
	}
	for _, v := range vs {
		pterm.Println(intp.p.Sprintf("%s: depth %d, first-branch depth %d, %d leaves",
			nest.Format(v), nest.Depth(v), nest.FirstDepth(v), nest.CountLeaves(v)))
	}
	return nil, false
}

func zipOp(intp *Intp, op *Op) (error, bool) {
	vs, err := intp.literals(op.arg)
	if err != nil {
		return err, false
	}
	if len(vs) == 0 {
		return fmt.Errorf("usage: zip LITERAL...: %w", errNoArg), false
	}
	seqs := make([][]nest.Value, len(vs))
	header := make([]string, len(vs))
	for i, v := range vs {
		if s, ok := v.(nest.Seq); ok {
			seqs[i] = s
		} else {
			seqs[i] = []nest.Value{v}
		}
		header[i] = fmt.Sprintf("#%d", i)
	}
	data := [][]string{header}
	for tuple := range nest.ZipLongest(seqs...) {
		row := make([]string, len(tuple))
		for i, o := range tuple {
			if v, ok := o.Unwrap(); ok {
				row[i] = nest.Format(v)
			} else {
				row[i] = "-"
			}
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println(intp.p.Sprintf("%d tuples", len(data)-1))
	return nil, false
}

func funcsOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{
		{"Name", "Arity", "Results", "Description"},
	}
	for _, name := range nestfn.Names() {
		fn, err := nestfn.ByName(name)
		if err != nil {
			return err, false
		}
		arity := strconv.Itoa(fn.Arity)
		if fn.Arity == nestfn.Variadic {
			arity = "any"
		}
		data = append(data, []string{name, arity, strconv.Itoa(fn.Out), fn.Doc})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func policyOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		pterm.Printf("padding policy is %s\n", intp.opt.Padding)
		return nil, false
	}
	p, err := nest.ParsePadding(op.arg)
	if err != nil {
		return err, false
	}
	intp.opt.Padding = p
	tracer().Infof("padding policy set to %s", p)
	return nil, false
}

func maxdepthOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		pterm.Printf("maximum depth is %d\n", intp.opt.MaxDepth)
		return nil, false
	}
	n, err := strconv.Atoi(op.arg)
	if err != nil {
		return fmt.Errorf("maximum depth not numeric: %v", op.arg), false
	}
	intp.opt.MaxDepth = n
	tracer().Infof("maximum depth set to %d", n)
	return nil, false
}

func getOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return fmt.Errorf("usage: get PATH: %w", errNoArg), false
	}
	p, err := intp.propPath(op.arg)
	if err != nil {
		return err, false
	}
	v, err := proppath.GetData(intp.resolver(), p)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s = %s\n", p, nest.Format(v))
	return nil, false
}

func setOp(intp *Intp, op *Op) (error, bool) {
	path, lit, _ := strings.Cut(op.arg, " ")
	if path == "" || strings.TrimSpace(lit) == "" {
		return fmt.Errorf("usage: set PATH LITERAL: %w", errNoArg), false
	}
	p, err := intp.propPath(path)
	if err != nil {
		return err, false
	}
	vs, err := intp.literals(lit)
	if err != nil {
		return err, false
	}
	if len(vs) != 1 {
		return fmt.Errorf("set expects a single literal, have %d", len(vs)), false
	}
	return proppath.SetData(intp.resolver(), p, vs[0]), false
}

func sortedKeys(m map[string]nest.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
