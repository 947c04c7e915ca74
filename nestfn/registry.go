/*
Package nestfn is a registry of named leaf functions for package nest.

Functions are registered under a short name together with their arity, and
may then be looked up by name, e.g. from a command line or from a defaults
file. Calling a registered function broadcasts it across its arguments:

	fn, _ := nestfn.ByName("add")
	v, err := fn.Call([]nest.Value{nest.Int(5), nest.Ints(1, 2, 3)}, nil)

A set of arithmetic built-ins is registered at package initialization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package nestfn

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged'
func tracer() tracing.Trace {
	return tracing.Select("ragged")
}

// Variadic as an arity accepts any number of arguments.
const Variadic = -1

var (
	// ErrUnknownFunc is returned by ByName for names not registered.
	ErrUnknownFunc = errors.New("unknown function")

	// ErrArity is returned when a function is called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// Func is a registered leaf function.
type Func struct {
	// Name is the registry key.
	Name string
	// Arity is the number of arguments, or Variadic.
	Arity int
	// Out is the number of results; 1 for Fun, >1 for Multi.
	Out int
	// Fun is set for single-result functions.
	Fun nest.Func
	// Multi is set for functions with Out > 1.
	Multi nest.MultiFunc
	// Doc is a one-line description.
	Doc string
}

var registry = struct {
	sync.RWMutex
	funcs map[string]*Func
}{funcs: make(map[string]*Func)}

// Register adds a single-result function under name.
// It is an error to register a name twice.
func Register(name string, arity int, fun nest.Func, doc string) error {
	return add(&Func{Name: name, Arity: arity, Out: 1, Fun: fun, Doc: doc})
}

// RegisterMulti adds a function with nout results under name.
func RegisterMulti(name string, arity, nout int, fun nest.MultiFunc, doc string) error {
	if nout < 1 {
		return fmt.Errorf("nestfn.RegisterMulti: function %q must have at least one result", name)
	}
	return add(&Func{Name: name, Arity: arity, Out: nout, Multi: fun, Doc: doc})
}

func add(fn *Func) error {
	if fn.Arity < Variadic {
		return fmt.Errorf("nestfn.Register: invalid arity %d for function %q", fn.Arity, fn.Name)
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.funcs[fn.Name]; ok {
		err := fmt.Errorf("nestfn.Register: function of name %q already exists, not added", fn.Name)
		tracer().Errorf(err.Error())
		return err
	}
	registry.funcs[fn.Name] = fn
	return nil
}

// ByName finds the function of the given name.
func ByName(name string) (*Func, error) {
	registry.RLock()
	defer registry.RUnlock()
	fn, ok := registry.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
	}
	return fn, nil
}

// Names returns the names of all registered functions, sorted.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.funcs))
	for name := range registry.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ArgCheck returns an error if n arguments do not match the arity of fn.
func (fn *Func) ArgCheck(n int) error {
	if fn.Arity != Variadic && fn.Arity != n {
		return fmt.Errorf("%w: %q takes %d, got %d", ErrArity, fn.Name, fn.Arity, n)
	}
	return nil
}

// Call broadcasts fn across args. For multi-result functions it returns one
// value per result, otherwise a single value.
func (fn *Func) Call(args []nest.Value, opt *nest.Options) ([]nest.Value, error) {
	if err := fn.ArgCheck(len(args)); err != nil {
		return nil, err
	}
	if fn.Multi != nil {
		return nest.BroadcastMulti(fn.Multi, fn.Out, args, opt)
	}
	v, err := nest.Broadcast(fn.Fun, args, opt)
	if err != nil {
		return nil, err
	}
	return []nest.Value{v}, nil
}

// Call looks up a function by name and broadcasts it across args.
func Call(name string, args []nest.Value, opt *nest.Options) ([]nest.Value, error) {
	fn, err := ByName(name)
	if err != nil {
		return nil, err
	}
	return fn.Call(args, opt)
}
