package script

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/ragged/nestfn"
	"gopkg.in/yaml.v3"
)

// Defaults holds default settings for nodes, keyed by node name.
type Defaults struct {
	Nodes map[string]NodeDefaults
}

// NodeDefaults are the defaults for one kind of node: values for input
// sockets and, optionally, the name of a registered leaf function for
// Auto scripts.
type NodeDefaults struct {
	Inputs   map[string]nest.Value
	Function string
}

type rawDefaults struct {
	Nodes map[string]struct {
		Inputs   map[string]yaml.Node `yaml:"inputs"`
		Function string               `yaml:"function"`
	} `yaml:"nodes"`
}

// LoadDefaults reads node defaults from a YAML file. A missing file yields
// empty defaults.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("no node defaults at %s", path)
		return &Defaults{Nodes: map[string]NodeDefaults{}}, nil
	} else if err != nil {
		return nil, err
	}
	tracer().Infof("loading node defaults from %s", path)
	return ParseDefaults(data)
}

// ParseDefaults reads node defaults from YAML data of the form
//
//	nodes:
//	  Scale:
//	    inputs:
//	      factor: 2.0
//	      offset: [0, 1]
//	    function: mul
func ParseDefaults(data []byte) (*Defaults, error) {
	var raw rawDefaults
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("node defaults: %w", err)
	}
	d := &Defaults{Nodes: make(map[string]NodeDefaults, len(raw.Nodes))}
	for _, name := range slices.Sorted(maps.Keys(raw.Nodes)) {
		rn := raw.Nodes[name]
		nd := NodeDefaults{Inputs: make(map[string]nest.Value, len(rn.Inputs)), Function: rn.Function}
		for _, socket := range slices.Sorted(maps.Keys(rn.Inputs)) {
			n := rn.Inputs[socket]
			v, err := nest.FromYAML(&n)
			if err != nil {
				return nil, fmt.Errorf("node defaults: %s.%s: %w", name, socket, err)
			}
			nd.Inputs[socket] = v
		}
		d.Nodes[name] = nd
	}
	return d, nil
}

// Apply sets the defaults registered for n.Name on n. Naming an input socket
// the node does not have is an error, and n is left unchanged. A function
// which cannot be resolved is reported to the trace and skipped.
func (d *Defaults) Apply(n *Node) error {
	if d == nil {
		return nil
	}
	nd, ok := d.Nodes[n.Name]
	if !ok {
		return nil
	}
	names := slices.Sorted(maps.Keys(nd.Inputs))
	sockets := make([]*Socket, len(names))
	for i, name := range names {
		if sockets[i] = n.Input(name); sockets[i] == nil {
			return fmt.Errorf("node defaults: node %s has no input %q", n.Label(), name)
		}
	}
	for i, s := range sockets {
		s.Default = nd.Inputs[names[i]]
	}
	if nd.Function == "" {
		return nil
	}
	auto, ok := n.Script.(*Auto)
	if !ok || auto.Fn != nil {
		return nil
	}
	fn, err := nestfn.ByName(nd.Function)
	if err != nil {
		tracer().Errorf("failed to load default function for node %s: %v", n.Label(), err)
		return nil
	}
	if fn.Fun == nil {
		tracer().Errorf("default function %s for node %s has %d results, need 1", fn.Name, n.Label(), fn.Out)
		return nil
	}
	if err := fn.ArgCheck(len(n.Inputs)); err != nil {
		tracer().Errorf("default function for node %s: %v", n.Label(), err)
		return nil
	}
	auto.Fn = fn.Fun
	return nil
}
