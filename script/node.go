package script

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ragged/nest"
)

// Script maps the data of a node's inputs to the data of its outputs.
// linked tells for every output socket whether something consumes it;
// a script may leave unlinked outputs nil.
type Script interface {
	Process(in []nest.Value, linked []bool) ([]nest.Value, error)
}

// Socket is an input or output connector of a node.
type Socket struct {
	Name    string
	Data    nest.Value // data received (inputs) or produced (outputs)
	Default nest.Value // used for unlinked inputs
	Linked  bool
}

// Node couples sockets with a script.
type Node struct {
	Name    string
	Title   string // optional display label
	Inputs  []*Socket
	Outputs []*Socket
	Script  Script
}

// ErrNotReady is the sentinel for *NotReadyError.
var ErrNotReady = errors.New("node not ready")

// NotReadyError is returned by Node.Process if an input socket has neither
// a link nor a default value.
type NotReadyError struct {
	Node   string
	Socket string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("node %s: input %q is neither linked nor has a default", e.Node, e.Socket)
}

func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

// Label returns the node's title, or its name if no title is set.
func (n *Node) Label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Name
}

// Input returns the input socket of a given name, or nil.
func (n *Node) Input(name string) *Socket {
	return findSocket(n.Inputs, name)
}

// Output returns the output socket of a given name, or nil.
func (n *Node) Output(name string) *Socket {
	return findSocket(n.Outputs, name)
}

func findSocket(sockets []*Socket, name string) *Socket {
	for _, s := range sockets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Ready reports whether every input is either linked to data or has a default.
func (n *Node) Ready() bool {
	_, err := n.gather()
	return err == nil
}

func (n *Node) gather() ([]nest.Value, error) {
	in := make([]nest.Value, len(n.Inputs))
	for i, s := range n.Inputs {
		switch {
		case s.Linked && s.Data != nil:
			in[i] = s.Data
		case s.Default != nil:
			in[i] = s.Default
		default:
			return nil, &NotReadyError{Node: n.Label(), Socket: s.Name}
		}
	}
	return in, nil
}

// Process gathers the input data, runs the script and stores the results on
// the output sockets. Nothing is stored if the script fails.
func (n *Node) Process() error {
	if n.Script == nil {
		return fmt.Errorf("node %s: no script", n.Label())
	}
	in, err := n.gather()
	if err != nil {
		tracer().Debugf("node %s not ready: %v", n.Label(), err)
		return err
	}
	linked := make([]bool, len(n.Outputs))
	for i, s := range n.Outputs {
		linked[i] = s.Linked
	}
	tracer().Debugf("node %s: processing %d inputs", n.Label(), len(in))
	out, err := n.Script.Process(in, linked)
	if err != nil {
		tracer().Errorf("node %s: %v", n.Label(), err)
		return err
	}
	if len(out) > len(n.Outputs) {
		return &nest.OutputArityError{Want: len(n.Outputs), Got: len(out)}
	}
	for i, v := range out {
		n.Outputs[i].Data = v
	}
	tracer().Infof("node %s: processed", n.Label())
	return nil
}
