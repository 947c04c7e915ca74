package script

import (
	"fmt"

	"github.com/npillmayer/ragged/nest"
)

// GeneratorOutput produces the items of one output socket, one per parameter
// tuple.
type GeneratorOutput struct {
	Name string
	Fn   func(params ...nest.Value) (nest.Value, error)
}

// Generator is a simple generator script. Every input contributes its first
// object as a list of parameter values. Parameter lists are zipped, shorter
// ones repeating their last value, and each linked output calls its function
// once per parameter tuple.
type Generator struct {
	Outputs []GeneratorOutput
}

var _ Script = (*Generator)(nil)

func (g *Generator) Process(in []nest.Value, linked []bool) ([]nest.Value, error) {
	params := make([][]nest.Value, len(in))
	for i, v := range in {
		p, err := firstObject(v)
		if err != nil {
			return nil, fmt.Errorf("generator input %d: %w", i, err)
		}
		params[i] = p
	}
	out := make([]nest.Value, len(g.Outputs))
	for k, o := range g.Outputs {
		if k >= len(linked) || !linked[k] {
			continue
		}
		if o.Fn == nil {
			return nil, fmt.Errorf("generator output %s: no function", o.Name)
		}
		items := nest.Seq{}
		for tuple := range nest.ZipRepeat(params...) {
			item, err := o.Fn(tuple...)
			if err != nil {
				return nil, fmt.Errorf("generator output %s: %w", o.Name, err)
			}
			items = append(items, item)
		}
		out[k] = items
	}
	return out, nil
}

// firstObject returns the parameter list of an input: its first element,
// promoted to a singleton list if it is a scalar.
func firstObject(v nest.Value) ([]nest.Value, error) {
	switch nest.Classify(v) {
	case nest.KindScalar:
		return []nest.Value{v}, nil
	case nest.KindSeq:
		s := v.(nest.Seq)
		if len(s) == 0 {
			return nil, nil
		}
		if inner, ok := s[0].(nest.Seq); ok {
			return inner, nil
		}
		return []nest.Value{s[0]}, nil
	}
	return nil, &nest.ClassificationError{Got: fmt.Sprintf("%T", v)}
}
