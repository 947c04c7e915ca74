package nest

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Parse reads a value from its YAML notation. Flow style ("[1, [2.5, 3]]")
// is the usual form, but block sequences work as well. Integers and floats
// become scalars of the respective kind, sequences become Seqs. Strings,
// booleans, nulls and mappings are rejected with a *ClassificationError.
func Parse(src string) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("parse nested literal: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &ClassificationError{Got: "empty document"}
	}
	return FromYAML(&doc)
}

// MustParse is like Parse but panics on error. It is intended for tests and
// literals known to be valid.
func MustParse(src string) Value {
	v, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return v
}

// FromYAML converts a decoded YAML node into a Value. Aliases are followed.
// This is useful for values embedded in larger YAML documents.
func FromYAML(n *yaml.Node) (Value, error) {
	return fromYAML(n, nil)
}

func fromYAML(n *yaml.Node, path []int) (Value, error) {
	if n == nil {
		return nil, &ClassificationError{Path: slices.Clone(path), Got: "nil"}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, &ClassificationError{Path: slices.Clone(path), Got: "empty document"}
		}
		return fromYAML(n.Content[0], path)
	case yaml.AliasNode:
		return fromYAML(n.Alias, path)
	case yaml.SequenceNode:
		q := make(Seq, len(n.Content))
		for i, c := range n.Content {
			v, err := fromYAML(c, append(path, i))
			if err != nil {
				return nil, err
			}
			q[i] = v
		}
		return q, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			var i int64
			if err := n.Decode(&i); err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", n.Line, n.Column, err)
			}
			return Int(i), nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", n.Line, n.Column, err)
			}
			return Float(f), nil
		}
		return nil, &ClassificationError{
			Path: slices.Clone(path),
			Got:  fmt.Sprintf("%s %q (line %d, column %d)", n.ShortTag(), n.Value, n.Line, n.Column),
		}
	}
	return nil, &ClassificationError{
		Path: slices.Clone(path),
		Got:  fmt.Sprintf("%s (line %d, column %d)", n.ShortTag(), n.Line, n.Column),
	}
}
