package proppath

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by resolvers for names, attributes or keys which
// do not exist.
var ErrNotFound = errors.New("property not found")

// Resolver looks up objects of a host environment.
type Resolver interface {
	Global(name string) (any, error)
	Attr(obj any, name string) (any, error)
	Key(obj any, key any) (any, error)
}

// Setter is a Resolver which can also write attributes and keys.
type Setter interface {
	Resolver
	SetAttr(obj any, name string, v any) error
	SetKey(obj any, key any, v any) error
}

// Get follows path p from its global name to the final object.
func Get(r Resolver, p Path) (any, error) {
	if len(p) == 0 || p[0].Kind != StepName {
		return nil, fmt.Errorf("property path must start with a name")
	}
	obj, err := r.Global(p[0].Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p[0].Name, err)
	}
	for i, s := range p[1:] {
		switch s.Kind {
		case StepAttr:
			obj, err = r.Attr(obj, s.Name)
		case StepKey:
			obj, err = r.Key(obj, s.Key)
		default:
			err = fmt.Errorf("unexpected %s step", s.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p[:i+2], err)
		}
	}
	return obj, nil
}

// Set resolves all but the last step of p and writes v through the last one.
// Globals cannot be replaced.
func Set(s Setter, p Path, v any) error {
	if len(p) < 2 {
		return fmt.Errorf("property path %s: cannot assign to a global", p)
	}
	parent, err := Get(s, p[:len(p)-1])
	if err != nil {
		return err
	}
	last := p[len(p)-1]
	switch last.Kind {
	case StepAttr:
		err = s.SetAttr(parent, last.Name, v)
	case StepKey:
		err = s.SetKey(parent, last.Key, v)
	default:
		err = fmt.Errorf("unexpected %s step", last.Kind)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	tracer().Debugf("set %s", p)
	return nil
}

// MapResolver serves paths into nested map[string]any and []any values.
// Attributes and string keys address map entries, integer keys address
// slice elements; negative indices count from the end.
type MapResolver struct {
	Globals map[string]any
}

var _ Setter = (*MapResolver)(nil)

func (m *MapResolver) Global(name string) (any, error) {
	obj, ok := m.Globals[name]
	if !ok {
		return nil, ErrNotFound
	}
	return obj, nil
}

func (m *MapResolver) Attr(obj any, name string) (any, error) {
	return m.Key(obj, name)
}

func (m *MapResolver) Key(obj any, key any) (any, error) {
	switch x := obj.(type) {
	case map[string]any:
		k, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: map key %v", ErrNotFound, key)
		}
		v, ok := x[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, k)
		}
		return v, nil
	case []any:
		i, err := index(x, key)
		if err != nil {
			return nil, err
		}
		return x[i], nil
	}
	return nil, fmt.Errorf("%w: %T has no key %v", ErrNotFound, obj, key)
}

func (m *MapResolver) SetAttr(obj any, name string, v any) error {
	return m.SetKey(obj, name, v)
}

func (m *MapResolver) SetKey(obj any, key any, v any) error {
	switch x := obj.(type) {
	case map[string]any:
		k, ok := key.(string)
		if !ok {
			return fmt.Errorf("map key %v is not a string", key)
		}
		x[k] = v
		return nil
	case []any:
		i, err := index(x, key)
		if err != nil {
			return err
		}
		x[i] = v
		return nil
	}
	return fmt.Errorf("cannot assign to %T", obj)
}

func index(s []any, key any) (int, error) {
	i, ok := key.(int)
	if !ok {
		return 0, fmt.Errorf("%w: list index %v", ErrNotFound, key)
	}
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		return 0, fmt.Errorf("%w: index %v out of range", ErrNotFound, key)
	}
	return i, nil
}
