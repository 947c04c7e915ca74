package script

import (
	"fmt"

	"github.com/npillmayer/ragged/nest"
)

// Auto broadcasts a scalar function f(x, y, …) → t across all inputs, with
// unlimited depth unless Options say otherwise. It has a single output.
type Auto struct {
	Fn      nest.Func
	Options *nest.Options
}

var _ Script = (*Auto)(nil)

func (a *Auto) Process(in []nest.Value, linked []bool) ([]nest.Value, error) {
	if a.Fn == nil {
		return nil, fmt.Errorf("auto script: no function")
	}
	opt := a.Options
	if opt == nil {
		opt = &nest.Options{MaxDepth: -1}
	}
	v, err := nest.Broadcast(a.Fn, in, opt)
	if err != nil {
		return nil, err
	}
	return []nest.Value{v}, nil
}
