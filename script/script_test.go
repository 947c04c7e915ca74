package script

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ScriptTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged.script")
	defer teardown()
	suite.Run(t, new(ScriptTestEnviron))
}

// run once, before test suite methods
func (env *ScriptTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("ragged.script").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *ScriptTestEnviron) TestNodeNotReady() {
	n := scaleNode(&Auto{Fn: mul})
	err := n.Process()
	env.Require().Error(err)
	env.True(errors.Is(err, ErrNotReady))
	var nre *NotReadyError
	env.Require().True(errors.As(err, &nre))
	env.Equal("offset", nre.Socket)
	env.False(n.Ready())
	env.Nil(n.Outputs[0].Data)
}

func (env *ScriptTestEnviron) TestNodeUsesLinkedDataOverDefault() {
	n := scaleNode(&Auto{Fn: mul})
	n.Inputs[0].Default = nest.Ints(100)
	n.Inputs[0].Linked = true
	n.Inputs[0].Data = nest.Ints(1, 2, 3)
	n.Inputs[1].Default = nest.Int(10)
	env.Require().True(n.Ready())
	env.Require().NoError(n.Process())
	env.valueEqual(nest.Ints(10, 20, 30), n.Output("result").Data)
}

func (env *ScriptTestEnviron) TestAutoUnlimitedDepth() {
	var v nest.Value = nest.Int(1)
	for range nest.DefaultMaxDepth + 200 {
		v = nest.List(v)
	}
	out, err := (&Auto{Fn: mul}).Process([]nest.Value{v, nest.Int(3)}, []bool{true})
	env.Require().NoError(err)
	env.Equal(nest.DefaultMaxDepth+200, nest.Depth(out[0]))

	_, err = (&Auto{Fn: mul, Options: &nest.Options{MaxDepth: 10}}).Process(
		[]nest.Value{v, nest.Int(3)}, []bool{true})
	env.True(errors.Is(err, nest.ErrDepthExhausted))
}

func (env *ScriptTestEnviron) TestGenerator() {
	g := &Generator{Outputs: []GeneratorOutput{
		{Name: "sum", Fn: func(p ...nest.Value) (nest.Value, error) {
			return nest.Map(add, p...)
		}},
		{Name: "never", Fn: func(p ...nest.Value) (nest.Value, error) {
			env.Fail("unlinked output must not be produced")
			return nil, nil
		}},
	}}
	in := []nest.Value{
		nest.List(nest.Ints(1, 2, 3), nest.Ints(99)),
		nest.List(nest.Ints(10)),
	}
	out, err := g.Process(in, []bool{true, false})
	env.Require().NoError(err)
	env.Require().Len(out, 2)
	env.valueEqual(nest.Ints(11, 12, 13), out[0])
	env.Nil(out[1])

	out, err = g.Process([]nest.Value{nest.Int(4), nest.List(nest.Int(5))}, []bool{true, false})
	env.Require().NoError(err)
	env.valueEqual(nest.Ints(9), out[0])

	out, err = g.Process([]nest.Value{nest.Seq{}, nest.Int(5)}, []bool{true, false})
	env.Require().NoError(err)
	env.valueEqual(nest.Seq{}, out[0])
}

func (env *ScriptTestEnviron) TestGeneratorNoFunction() {
	g := &Generator{Outputs: []GeneratorOutput{{Name: "x"}}}
	_, err := g.Process([]nest.Value{nest.List(nest.Ints(1, 2))}, []bool{true})
	env.Require().Error(err)
	env.Contains(err.Error(), "no function")

	out, err := g.Process([]nest.Value{nest.List(nest.Ints(1, 2))}, []bool{false})
	env.Require().NoError(err)
	env.Nil(out[0])
}

func (env *ScriptTestEnviron) TestFunction() {
	var seen []int
	f := &Function{
		Outputs: 2,
		Fn: func(depth []int, args ...nest.Value) ([]nest.Value, error) {
			seen = depth
			return []nest.Value{args[1], args[0]}, nil
		},
	}
	in := []nest.Value{
		nest.List(nest.Ints(1, 2), nest.Ints(3, 4)),
		nest.Ints(5, 6, 7),
	}
	out, err := f.Process(in, []bool{true, true})
	env.Require().NoError(err)
	env.Equal([]int{2, 1}, seen)
	env.valueEqual(nest.Ints(5, 6), out[0])
	env.valueEqual(nest.List(nest.Ints(1, 2), nest.Ints(3, 4)), out[1])

	out, err = f.Process(in, []bool{false, true})
	env.Require().NoError(err)
	env.Nil(out[0])
	env.NotNil(out[1])
}

func (env *ScriptTestEnviron) TestFunctionNegativeOutputs() {
	f := &Function{
		Outputs: -1,
		Fn: func(depth []int, args ...nest.Value) ([]nest.Value, error) {
			return nil, nil
		},
	}
	_, err := f.Process([]nest.Value{nest.Seq{}}, nil)
	env.Error(err)
}

func (env *ScriptTestEnviron) TestFunctionOutputArity() {
	f := &Function{
		Outputs: 2,
		Fn: func(depth []int, args ...nest.Value) ([]nest.Value, error) {
			return args[:1], nil
		},
	}
	_, err := f.Process([]nest.Value{nest.Ints(1)}, []bool{true, true})
	var oae *nest.OutputArityError
	env.Require().True(errors.As(err, &oae))
	env.Equal(2, oae.Want)
	env.Equal(1, oae.Got)
}

func (env *ScriptTestEnviron) TestDefaults() {
	d, err := ParseDefaults([]byte(`
nodes:
  Scale:
    inputs:
      factor: 2.0
      offset: [0, 1]
    function: mul
  Broken:
    function: no-such-function
`))
	env.Require().NoError(err)
	n := scaleNode(&Auto{})
	env.Require().NoError(d.Apply(n))
	env.Require().NoError(n.Process())
	env.valueEqual(nest.Floats(0, 2), n.Output("result").Data)

	b := scaleNode(&Auto{})
	b.Name = "Broken"
	env.NoError(d.Apply(b))
	env.Nil(b.Script.(*Auto).Fn)

	other := &Node{Name: "Scale", Inputs: []*Socket{{Name: "factor"}}}
	env.Error(d.Apply(other))
	env.Nil(other.Input("factor").Default, "failed Apply must leave the node unchanged")
}

func (env *ScriptTestEnviron) TestDefaultsFileMissing() {
	d, err := LoadDefaults(filepath.Join(env.T().TempDir(), "none.yaml"))
	env.Require().NoError(err)
	env.Empty(d.Nodes)
	env.NoError(d.Apply(scaleNode(&Auto{})))

	_, err = ParseDefaults([]byte("nodes:\n  X:\n    inputs:\n      a: [1, yes]\n"))
	env.True(errors.Is(err, nest.ErrClassification))
}

func (env *ScriptTestEnviron) TestLabel() {
	n := &Node{Name: "Scale"}
	env.Equal("Scale", n.Label())
	n.Title = "Scale it"
	env.Equal("Scale it", n.Label())
}

// --- Helpers ---------------------------------------------------------------

func scaleNode(s Script) *Node {
	return &Node{
		Name:    "Scale",
		Inputs:  []*Socket{{Name: "offset"}, {Name: "factor"}},
		Outputs: []*Socket{{Name: "result", Linked: true}},
		Script:  s,
	}
}

func mul(args ...nest.Scalar) (nest.Scalar, error) {
	if args[0].IsInt() && args[1].IsInt() {
		return nest.Int(args[0].Int64() * args[1].Int64()), nil
	}
	return nest.Float(args[0].Float64() * args[1].Float64()), nil
}

func add(args ...nest.Scalar) (nest.Scalar, error) {
	return nest.Int(args[0].Int64() + args[1].Int64()), nil
}

func (env *ScriptTestEnviron) valueEqual(want, got nest.Value) {
	env.True(nest.Equal(want, got), "expected %s, got %s", nest.Format(want), nest.Format(got))
}
