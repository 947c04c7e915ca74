/*
Package casefile reads golden broadcasting cases from YAML files for tests.

A case file looks like this:

	cases:
	  - name: scalar against sequence
	    func: add
	    args: [5, [1, 2, 3]]
	    want: [6, 7, 8]
	  - name: divmod
	    func: divmod
	    args: [[7, 9], 4]
	    wants: [[1, 2], [3, 1]]
	  - name: strict lengths
	    func: add
	    padding: strict
	    args: [[1, 2, 3], [1, 2]]
	    error: length

Every element of args is one argument of the call.
*/
package casefile

import (
	"fmt"
	"os"

	"github.com/npillmayer/ragged/nest"
	"gopkg.in/yaml.v3"
)

// Case is one expected broadcasting result.
type Case struct {
	Name  string
	Func  string
	Args  []nest.Value
	Want  []nest.Value // One value per function result; empty if an error is expected
	Error string       // Expected error class, empty if the call must succeed
	Opts  nest.Options
}

type rawFile struct {
	Cases []rawCase `yaml:"cases"`
}

type rawCase struct {
	Name     string      `yaml:"name"`
	Func     string      `yaml:"func"`
	Args     yaml.Node   `yaml:"args"`
	Want     yaml.Node   `yaml:"want"`
	Wants    []yaml.Node `yaml:"wants"`
	Error    string      `yaml:"error"`
	Padding  string      `yaml:"padding"`
	MaxDepth int         `yaml:"max_depth"`
}

// Load reads all cases from a file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads all cases from YAML data.
func Parse(data []byte) ([]Case, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("case file: %w", err)
	}
	cases := make([]Case, 0, len(raw.Cases))
	for i, rc := range raw.Cases {
		c, err := rc.convert()
		if err != nil {
			return nil, fmt.Errorf("case file: case #%d (%s): %w", i, rc.Name, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (rc *rawCase) convert() (Case, error) {
	c := Case{Name: rc.Name, Func: rc.Func, Error: rc.Error}
	var err error
	if c.Opts.Padding, err = nest.ParsePadding(rc.Padding); err != nil {
		return c, err
	}
	c.Opts.MaxDepth = rc.MaxDepth
	if rc.Args.Kind != yaml.SequenceNode {
		return c, fmt.Errorf("args must be a sequence")
	}
	for _, n := range rc.Args.Content {
		v, err := nest.FromYAML(n)
		if err != nil {
			return c, fmt.Errorf("args: %w", err)
		}
		c.Args = append(c.Args, v)
	}
	if rc.Want.Kind != 0 {
		v, err := nest.FromYAML(&rc.Want)
		if err != nil {
			return c, fmt.Errorf("want: %w", err)
		}
		c.Want = append(c.Want, v)
	}
	for i := range rc.Wants {
		v, err := nest.FromYAML(&rc.Wants[i])
		if err != nil {
			return c, fmt.Errorf("wants: %w", err)
		}
		c.Want = append(c.Want, v)
	}
	if c.Error == "" && len(c.Want) == 0 {
		return c, fmt.Errorf("neither want nor error given")
	}
	return c, nil
}
