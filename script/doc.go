/*
Package script provides processing strategies for nodes of a dataflow graph
whose sockets carry nested numeric data.

A node has named input and output sockets and a [Script] which maps input
data to output data. Three strategies are provided:

  - [Auto] broadcasts a scalar function across all inputs, to any depth.
  - [Generator] takes the first object of every input, zips the parameters
    and produces one item per parameter tuple for each linked output.
  - [Function] calls a function once per top-level position of its inputs
    and distributes the results to several outputs.

A [Node] refuses to process while an unlinked input has no default value.
Defaults for nodes may be loaded from a YAML file, see [LoadDefaults].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged.script'
func tracer() tracing.Trace {
	return tracing.Select("ragged.script")
}
