/*
Package proppath reads and writes properties of host objects addressed by
path expressions like

	objs['Cube'].location
	scene.frame_current
	data.meshes[0].vertices[3]

A path starts with a global name, followed by attribute steps (".name") and
key steps ("[0]", "['x']"). Short aliases for frequent prefixes may be
expanded with [Aliases.Expand] before parsing.

Objects are never accessed directly. Clients inject a [Resolver] (and a
[Setter] for writing) which knows how to look up globals, attributes and keys
of their host objects. [MapResolver] serves nested maps and slices.

Values read are converted to nested data with [Wrap]: a number becomes
[[x]], a vector [[[x, y, z]]], a matrix [[row0, row1, …]]. Writing takes the
first item of nested data, see [FirstItem].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package proppath

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged.path'
func tracer() tracing.Trace {
	return tracing.Select("ragged.path")
}
