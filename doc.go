/*
Package dumpable prints readable, cycle-safe descriptions of arbitrary in-memory values
for debugging.

Any value can be dumped: scalars, strings, maps, slices, structs, pointers, functions, and
graphs of those that refer back to themselves. Types that want to choose what is shown
implement Dumpable, usually by embedding Base, and every such entity carries a unique
identity rendered as a reference string like `[Node#3]`.

# Usage

	type Node struct {
		dumpable.Base
		Name   string
		Parent *Node
	}

	func (n *Node) DumpProperties(d dumpable.PropertyDumper) {
		n.Base.DumpProperties(d)
		d.Add("name", n.Name).AddRefIfTruthy("parent", n.Parent)
	}

	root := &Node{Base: dumpable.NewBase(), Name: "root"}
	child := &Node{Base: dumpable.NewBase(), Name: "child", Parent: root}

	dumpable.Dump("tree:", root, child)   // structured values to the default sink
	s := dumpable.ToDebugString(child)    // { @: [Node#2], name: "child", parent: [Node#1] }

Dump converts all its arguments with one conversion context and hands them to a sink from
package sink: a colored console on stderr by default, or slog, YAML, or any Sink given to New
through WithSink. ToDebugString has no side effects.

The conversion engine lives in package dump; this package re-exports its core types.
*/
package dumpable
