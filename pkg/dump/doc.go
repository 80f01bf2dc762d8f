/*
Package dump converts arbitrary in-memory values into debug representations.

It is built around a cycle-safe recursive conversion engine, the Context, with two parallel output modes:

  - Display string mode (Context.DisplayString) produces a single line of text, for example
    `{ @: [Node#3], name: "root", parent: nil }`.
  - Structured value mode (Context.StructuredValue) produces a nested, type-preserving value made of
    *Properties, []any, scalars and the tagged markers Ref and Circular, for value-aware sinks.

# Dumpable entities

Types that want to control their own description implement Dumpable, usually by embedding Base:

	type Node struct {
		dump.Base
		Name   string
		Parent *Node
	}

	func NewNode(name string, parent *Node) *Node {
		return &Node{Base: dump.NewBase(), Name: name, Parent: parent}
	}

	func (n *Node) DumpProperties(d dump.PropertyDumper) {
		n.Base.DumpProperties(d)
		d.Add("name", n.Name).AddRef("parent", n.Parent)
	}

	func (n *Node) String() string { return dump.String(n) }

Every entity carries an identity taken from the process-wide counter in package identity. Its
reference string, `[Node#3]` by default, is used whenever only the identity should be shown: for
AddRef properties, and whenever the entity is reached again while it is still being expanded.
Implement RefStringer to replace the default reference text with a semantic label.

# Cycles

Each Context tracks the pointers, maps and slices it is currently expanding. Re-entering one of them
yields the entity's reference string, or `[Circular]` for plain values, instead of recursing forever.
The set is released on every exit path, including panics raised by user overrides, which propagate
unmodified.
*/
package dump
