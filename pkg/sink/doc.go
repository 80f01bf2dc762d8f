/*
Package sink delivers converted values to their destination.

A Sink receives the structured values produced by dump.Context.StructuredValue for one dump
call: *dump.Properties for mappings, []any for sequences, scalars, and the Ref and Circular
markers. Every one of them has a plain-text String fallback, so a sink that knows nothing
about them still prints something readable.

The package provides a colored console sink, an slog sink, a YAML document sink, and the
Discard and Multi combinators. FromConfig builds one of them from a Config, which can be read
from YAML or JSON with LoadConfig or decoded from a generic map with DecodeConfig.
*/
package sink
