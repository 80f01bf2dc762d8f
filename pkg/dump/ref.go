package dump

import (
	"encoding/json"
	"log/slog"
)

const circularText = "[Circular]"

// Ref stands for the identity of a Dumpable without expanding its properties.
// Every rendering of a Ref is the target's reference string.
type Ref struct {
	target Dumpable
}

// NewRef returns a reference to target.
func NewRef(target Dumpable) Ref {
	return Ref{target: target}
}

// Target returns the referenced entity.
func (r Ref) Target() Dumpable {
	return r.target
}

func (r Ref) String() string {
	if r.target == nil {
		return "nil"
	}
	return RefString(r.target)
}

// LogValue implements slog.LogValuer.
func (r Ref) LogValue() slog.Value {
	return slog.StringValue(r.String())
}

// MarshalYAML implements yaml.Marshaler.
func (r Ref) MarshalYAML() (any, error) {
	return r.String(), nil
}

// MarshalJSON implements json.Marshaler.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Circular marks a plain value reached again while it was still being expanded.
type Circular struct{}

func (Circular) String() string {
	return circularText
}

// LogValue implements slog.LogValuer.
func (c Circular) LogValue() slog.Value {
	return slog.StringValue(circularText)
}

// MarshalYAML implements yaml.Marshaler.
func (Circular) MarshalYAML() (any, error) {
	return circularText, nil
}

// MarshalJSON implements json.Marshaler.
func (Circular) MarshalJSON() ([]byte, error) {
	return json.Marshal(circularText)
}
