package identity

import "sync/atomic"

// Counter hands out monotonically increasing identities starting at 1.
// The zero value is ready to use.
type Counter struct {
	last atomic.Uint64
}

// Next returns the next identity. Every call returns a distinct value.
func (c *Counter) Next() uint64 {
	return c.last.Add(1)
}

// Peek returns the identity the next call to Next would return.
func (c *Counter) Peek() uint64 {
	return c.last.Load() + 1
}

var process Counter

// Next returns the next process-wide identity.
func Next() uint64 {
	return process.Next()
}

// Peek returns the process-wide identity that Next would hand out.
func Peek() uint64 {
	return process.Peek()
}
