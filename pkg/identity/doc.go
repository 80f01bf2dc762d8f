/*
Package identity owns the single process-wide identity counter consumed by dumpable entities.

Identities start at 1 and are never reused, even after the entity that claimed one is discarded.
The increment is atomic, so entities may be constructed from any goroutine.
*/
package identity
