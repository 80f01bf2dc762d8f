/*
Package observability provides Prometheus metrics for dump calls.

A nil *Metrics is valid and records nothing, so callers never need to check before recording.
*/
package observability
