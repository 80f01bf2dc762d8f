// Package registry keeps named roots: live values that debugging surfaces can look up and dump.
package registry
