/*
Package http serves the roots of a registry over HTTP for live inspection.

	GET /roots                       one registered name per line
	GET /roots/{name}                the debug string of the root
	GET /roots/{name}?format=yaml    the structured value as a YAML document
	GET /roots/{name}?format=json    the structured value as JSON
	GET /health, GET /info           liveness and build information

Unknown roots answer 404 and unknown formats 400.
*/
package http
