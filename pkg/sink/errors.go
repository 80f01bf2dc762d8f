package sink

import "errors"

var (
	// ErrUnknownFormat is returned when a Config names a format no sink implements.
	ErrUnknownFormat = errors.New("unknown sink format")
	// ErrUnknownColorMode is returned for color modes other than auto, always and never.
	ErrUnknownColorMode = errors.New("unknown color mode")
)
