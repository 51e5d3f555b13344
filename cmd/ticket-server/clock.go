package main

import "time"

// wallClockSeconds samples wall-clock time in whole seconds. The
// protocol only ever compares this value against itself (spec.md §4.4),
// so wall-clock seconds are an acceptable clock source.
func wallClockSeconds() uint64 {
	return uint64(time.Now().Unix())
}
