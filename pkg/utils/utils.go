package utils

import (
	"log"
	"math"
	"runtime/debug"
)

// GoSafe runs fn in a new goroutine and recovers from panics so a single
// misbehaving task cannot take the process down.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ToPointer returns a pointer to the given value.
func ToPointer[T any](v T) *T {
	return &v
}

// RoundToCents rounds a monetary amount to two decimal places.
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
