// +build debug

// Package assert provides invariant checks for the diagram and merger
// data structures. True/False are no-ops unless the module is built
// with the 'debug' build tag, mirroring github.com/arl/assertgo.
package assert

import (
	"fmt"
	"log"
)

// True panics if cond is false. Only active with the 'debug' build tag.
func True(cond bool, format string, args ...interface{}) {
	if !cond {
		log.Println("--- --- invariant violated --- ---")
		if len(args) == 0 {
			panic(format)
		}
		panic(fmt.Sprintf(format, args...))
	}
}

// False panics if cond is true. Only active with the 'debug' build tag.
func False(cond bool, format string, args ...interface{}) {
	True(!cond, format, args...)
}
