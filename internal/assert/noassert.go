// +build !debug

package assert

// True is a no-op unless built with the 'debug' build tag.
func True(cond bool, format string, args ...interface{}) {}

// False is a no-op unless built with the 'debug' build tag.
func False(cond bool, format string, args ...interface{}) {}
