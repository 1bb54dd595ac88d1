//go:build !debug

package debug

// Debug is true when the binary was built with the debug build tag.
const Debug = false

// Assert does nothing if debug flag is not provided
// if debug flag is provided, panics if condition is false.
func Assert(condition bool, message ...string) {}
