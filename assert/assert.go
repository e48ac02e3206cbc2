package assert

import "github.com/oomph-ac/physim/oerror"

// IsTrue panics with an OomphError if ok is false. It guards invariants that can only break through a bug in
// this module, never through caller input.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
