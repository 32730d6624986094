/*
File    : koi/koierr/fatal.go

Package koierr defines the single error mode spec.md §7 specifies for
the core: fatal abort with a message. Runtime failures (wrong arity,
bad operand type, escape reaching top level, missing file for
redirection, and so on) raise a *Fatal via panic; the parser instead
collects its errors for the caller to report. The CLI's top-level
recover() and the REPL's per-input recover() catch it, following the
same recover-and-report shape as the teacher's
main/main.go:executeFileWithRecovery.
*/
package koierr

import "fmt"

// Fatal is a Koi-level fatal error: one the interpreter cannot recover
// from internally. It implements error so it can also be wrapped or
// logged with the standard library when useful.
type Fatal struct {
	Message string
}

func (f *Fatal) Error() string { return f.Message }

// Raise panics with a *Fatal built from a printf-style message. The
// fatal-abort sites in eval, cmdexec and std call this instead of
// returning an error value, matching spec.md §7's "immediately
// terminates interpretation" model.
func Raise(format string, args ...interface{}) {
	panic(&Fatal{Message: fmt.Sprintf(format, args...)})
}
