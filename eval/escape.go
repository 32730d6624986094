/*
File    : koi/eval/escape.go

Escape models the three non-local control transfers spec.md §4.4 and §9
describe: Continue, Break, and Return. Statement execution returns an
*Escape (nil on normal completion); a loop absorbs Continue/Break, a
function call absorbs Return, and anything that reaches Run() at top
level is a fatal abort (spec.md §7).
*/
package eval

import "github.com/koi-lang/koi/objects"

type EscapeKind int

const (
	EscapeBreak EscapeKind = iota
	EscapeContinue
	EscapeReturn
)

// Escape carries one in-flight control transfer up the statement stack.
type Escape struct {
	Kind  EscapeKind
	Value objects.Value // populated only for EscapeReturn
}

func (e EscapeKind) String() string {
	switch e {
	case EscapeBreak:
		return "break"
	case EscapeContinue:
		return "continue"
	case EscapeReturn:
		return "return"
	default:
		return "escape"
	}
}
