/*
File    : koi/cmdexec/stream.go

Streams (spec.md §4.5): Inherit, Null, File, Pipe. File handles opened
for a `>`/`<` redirect are not cloneable; OS pipe ends are, by
duplicating the underlying file descriptor. This backs both the pipe
family (`|`, `*|`, `&|`) and the conditional/sequential family
(`&&`, `||`, `;`), which must give each branch its own handle so that
one branch closing its copy doesn't yank the descriptor out from under
the other.
*/
package cmdexec

import (
	"fmt"
	"os"
	"syscall"
)

type streamKind int

const (
	kindInherit streamKind = iota
	kindNull
	kindFile
	kindPipe
)

// Stream is one stdio slot's source or destination while a process
// tree is being built.
type Stream struct {
	kind streamKind
	file *os.File
}

// Inherit passes the Koi process's own stdio through unchanged.
func Inherit() Stream { return Stream{kind: kindInherit} }

// Null discards writes / yields EOF on reads, like /dev/null.
func Null() Stream { return Stream{kind: kindNull} }

// fileStream wraps a redirect-target file handle. Not cloneable.
func fileStream(f *os.File) Stream { return Stream{kind: kindFile, file: f} }

// pipeStream wraps one end of an OS pipe. Cloneable.
func pipeStream(f *os.File) Stream { return Stream{kind: kindPipe, file: f} }

// clone duplicates s for use on an independent branch. File streams
// refuse (spec.md §9's documented limitation); Inherit/Null need no
// real duplication since each use reopens/redefaults independently;
// Pipe streams dup their file descriptor.
func (s Stream) clone() (Stream, error) {
	switch s.kind {
	case kindInherit, kindNull:
		return s, nil
	case kindPipe:
		dup, err := dupFile(s.file)
		if err != nil {
			return Stream{}, err
		}
		return pipeStream(dup), nil
	case kindFile:
		return Stream{}, fmt.Errorf("file stream %s cannot be cloned across a conditional branch", s.file.Name())
	}
	return Stream{}, fmt.Errorf("unknown stream kind")
}

func dupFile(f *os.File) (*os.File, error) {
	fd, err := syscall.Dup(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(fd), f.Name()), nil
}

func openWrite(path string) *os.File {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		raiseRedirectErr(path, err)
	}
	return f
}

func openAppend(path string) *os.File {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		raiseRedirectErr(path, err)
	}
	return f
}

func openRead(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		raiseRedirectErr(path, err)
	}
	return f
}
