/*
File    : koi/cmdexec/pty.go

NewPTYStream allocates a pseudo-terminal and wraps its slave end as a
cloneable Stream, letting tests exercise a Std node's stdio plumbing
against a real pty instead of a plain pipe — useful because some
external programs behave differently (line-buffered vs block-buffered,
isatty checks) depending on whether their stdio is a terminal.
*/
package cmdexec

import (
	"os"

	"github.com/creack/pty"
)

// PTYHandle bundles the master/slave pair returned by NewPTYStream; the
// caller reads/writes Master and passes Slave (via Stream) to a Std
// node, closing both once the process tree has finished.
type PTYHandle struct {
	Master *os.File
	Slave  *os.File
}

// NewPTYStream opens a fresh pty pair and returns the slave end wrapped
// as a pipe-kind Stream (cloneable, like an OS pipe end) alongside the
// handle the caller uses to drive the master side.
func NewPTYStream() (Stream, *PTYHandle, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return Stream{}, nil, err
	}
	return pipeStream(slave), &PTYHandle{Master: master, Slave: slave}, nil
}

// Close releases both ends of the pty pair.
func (h *PTYHandle) Close() {
	h.Slave.Close()
	h.Master.Close()
}
