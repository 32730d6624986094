/*
File    : koi/cmdexec/process.go

Process-tree node types (spec.md §4.5): Std (one external program),
Pipe (two children joined by an OS pipe), Cond (`&&`/`||`/`;`, whose
right side is conditionally spawned by a short-lived goroutine standing
in for the spec's "worker thread").
*/
package cmdexec

import (
	"os"
	"os/exec"

	"github.com/koi-lang/koi/parser"
)

// Node is one process-tree node: buildable in a "prepared" state and
// transitionable to "spawned" via Spawn, then joinable via Wait.
type Node interface {
	Spawn() error
	Wait() (int, error)
}

// Std is a single external program, in its prepared phase until Spawn
// runs it.
type Std struct {
	Argv   []string
	Env    []string
	Stdin  Stream
	Stdout Stream
	Stderr Stream

	cmd    *exec.Cmd
	opened []*os.File
}

func (s *Std) attach(slot int, st Stream) {
	var f *os.File
	switch st.kind {
	case kindInherit:
		switch slot {
		case 0:
			s.cmd.Stdin = os.Stdin
		case 1:
			s.cmd.Stdout = os.Stdout
		case 2:
			s.cmd.Stderr = os.Stderr
		}
		return
	case kindNull:
		var err error
		f, err = os.OpenFile(os.DevNull, os.O_RDWR, 0)
		if err != nil {
			panic(err)
		}
	case kindFile, kindPipe:
		f = st.file
	}
	switch slot {
	case 0:
		s.cmd.Stdin = f
	case 1:
		s.cmd.Stdout = f
	case 2:
		s.cmd.Stderr = f
	}
	s.opened = append(s.opened, f)
}

// Spawn starts the external program. The parent's copies of any
// file/pipe descriptors handed to the child are closed immediately
// afterward so that EOF propagates correctly (spec.md §5).
func (s *Std) Spawn() error {
	if len(s.Argv) == 0 {
		return errEmptyCommand
	}
	s.cmd = exec.Command(s.Argv[0], s.Argv[1:]...)
	s.cmd.Env = s.Env
	s.attach(0, s.Stdin)
	s.attach(1, s.Stdout)
	s.attach(2, s.Stderr)
	err := s.cmd.Start()
	for _, f := range s.opened {
		f.Close()
	}
	s.opened = nil
	return err
}

func (s *Std) Wait() (int, error) {
	err := s.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Pipe spawns and waits both children, returning the right-hand exit
// status per spec.md §4.5.
type Pipe struct {
	Left, Right Node
}

func (p *Pipe) Spawn() error {
	if err := p.Left.Spawn(); err != nil {
		return err
	}
	return p.Right.Spawn()
}

func (p *Pipe) Wait() (int, error) {
	_, lErr := p.Left.Wait()
	rStatus, rErr := p.Right.Wait()
	if rErr != nil {
		return rStatus, rErr
	}
	return rStatus, lErr
}

// Cond represents `;`, `&&`, or `||`. On Spawn it starts Left and hands
// off to a goroutine that waits for Left, then decides whether to
// spawn and wait Right.
type Cond struct {
	Left, Right Node
	Op          parser.CmdOp

	done chan condResult
}

type condResult struct {
	status int
	err    error
}

func (c *Cond) Spawn() error {
	if err := c.Left.Spawn(); err != nil {
		return err
	}
	c.done = make(chan condResult, 1)
	go func() {
		lStatus, lErr := c.Left.Wait()
		runRight := false
		switch c.Op {
		case parser.OpSeq:
			runRight = true
		case parser.OpAnd:
			runRight = lErr == nil && lStatus == 0
		case parser.OpOr:
			runRight = lErr != nil || lStatus != 0
		}
		if !runRight {
			c.done <- condResult{status: lStatus, err: lErr}
			return
		}
		if err := c.Right.Spawn(); err != nil {
			c.done <- condResult{status: -1, err: err}
			return
		}
		rStatus, rErr := c.Right.Wait()
		c.done <- condResult{status: rStatus, err: rErr}
	}()
	return nil
}

func (c *Cond) Wait() (int, error) {
	r := <-c.done
	return r.status, r.err
}
