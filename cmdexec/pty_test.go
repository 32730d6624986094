package cmdexec

import (
	"bufio"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStdOverPTY(t *testing.T) {
	out, handle, err := NewPTYStream()
	require.NoError(t, err)
	defer handle.Close()

	std := &Std{
		Argv:   []string{"sh", "-c", "echo hello-from-pty"},
		Env:    []string{"PATH=/usr/bin:/bin"},
		Stdin:  Null(),
		Stdout: out,
		Stderr: Null(),
	}
	require.NoError(t, std.Spawn())

	reader := bufio.NewReader(handle.Master)
	handle.Master.SetReadDeadline(time.Now().Add(5 * time.Second))
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Contains(t, line, "hello-from-pty")

	_, err = std.Wait()
	require.NoError(t, err)
}
