package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kr/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elseano/spinner/pkg/util"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTerminalRedrawsInPlace(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminal(&buf)

	require.NoError(t, sink.Redraw("▁ one"))
	require.NoError(t, sink.Redraw("▃ two"))
	require.NoError(t, sink.Message("hello"))
	require.NoError(t, sink.Redraw("▄ three"))
	require.NoError(t, sink.Done())

	assert.Contains(t, buf.String(), "\x1b[2K")
	assert.Equal(t, "hello\n▄ three\n", util.VisibleText(buf.String()))
}

func TestTerminalDoneWithoutRedraw(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminal(&buf)

	require.NoError(t, sink.Message("only"))
	require.NoError(t, sink.Done())

	assert.Equal(t, "only\n", util.VisibleText(buf.String()))
}

func TestTerminalTruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminal(&buf, WithWidth(10))

	require.NoError(t, sink.Redraw(strings.Repeat("x", 30)))

	assert.Equal(t, strings.Repeat("x", 9), util.VisibleText(buf.String()))
}

func TestTerminalReportsWriteFailure(t *testing.T) {
	sink := NewTerminal(brokenWriter{})

	assert.Error(t, sink.Redraw("x"))
	assert.Error(t, sink.Message("x"))
}

func TestPlainOnlyWritesFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPlain(&buf)

	require.NoError(t, sink.Redraw("- working"))
	require.NoError(t, sink.Message("step one done"))
	require.NoError(t, sink.Redraw("| still working"))
	assert.Equal(t, "step one done\n", buf.String())

	require.NoError(t, sink.Done())
	require.NoError(t, sink.Done())
	assert.Equal(t, "step one done\n| still working\n", buf.String())
}

func TestAutoSelectsPlainForBuffers(t *testing.T) {
	assert.IsType(t, &Plain{}, Auto(&bytes.Buffer{}))
}

func TestAutoSelectsTerminalForTTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pseudo terminal available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	assert.True(t, util.IsTerminal(tty))
	assert.IsType(t, &Terminal{}, Auto(tty))
}
