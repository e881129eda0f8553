package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elseano/spinner/testutil"
)

func TestRemoveEscapes(t *testing.T) {
	assert.Equal(t, "▁ busy", RemoveEscapes("\x1b[2K\x1b[96m▁\x1b[0m busy"))
}

func TestCollapseReturns(t *testing.T) {
	require.Equal(t, "three\nfour", CollapseReturns("one\rtwo\rthree\r\nfour"))
	require.Equal(t, "plain", CollapseReturns("plain"))
	require.Equal(t, "done\n", CollapseReturns("\r▁ a\r▃ b\rdone\n"))
}

func TestVisibleText(t *testing.T) {
	assert.Equal(t, "msg\n▄ c", VisibleText("\r\x1b[2K▁ a\r\x1b[2Kmsg\n\r\x1b[2K▄ c"))
}

func TestConsoleWidthOfBuffer(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, DefaultConsoleWidth, GetConsoleWidth(&buf))
}

func TestRedirectLogger(t *testing.T) {
	var buf bytes.Buffer
	RedirectLogger(&buf)
	defer ResetLogger()

	Logger.Info().Str("status", "busy").Msg("Starting spinner")

	assert.Contains(t, buf.String(), "Starting spinner")
	assert.Contains(t, buf.String(), "status=busy")
}

func TestDebugLogDisabled(t *testing.T) {
	closer, err := SetDebugLog(false)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	RedirectLogger(testutil.NewTestWriter(t))
	defer ResetLogger()

	Logger.Debug().Msg("visible in verbose test output")
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	out := testutil.CaptureStderr(t, func() {
		ResetLogger()
		Logger.Error().Msg("should not appear")
		Logger.Debug().Msg("nor this")
	})

	assert.Empty(t, out)
}

func TestSetDebugLogDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	RedirectLogger(&buf)
	defer ResetLogger()

	_, err := SetDebugLog(false)
	require.NoError(t, err)

	Logger.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}
