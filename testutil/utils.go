package testutil

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertLines compares output line by line, treating lines that are only
// whitespace as equal.
func AssertLines(t *testing.T, expected string, actual string) {
	t.Helper()

	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	for i := 0; i < len(expectedLines); i = i + 1 {
		if i > len(actualLines)-1 {
			t.Fatalf("Expected %s, but got no line", expectedLines[i])
		} else if strings.TrimSpace(expectedLines[i]) == "" && strings.TrimSpace(actualLines[i]) == "" {
			continue
		} else if !assert.Equal(t, expectedLines[i], actualLines[i], "Mismatch on line "+strconv.Itoa(i)) {
			break
		}
	}

	if len(expectedLines) != len(actualLines) {
		t.Fatalf("Expected %d lines, but got %d lines", len(expectedLines), len(actualLines))
	}
}

// TestWriter sends everything written to it to the test log, so library logs
// show up against the test that produced them.
type TestWriter struct {
	t *testing.T
}

func (tw TestWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func NewTestWriter(t *testing.T) TestWriter {
	return TestWriter{t}
}

// CaptureStderr runs fn with os.Stderr pointed at a pipe and returns
// everything written to it.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	saved := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = saved }()

	captured := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		r.Close()
		captured <- buf.String()
	}()

	fn()
	w.Close()

	return <-captured
}
