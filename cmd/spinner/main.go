package main

import (
	"os"

	"github.com/elseano/spinner/cmd/spinner/cmd"
)

var GitCommit string
var Version string

func main() {
	switch cmd.Execute(Version, GitCommit) {
	case cmd.ErrorInvalidInput:
		os.Exit(2)
	case cmd.ErrorInternal:
		os.Exit(1)
	case cmd.ErrorInterrupted:
		os.Exit(130)
	case nil:
		os.Exit(0)
	}

	os.Exit(3)
}
