package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code:
// 0 on success (including when nothing is focused), 1 when talking to the
// compositor fails or it rejects a command, 2 on usage errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	errColor := color.New(color.FgRed, color.Bold)
	var failed *commandError
	if errors.As(err, &failed) {
		errColor.Fprint(stderr, "error: ")
		fmt.Fprintln(stderr, failed.err)
		return 1
	}
	errColor.Fprint(stderr, "usage error: ")
	fmt.Fprintln(stderr, err)
	fmt.Fprintln(stderr, "Run 'swaynav --help' for usage.")
	return 2
}

// commandError marks a failure that happened while running a command, as
// opposed to a problem with the command line itself.
type commandError struct {
	err error
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

func failed(err error) error {
	if err == nil {
		return nil
	}
	return &commandError{err: err}
}
