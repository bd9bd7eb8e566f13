package runtimepath

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Source names where a socket path was found.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceSwaySock Source = "SWAYSOCK"
	SourceI3Sock   Source = "I3SOCK"
	SourceX11      Source = "X11 I3_SOCKET_PATH"
)

// ErrNotFound is returned when no source yields a socket path.
var ErrNotFound = errors.New("no compositor IPC socket found")

// Options controls socket discovery.
type Options struct {
	// Explicit wins over everything else when non-empty.
	Explicit string
	// X11 reads the I3_SOCKET_PATH property from the X root window. Nil
	// disables the lookup.
	X11 func() (string, error)
}

// SocketPath returns the IPC socket of the running compositor. Priority:
// 1) explicit path (flag or config)
// 2) SWAYSOCK
// 3) I3SOCK
// 4) I3_SOCKET_PATH on the X11 root window (i3 only)
func SocketPath(opts Options) (string, Source, error) {
	if p := strings.TrimSpace(opts.Explicit); p != "" {
		return p, SourceExplicit, nil
	}
	if p := os.Getenv("SWAYSOCK"); p != "" {
		return p, SourceSwaySock, nil
	}
	if p := os.Getenv("I3SOCK"); p != "" {
		return p, SourceI3Sock, nil
	}

	tried := []string{"SWAYSOCK", "I3SOCK"}
	if opts.X11 != nil {
		p, err := opts.X11()
		if err == nil && p != "" {
			return p, SourceX11, nil
		}
		if err != nil {
			tried = append(tried, fmt.Sprintf("X11 (%v)", err))
		} else {
			tried = append(tried, "X11")
		}
	}
	return "", "", fmt.Errorf("%w: tried %s; is sway or i3 running?", ErrNotFound, strings.Join(tried, ", "))
}
