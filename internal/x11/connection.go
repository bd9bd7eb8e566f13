package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// socketPathAtom is set on the root window by i3 to advertise its IPC socket.
const socketPathAtom = "I3_SOCKET_PATH"

// Connection manages the X11 connection and the root window.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server named by DISPLAY.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// I3SocketPath reads the I3_SOCKET_PATH property of the root window.
func (c *Connection) I3SocketPath() (string, error) {
	path, err := xprop.PropValStr(xprop.GetProperty(c.XUtil, c.Root, socketPathAtom))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", socketPathAtom, err)
	}
	return path, nil
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// I3SocketPath connects to the X server, reads the socket path advertised by
// i3 and disconnects again.
func I3SocketPath() (string, error) {
	conn, err := NewConnection()
	if err != nil {
		return "", err
	}
	defer conn.Close()
	return conn.I3SocketPath()
}
