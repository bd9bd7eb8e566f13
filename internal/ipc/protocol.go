package ipc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Magic prefixes every i3/sway IPC frame.
var Magic = [6]byte{'i', '3', '-', 'i', 'p', 'c'}

// headerSize is magic + payload length + message type.
const headerSize = len(Magic) + 4 + 4

// MaxPayloadSize bounds the payload ReadMessage accepts. Trees of busy
// sessions stay well below it.
const MaxPayloadSize = 64 << 20

// MessageType identifies a request; replies echo the type they answer.
type MessageType uint32

const (
	MessageRunCommand MessageType = 0
	MessageGetTree    MessageType = 4
	MessageGetVersion MessageType = 7
)

func (m MessageType) String() string {
	switch m {
	case MessageRunCommand:
		return "RUN_COMMAND"
	case MessageGetTree:
		return "GET_TREE"
	case MessageGetVersion:
		return "GET_VERSION"
	default:
		return fmt.Sprintf("MESSAGE_%d", uint32(m))
	}
}

// CommandResult is one entry of a RUN_COMMAND reply. Replies contain one
// result per command in the submitted batch, in order.
type CommandResult struct {
	Success    bool    `json:"success"`
	ParseError *bool   `json:"parse_error,omitempty"`
	Error      *string `json:"error,omitempty"`
}

// ErrorText returns the host-provided error message, if any.
func (r CommandResult) ErrorText() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// VersionData is the GET_VERSION reply.
type VersionData struct {
	HumanReadable        string `json:"human_readable"`
	Variant              string `json:"variant,omitempty"`
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}

// WriteMessage writes one framed message. Integers use the host byte order,
// matching what the compositor expects on a local socket.
func WriteMessage(w io.Writer, typ MessageType, payload []byte) error {
	if len(payload) > math.MaxInt32 {
		return fmt.Errorf("payload too large: %d bytes", len(payload))
	}
	buf := make([]byte, headerSize, headerSize+len(payload))
	copy(buf, Magic[:])
	binary.NativeEndian.PutUint32(buf[len(Magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(Magic)+4:], uint32(typ))
	buf = append(buf, payload...)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s message: %w", typ, err)
	}
	return nil
}

// ReadMessage reads one framed message and returns its type and payload.
func ReadMessage(r io.Reader) (MessageType, []byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, fmt.Errorf("failed to read message header: %w", err)
	}
	if !bytes.Equal(header[:len(Magic)], Magic[:]) {
		return 0, nil, fmt.Errorf("expected magic %q but got %q", Magic[:], header[:len(Magic)])
	}

	length := int32(binary.NativeEndian.Uint32(header[len(Magic):]))
	if length < 0 {
		return 0, nil, fmt.Errorf("invalid payload length %d", length)
	}
	if length > MaxPayloadSize {
		return 0, nil, fmt.Errorf("payload length %d exceeds limit of %d bytes", length, MaxPayloadSize)
	}
	typ := MessageType(binary.NativeEndian.Uint32(header[len(Magic)+4:]))

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("failed to read %s payload: %w", typ, err)
	}
	return typ, payload, nil
}
