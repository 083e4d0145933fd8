package verifier

import (
	"fmt"
	"strings"

	"casepay-service/internal/pkg/constvars"
)

// stompFrame is a minimal STOMP 1.1 frame. The verification relay only
// uses CONNECT/CONNECTED, SUBSCRIBE, SEND, MESSAGE and ERROR, so a full
// STOMP client would be more protocol than this exchange needs.
type stompFrame struct {
	Command string
	Headers map[string]string
	Body    string
}

const stompNull = "\x00"

func marshalStompFrame(frame stompFrame) []byte {
	var builder strings.Builder
	builder.WriteString(frame.Command)
	builder.WriteString("\n")
	for key, value := range frame.Headers {
		builder.WriteString(key)
		builder.WriteString(":")
		builder.WriteString(value)
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(frame.Body)
	builder.WriteString(stompNull)
	return []byte(builder.String())
}

func parseStompFrame(raw []byte) (*stompFrame, error) {
	payload := strings.TrimSuffix(string(raw), stompNull)
	payload = strings.TrimPrefix(payload, "\n")
	if payload == "" {
		// Heartbeat, not a frame.
		return nil, nil
	}

	headerBlock, body, _ := strings.Cut(payload, "\n\n")
	lines := strings.Split(headerBlock, "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("stomp frame missing command")
	}

	frame := &stompFrame{
		Command: strings.TrimRight(lines[0], "\r"),
		Headers: make(map[string]string, len(lines)-1),
		Body:    strings.TrimSuffix(body, "\n"),
	}
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("stomp header %q missing separator", line)
		}
		if _, exists := frame.Headers[key]; !exists {
			frame.Headers[key] = value
		}
	}

	switch frame.Command {
	case constvars.StompCommandConnected, constvars.StompCommandMessage, constvars.StompCommandError:
		return frame, nil
	default:
		return nil, fmt.Errorf("unexpected stomp command %q", frame.Command)
	}
}
