package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casepay-service/internal/pkg/constvars"
)

func TestMarshalStompFrame(t *testing.T) {
	raw := marshalStompFrame(stompFrame{
		Command: constvars.StompCommandSend,
		Headers: map[string]string{"destination": "/app/verify"},
		Body:    `{"validationTraceId":"trace-1"}`,
	})

	assert.Equal(t, "SEND\ndestination:/app/verify\n\n{\"validationTraceId\":\"trace-1\"}\x00", string(raw))
}

func TestParseStompFrame(t *testing.T) {
	t.Run("message frame round trip", func(t *testing.T) {
		frame, err := parseStompFrame([]byte("MESSAGE\nsubscription:0\ncontent-type:application/json\n\n{\"responseCode\":\"200\"}\x00"))
		require.NoError(t, err)
		require.NotNil(t, frame)

		assert.Equal(t, constvars.StompCommandMessage, frame.Command)
		assert.Equal(t, "0", frame.Headers["subscription"])
		assert.Equal(t, "application/json", frame.Headers["content-type"])
		assert.Equal(t, `{"responseCode":"200"}`, frame.Body)
	})

	t.Run("heartbeat parses to nil frame", func(t *testing.T) {
		frame, err := parseStompFrame([]byte("\n"))
		require.NoError(t, err)
		assert.Nil(t, frame)
	})

	t.Run("connected frame with carriage returns", func(t *testing.T) {
		frame, err := parseStompFrame([]byte("CONNECTED\r\nversion:1.1\r\n\r\n\x00"))
		require.NoError(t, err)
		require.NotNil(t, frame)
		assert.Equal(t, constvars.StompCommandConnected, frame.Command)
		assert.Equal(t, "1.1", frame.Headers["version"])
	})

	t.Run("first header value wins on duplicates", func(t *testing.T) {
		frame, err := parseStompFrame([]byte("ERROR\nmessage:first\nmessage:second\n\n\x00"))
		require.NoError(t, err)
		assert.Equal(t, "first", frame.Headers["message"])
	})

	t.Run("unexpected command is rejected", func(t *testing.T) {
		_, err := parseStompFrame([]byte("RECEIPT\nreceipt-id:1\n\n\x00"))
		assert.Error(t, err)
	})

	t.Run("header without separator is rejected", func(t *testing.T) {
		_, err := parseStompFrame([]byte("MESSAGE\nbroken header\n\n\x00"))
		assert.Error(t, err)
	})
}
