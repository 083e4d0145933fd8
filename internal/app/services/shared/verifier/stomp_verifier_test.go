package verifier

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casepay-service/internal/app/config"
	"casepay-service/internal/pkg/exceptions"
)

// scriptedConn replays a fixed sequence of inbound frames and records
// everything the verifier writes.
type scriptedConn struct {
	inbound [][]byte
	readErr error
	written [][]byte
	closed  bool
}

func (c *scriptedConn) ReadMessage() (int, []byte, error) {
	if len(c.inbound) == 0 {
		if c.readErr != nil {
			return 0, nil, c.readErr
		}
		return 0, nil, assert.AnError
	}
	frame := c.inbound[0]
	c.inbound = c.inbound[1:]
	return 1, frame, nil
}

func (c *scriptedConn) WriteMessage(messageType int, data []byte) error {
	c.written = append(c.written, data)
	return nil
}

func (c *scriptedConn) SetReadDeadline(t time.Time) error { return nil }

func (c *scriptedConn) Close() error {
	c.closed = true
	return nil
}

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "read deadline exceeded" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func generateRelayKeys(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return privateKey, base64.StdEncoding.EncodeToString(pemBytes)
}

func newStompVerifier(conn *scriptedConn, publicKeySecret string) *stompVerifier {
	return &stompVerifier{
		Dial: func(ctx context.Context, url string) (wsConn, error) {
			return conn, nil
		},
		Logger: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			Verifier: config.Verifier{
				WebSocketUrl:    "ws://relay.test/ws",
				Username:        "relay-user",
				Password:        "relay-pass",
				MerchantID:      "merchant-9",
				APIToken:        "top-secret-token",
				PublicKeyBase64: publicKeySecret,
				SubscribeTopic:  "/user/topic/verification",
				SendDestination: "/app/verification",
				TimeoutSeconds:  2,
			},
		},
	}
}

func TestStompVerifierVerify(t *testing.T) {
	privateKey, publicKeySecret := generateRelayKeys(t)

	t.Run("connected then message completes the session", func(t *testing.T) {
		conn := &scriptedConn{inbound: [][]byte{
			marshalStompFrame(stompFrame{Command: "CONNECTED", Headers: map[string]string{"version": "1.1"}}),
			[]byte("\n"), // heartbeat between frames is ignored
			marshalStompFrame(stompFrame{
				Command: "MESSAGE",
				Headers: map[string]string{"subscription": "0"},
				Body:    `{"responseCode":"200","responseStatus":"SUCCESS","responseBody":[{"payerName":"A Payer","amount":23805.60,"validationTraceId":"trace-1"}]}`,
			}),
		}}

		result, err := newStompVerifier(conn, publicKeySecret).Verify(context.Background(), "trace-1")
		require.NoError(t, err)
		assert.True(t, result.Completed)
		assert.Equal(t, "A Payer", result.PayerName)
		assert.True(t, conn.closed)

		// CONNECT, SUBSCRIBE, then SEND, in that order.
		require.Len(t, conn.written, 3)
		assert.True(t, strings.HasPrefix(string(conn.written[0]), "CONNECT\n"))
		assert.True(t, strings.HasPrefix(string(conn.written[1]), "SUBSCRIBE\n"))
		assert.True(t, strings.HasPrefix(string(conn.written[2]), "SEND\n"))
		assert.Contains(t, string(conn.written[0]), "login:relay-user")
		assert.Contains(t, string(conn.written[1]), "destination:/user/topic/verification")
	})

	t.Run("api token is encrypted, never sent in the clear", func(t *testing.T) {
		conn := &scriptedConn{inbound: [][]byte{
			marshalStompFrame(stompFrame{Command: "CONNECTED", Headers: map[string]string{"version": "1.1"}}),
			marshalStompFrame(stompFrame{
				Command: "MESSAGE",
				Headers: map[string]string{"subscription": "0"},
				Body:    `{"responseCode":"E012"}`,
			}),
		}}

		_, err := newStompVerifier(conn, publicKeySecret).Verify(context.Background(), "trace-1")
		require.NoError(t, err)

		require.Len(t, conn.written, 3)
		sendFrame := string(conn.written[2])
		assert.NotContains(t, sendFrame, "top-secret-token")

		frame, err := parseStompFrame([]byte(strings.Replace(sendFrame, "SEND", "MESSAGE", 1)))
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal([]byte(frame.Body), &payload))
		assert.Equal(t, "trace-1", payload["validationTraceId"])
		assert.Equal(t, "merchant-9", payload["merchantId"])

		ciphertext, err := base64.StdEncoding.DecodeString(payload["apiToken"])
		require.NoError(t, err)
		plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "top-secret-token", string(plaintext))
	})

	t.Run("not-completed report is returned without error", func(t *testing.T) {
		conn := &scriptedConn{inbound: [][]byte{
			marshalStompFrame(stompFrame{Command: "CONNECTED", Headers: map[string]string{"version": "1.1"}}),
			marshalStompFrame(stompFrame{
				Command: "MESSAGE",
				Headers: map[string]string{"subscription": "0"},
				Body:    `{"responseCode":"E012","responseDescription":"transaction not found"}`,
			}),
		}}

		result, err := newStompVerifier(conn, publicKeySecret).Verify(context.Background(), "trace-1")
		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Equal(t, "E012", result.ResponseCode)
	})

	t.Run("read timeout maps to the timeout error", func(t *testing.T) {
		conn := &scriptedConn{
			inbound: [][]byte{
				marshalStompFrame(stompFrame{Command: "CONNECTED", Headers: map[string]string{"version": "1.1"}}),
			},
			readErr: fakeTimeoutError{},
		}

		_, err := newStompVerifier(conn, publicKeySecret).Verify(context.Background(), "trace-1")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 504, customErr.StatusCode)
	})

	t.Run("relay ERROR frame aborts the session", func(t *testing.T) {
		conn := &scriptedConn{inbound: [][]byte{
			marshalStompFrame(stompFrame{
				Command: "ERROR",
				Headers: map[string]string{"message": "bad credentials"},
			}),
		}}

		_, err := newStompVerifier(conn, publicKeySecret).Verify(context.Background(), "trace-1")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "bad credentials")
	})

	t.Run("malformed public key fails before dialing", func(t *testing.T) {
		conn := &scriptedConn{}
		verifier := newStompVerifier(conn, "not base64!!")

		_, err := verifier.Verify(context.Background(), "trace-1")
		require.Error(t, err)
		assert.Empty(t, conn.written)
	})
}
