package verifier

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// wsConn is the slice of *websocket.Conn the verifier needs, so the
// session can run against a scripted connection in tests.
type wsConn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	Close() error
}

type wsDialer func(ctx context.Context, url string) (wsConn, error)

func gorillaDialer(ctx context.Context, url string) (wsConn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// sessionState tracks the verification exchange over the relay. Each
// inbound frame either advances the session or ends it.
type sessionState int

const (
	stateConnecting sessionState = iota
	stateConnected
	stateSubscribed
	stateAwaitingResult
	stateDone
)

type stompVerifier struct {
	Dial           wsDialer
	Logger         *zap.Logger
	InternalConfig *config.InternalConfig
}

var (
	stompVerifierInstance contracts.TransactionVerifier
	onceStompVerifier     sync.Once
)

func NewStompVerifier(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.TransactionVerifier {
	onceStompVerifier.Do(func() {
		stompVerifierInstance = &stompVerifier{
			Dial:           gorillaDialer,
			Logger:         logger,
			InternalConfig: internalConfig,
		}
	})
	return stompVerifierInstance
}

func (v *stompVerifier) Verify(ctx context.Context, validationTraceID string) (*responses.VerificationResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	v.Logger.Info("stompVerifier.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTraceIDKey, validationTraceID),
	)

	timeout := time.Duration(v.InternalConfig.Verifier.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	deadline, _ := ctx.Deadline()

	publicKey, err := loadPublicKey(v.InternalConfig.Verifier.PublicKeyBase64)
	if err != nil {
		return nil, exceptions.ErrVerificationEncryptToken(err)
	}
	encryptedToken, err := encryptAPIToken(publicKey, v.InternalConfig.Verifier.APIToken)
	if err != nil {
		return nil, exceptions.ErrVerificationEncryptToken(err)
	}

	conn, err := v.Dial(ctx, v.InternalConfig.Verifier.WebSocketUrl)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, exceptions.ErrVerificationTimeout(ctx.Err())
		}
		return nil, exceptions.ErrVerification(err)
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, exceptions.ErrVerification(err)
	}

	connectFrame := stompFrame{
		Command: constvars.StompCommandConnect,
		Headers: map[string]string{
			"accept-version": "1.1",
			"heart-beat":     "0,0",
			"login":          v.InternalConfig.Verifier.Username,
			"passcode":       v.InternalConfig.Verifier.Password,
		},
	}
	if err := conn.WriteMessage(websocket.TextMessage, marshalStompFrame(connectFrame)); err != nil {
		return nil, exceptions.ErrVerification(err)
	}

	state := stateConnecting
	for state != stateDone {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if isTimeoutErr(err) || ctx.Err() == context.DeadlineExceeded {
				v.Logger.Warn("stompVerifier.Verify timed out",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingTraceIDKey, validationTraceID),
				)
				return nil, exceptions.ErrVerificationTimeout(err)
			}
			return nil, exceptions.ErrVerification(err)
		}

		frame, err := parseStompFrame(raw)
		if err != nil {
			return nil, exceptions.ErrVerification(err)
		}
		if frame == nil {
			continue
		}
		if frame.Command == constvars.StompCommandError {
			return nil, exceptions.ErrVerification(fmt.Errorf("relay error: %s", frame.Headers["message"]))
		}

		switch state {
		case stateConnecting:
			if frame.Command != constvars.StompCommandConnected {
				return nil, exceptions.ErrVerification(fmt.Errorf("expected CONNECTED, got %s", frame.Command))
			}
			state = stateConnected
			if err := v.subscribe(conn); err != nil {
				return nil, err
			}
			state = stateSubscribed
			if err := v.requestReport(conn, validationTraceID, encryptedToken); err != nil {
				return nil, err
			}
			state = stateAwaitingResult

		case stateAwaitingResult:
			if frame.Command != constvars.StompCommandMessage {
				return nil, exceptions.ErrVerification(fmt.Errorf("expected MESSAGE, got %s", frame.Command))
			}
			report := new(verificationReport)
			if err := json.Unmarshal([]byte(frame.Body), report); err != nil {
				return nil, exceptions.ErrVerification(err)
			}
			result := interpret(report, validationTraceID)
			v.Logger.Info("stompVerifier.Verify succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("response_code", result.ResponseCode),
				zap.Bool("completed", result.Completed),
			)
			return result, nil
		}
	}
	return nil, exceptions.ErrVerification(fmt.Errorf("session ended without a result"))
}

// subscribe registers for the result topic before the report request
// goes out. Subscribing after SEND can lose a fast answer.
func (v *stompVerifier) subscribe(conn wsConn) error {
	subscribeFrame := stompFrame{
		Command: constvars.StompCommandSubscribe,
		Headers: map[string]string{
			"id":          "0",
			"destination": v.InternalConfig.Verifier.SubscribeTopic,
		},
	}
	if err := conn.WriteMessage(websocket.TextMessage, marshalStompFrame(subscribeFrame)); err != nil {
		return exceptions.ErrVerification(err)
	}
	return nil
}

func (v *stompVerifier) requestReport(conn wsConn, validationTraceID, encryptedToken string) error {
	body, err := json.Marshal(map[string]string{
		"validationTraceId": validationTraceID,
		"merchantId":        v.InternalConfig.Verifier.MerchantID,
		"apiToken":          encryptedToken,
	})
	if err != nil {
		return exceptions.ErrVerification(err)
	}
	sendFrame := stompFrame{
		Command: constvars.StompCommandSend,
		Headers: map[string]string{
			"destination":  v.InternalConfig.Verifier.SendDestination,
			"content-type": constvars.MIMEApplicationJSON,
		},
		Body: string(body),
	}
	if err := conn.WriteMessage(websocket.TextMessage, marshalStompFrame(sendFrame)); err != nil {
		return exceptions.ErrVerification(err)
	}
	return nil
}

func isTimeoutErr(err error) bool {
	netErr, ok := err.(net.Error)
	return ok && netErr.Timeout()
}
