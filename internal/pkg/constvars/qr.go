package constvars

// Payment network response interpretation. Any responseCode other than
// QR_RESPONSE_CODE_OK means the transaction has not completed, whatever
// the reason; the description carries the human-readable detail.
const (
	QR_RESPONSE_CODE_OK        = "200"
	QR_RESPONSE_STATUS_SUCCESS = "SUCCESS"
)

const (
	StompCommandConnect   = "CONNECT"
	StompCommandConnected = "CONNECTED"
	StompCommandSubscribe = "SUBSCRIBE"
	StompCommandSend      = "SEND"
	StompCommandMessage   = "MESSAGE"
	StompCommandError     = "ERROR"
)
