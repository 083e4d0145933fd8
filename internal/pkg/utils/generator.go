package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateTransactionID builds the client-side transaction token. The
// nanosecond timestamp keeps it time-sortable; the uuid fragment keeps
// it unique when two submissions land in the same nanosecond.
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
}

func GenerateReportObjectName(reportName, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("reports/%s_%s%s", reportName, timestamp, extension)
}
