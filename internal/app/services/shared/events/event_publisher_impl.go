package events

import (
	"context"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type paymentEventPublisher struct {
	Connection     *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *config.InternalConfig
}

var (
	publisherInstance contracts.PaymentEventPublisher
	oncePublisher     sync.Once
)

func NewPaymentEventPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentEventPublisher {
	oncePublisher.Do(func() {
		publisherInstance = &paymentEventPublisher{
			Connection:     connection,
			Logger:         logger,
			InternalConfig: internalConfig,
		}
	})
	return publisherInstance
}

type paymentPaidEvent struct {
	PaymentID         string  `json:"paymentId"`
	CaseNumber        string  `json:"caseNumber"`
	TransactionID     string  `json:"transactionId"`
	TypeOfPayment     string  `json:"typeOfPayment"`
	AmountInDollar    float64 `json:"amountInDollar"`
	PaidAmount        float64 `json:"paidAmount"`
	ValidationTraceID string  `json:"validationTraceId,omitempty"`
	DateOfPayment     string  `json:"dateOfPayment"`
}

func (p *paymentEventPublisher) PublishPaid(ctx context.Context, payment *models.Payment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Logger.Info("paymentEventPublisher.PublishPaid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingQueueKey, p.InternalConfig.Events.PaymentPaidQueue),
	)

	queueName := p.InternalConfig.Events.PaymentPaidQueue
	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	eventBody, err := json.Marshal(paymentPaidEvent{
		PaymentID:         payment.ID,
		CaseNumber:        payment.CaseNumber,
		TransactionID:     payment.TransactionID,
		TypeOfPayment:     string(payment.TypeOfPayment),
		AmountInDollar:    payment.AmountInDollar,
		PaidAmount:        payment.PaidAmount,
		ValidationTraceID: payment.ValidationTraceID,
		DateOfPayment:     payment.DateOfPayment.Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	err = channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         eventBody,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	return nil
}
