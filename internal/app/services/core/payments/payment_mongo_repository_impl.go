package payments

import (
	"context"
	"errors"
	"sync"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type paymentMongoRepository struct {
	Collection *mongo.Collection
	Logger     *zap.Logger
}

var (
	paymentMongoRepositoryInstance contracts.PaymentRepository
	oncePaymentMongoRepository     sync.Once
)

func NewPaymentMongoRepository(database *mongo.Database, logger *zap.Logger) contracts.PaymentRepository {
	oncePaymentMongoRepository.Do(func() {
		paymentMongoRepositoryInstance = &paymentMongoRepository{
			Collection: database.Collection(constvars.MongoCollectionPayments),
			Logger:     logger,
		}
	})
	return paymentMongoRepositoryInstance
}

func (r *paymentMongoRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	payment.ID = primitive.NewObjectID().Hex()
	if _, err := r.Collection.InsertOne(ctx, payment); err != nil {
		r.Logger.Error("paymentMongoRepository.Create error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCaseNumberKey, payment.CaseNumber),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return payment, nil
}

func (r *paymentMongoRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment := new(models.Payment)
	err := r.Collection.FindOne(ctx, bson.M{"_id": paymentID}).Decode(payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrPaymentNotFound(paymentID)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return payment, nil
}

func (r *paymentMongoRepository) FindByCaseNumber(ctx context.Context, caseNumber string) ([]models.Payment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"case_number": caseNumber})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Payment
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

// MarkPaid filters on the initiated status as well as the id, so the
// write is conditional: a record already paid matches nothing and the
// update is a no-op reported as false. This is what makes concurrent
// double verification safe at the persistence layer.
func (r *paymentMongoRepository) MarkPaid(ctx context.Context, paymentID string, paidAmount float64, payer *models.PayerInfo) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := bson.M{
		"_id":    paymentID,
		"status": models.StatusInitiated,
	}
	update := bson.M{
		"$set": bson.M{
			"status":          models.StatusPaid,
			"paidAmount":      paidAmount,
			"payerInfo":       payer,
			"date_of_payment": time.Now().UTC(),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.Logger.Error("paymentMongoRepository.MarkPaid error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, paymentID),
			zap.Error(err),
		)
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}
