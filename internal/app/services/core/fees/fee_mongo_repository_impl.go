package fees

import (
	"context"
	"sync"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type feeMongoRepository struct {
	Collection *mongo.Collection
	Logger     *zap.Logger
}

var (
	feeMongoRepositoryInstance contracts.FeeRuleRepository
	onceFeeMongoRepository     sync.Once
)

func NewFeeMongoRepository(database *mongo.Database, logger *zap.Logger) contracts.FeeRuleRepository {
	onceFeeMongoRepository.Do(func() {
		feeMongoRepositoryInstance = &feeMongoRepository{
			Collection: database.Collection(constvars.MongoCollectionFeeRules),
			Logger:     logger,
		}
	})
	return feeMongoRepositoryInstance
}

// FindActive returns the active rules for a country and category in
// stored table order, which is the tie-break order the resolver relies
// on.
func (r *feeMongoRepository) FindActive(ctx context.Context, countryID, category string) ([]models.FeeRule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := bson.M{
		"country_id": countryID,
		"category":   category,
		"is_active":  true,
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		r.Logger.Error("feeMongoRepository.FindActive error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCountryKey, countryID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rules []models.FeeRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rules, nil
}

func (r *feeMongoRepository) InsertMany(ctx context.Context, rules []models.FeeRule) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	documents := make([]interface{}, 0, len(rules))
	for _, rule := range rules {
		documents = append(documents, rule)
	}
	if _, err := r.Collection.InsertMany(ctx, documents); err != nil {
		r.Logger.Error("feeMongoRepository.InsertMany error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
