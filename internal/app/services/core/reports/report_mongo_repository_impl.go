package reports

import (
	"context"
	"sync"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type reportMongoRepository struct {
	Collection *mongo.Collection
	Logger     *zap.Logger
}

var (
	reportMongoRepositoryInstance contracts.ReportRepository
	onceReportMongoRepository     sync.Once
)

func NewReportMongoRepository(database *mongo.Database, logger *zap.Logger) contracts.ReportRepository {
	onceReportMongoRepository.Do(func() {
		reportMongoRepositoryInstance = &reportMongoRepository{
			Collection: database.Collection(constvars.MongoCollectionPayments),
			Logger:     logger,
		}
	})
	return reportMongoRepositoryInstance
}

const reportDateLayout = "2006-01-02"

// AggregateDailyCash lists the cash payments settled on one calendar
// day. Rows come back from a plain find; totals are summed here rather
// than in a pipeline since the day's record count is small.
func (r *reportMongoRepository) AggregateDailyCash(ctx context.Context, date time.Time) (*responses.DailyCashReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	filter := bson.M{
		"type_of_payment": models.PaymentTypeCash,
		"status":          models.StatusPaid,
		"date_of_payment": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		r.Logger.Error("reportMongoRepository.AggregateDailyCash error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	report := &responses.DailyCashReport{
		Date: dayStart.Format(reportDateLayout),
		Rows: make([]responses.DailyCashRow, 0, len(payments)),
	}
	for _, payment := range payments {
		report.Rows = append(report.Rows, responses.DailyCashRow{
			CaseNumber:    payment.CaseNumber,
			TransactionID: payment.TransactionID,
			ServiceType:   payment.ServiceType,
			AmountUSD:     payment.AmountInDollar,
			AmountLocal:   payment.AmountInLocalCurrency,
		})
		report.TotalUSD += payment.AmountInDollar
		report.TotalLocal += payment.AmountInLocalCurrency
	}
	report.RecordCount = len(report.Rows)
	return report, nil
}

func (r *reportMongoRepository) AggregateIncome(ctx context.Context, from, to time.Time) (*responses.IncomeReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":          models.StatusPaid,
			"date_of_payment": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$service_type",
			"count":     bson.M{"$sum": 1},
			"total_usd": bson.M{"$sum": "$amount_in_dollar"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.Logger.Error("reportMongoRepository.AggregateIncome error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		ServiceType string  `bson:"_id"`
		Count       int     `bson:"count"`
		TotalUSD    float64 `bson:"total_usd"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	report := &responses.IncomeReport{
		From: from.Format(reportDateLayout),
		To:   to.Format(reportDateLayout),
		Rows: make([]responses.IncomeRow, 0, len(groups)),
	}
	for _, group := range groups {
		report.Rows = append(report.Rows, responses.IncomeRow{
			ServiceType: group.ServiceType,
			Count:       group.Count,
			TotalUSD:    group.TotalUSD,
		})
		report.TotalUSD += group.TotalUSD
	}
	return report, nil
}

// AggregateVaccinations unwinds per-client service charges and keeps
// only vaccination line items, grouped by service code.
func (r *reportMongoRepository) AggregateVaccinations(ctx context.Context, from, to time.Time) (*responses.VaccinationReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":          models.StatusPaid,
			"service_type":    constvars.ServiceCategoryVaccination,
			"date_of_payment": bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$unwind", Value: "$clients"}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$clients.additional_services",
			"preserveNullAndEmptyArrays": false,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$clients.additional_services.service_code",
			"service_name": bson.M{"$first": "$clients.additional_services.service_name"},
			"count":        bson.M{"$sum": 1},
			"total_usd":    bson.M{"$sum": "$clients.additional_services.fee_amount_usd"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.Logger.Error("reportMongoRepository.AggregateVaccinations error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		ServiceCode string  `bson:"_id"`
		ServiceName string  `bson:"service_name"`
		Count       int     `bson:"count"`
		TotalUSD    float64 `bson:"total_usd"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	report := &responses.VaccinationReport{
		From: from.Format(reportDateLayout),
		To:   to.Format(reportDateLayout),
		Rows: make([]responses.VaccinationRow, 0, len(groups)),
	}
	for _, group := range groups {
		report.Rows = append(report.Rows, responses.VaccinationRow{
			ServiceCode: group.ServiceCode,
			ServiceName: group.ServiceName,
			Count:       group.Count,
			TotalUSD:    group.TotalUSD,
		})
	}
	return report, nil
}
