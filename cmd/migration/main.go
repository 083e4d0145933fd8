package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/drivers/database"
	"casepay-service/internal/app/drivers/logger"
	"casepay-service/internal/app/models"
	"casepay-service/internal/app/services/core/fees"
	"casepay-service/internal/pkg/constvars"
)

func intPtr(v int) *int { return &v }

// seedRules is the initial administered fee table. Brackets are in
// months; a nil bound is unbounded on that side.
var seedRules = []models.FeeRule{
	{CountryID: "US", ServiceCode: "IME", Category: constvars.ServiceCategoryMedicalExam, MaxAgeMonths: intPtr(23), FeeAmountUSD: 100.00, IsActive: true},
	{CountryID: "US", ServiceCode: "IME", Category: constvars.ServiceCategoryMedicalExam, MinAgeMonths: intPtr(24), MaxAgeMonths: intPtr(179), FeeAmountUSD: 125.00, IsActive: true},
	{CountryID: "US", ServiceCode: "IME", Category: constvars.ServiceCategoryMedicalExam, MinAgeMonths: intPtr(180), FeeAmountUSD: 143.00, IsActive: true},

	{CountryID: "UK", ServiceCode: "UKTB", Category: constvars.ServiceCategoryMedicalExam, MaxAgeMonths: intPtr(131), FeeAmountUSD: 85.00, IsActive: true},
	{CountryID: "UK", ServiceCode: "UKTB", Category: constvars.ServiceCategoryMedicalExam, MinAgeMonths: intPtr(132), FeeAmountUSD: 110.00, IsActive: true},

	{CountryID: "AU", ServiceCode: "AIME", Category: constvars.ServiceCategoryMedicalExam, MaxAgeMonths: intPtr(23), FeeAmountUSD: 80.00, IsActive: true},
	{CountryID: "AU", ServiceCode: "AIME", Category: constvars.ServiceCategoryMedicalExam, MinAgeMonths: intPtr(24), MaxAgeMonths: intPtr(131), FeeAmountUSD: 105.00, IsActive: true},
	{CountryID: "AU", ServiceCode: "AIME", Category: constvars.ServiceCategoryMedicalExam, MinAgeMonths: intPtr(132), MaxAgeMonths: intPtr(179), FeeAmountUSD: 125.00, IsActive: true},
	{CountryID: "AU", ServiceCode: "AIME", Category: constvars.ServiceCategoryMedicalExam, MinAgeMonths: intPtr(180), FeeAmountUSD: 150.00, IsActive: true},
	{CountryID: "AU", ServiceCode: "AIME", Category: constvars.ServiceCategoryMedicalExam, SpecialCase: "590", FeeAmountUSD: 120.00, IsActive: true},

	{CountryID: "US", ServiceCode: "VAC-FLU", Category: constvars.ServiceCategoryVaccination, FeeAmountUSD: 25.00, IsActive: true},
	{CountryID: "US", ServiceCode: "VAC-MMR", Category: constvars.ServiceCategoryVaccination, FeeAmountUSD: 40.00, IsActive: true},
	{CountryID: "AU", ServiceCode: "VAC-FLU", Category: constvars.ServiceCategoryVaccination, FeeAmountUSD: 25.00, IsActive: true},
}

// validateDisjoint enforces the bracket invariant the resolver relies
// on: within one (country, service_code, special_case) group, age
// ranges must not overlap, and at most one rule may apply to all ages.
func validateDisjoint(rules []models.FeeRule) error {
	type bracket struct{ min, max int }
	const unbounded = 1 << 30

	groups := make(map[string][]bracket)
	universal := make(map[string]bool)

	for _, rule := range rules {
		key := fmt.Sprintf("%s|%s|%s", rule.CountryID, rule.ServiceCode, rule.SpecialCase)
		if rule.AppliesToAllAges() {
			if universal[key] {
				return fmt.Errorf("duplicate universal rule for %s", key)
			}
			universal[key] = true
			continue
		}
		b := bracket{min: 0, max: unbounded}
		if rule.MinAgeMonths != nil {
			b.min = *rule.MinAgeMonths
		}
		if rule.MaxAgeMonths != nil && *rule.MaxAgeMonths != 0 {
			b.max = *rule.MaxAgeMonths
		}
		for _, existing := range groups[key] {
			if b.min <= existing.max && existing.min <= b.max {
				return fmt.Errorf("overlapping brackets for %s: [%d,%d] and [%d,%d]", key, existing.min, existing.max, b.min, b.max)
			}
		}
		groups[key] = append(groups[key], b)
	}
	return nil
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	if err := validateDisjoint(seedRules); err != nil {
		log.Fatalf("Fee rule table is invalid: %v", err)
	}

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDatabase := mongoClient.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := mongoDatabase.Collection(constvars.MongoCollectionFeeRules).CountDocuments(ctx, map[string]interface{}{})
	if err != nil {
		log.Fatalf("Failed to count fee rules: %v", err)
	}
	if count > 0 {
		log.Printf("Fee rules already seeded (%d rows), nothing to do", count)
		return
	}

	feeRuleRepository := fees.NewFeeMongoRepository(mongoDatabase, zapLogger)
	if err := feeRuleRepository.InsertMany(ctx, seedRules); err != nil {
		log.Fatalf("Failed to seed fee rules: %v", err)
	}
	log.Printf("Seeded %d fee rules", len(seedRules))

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to disconnect from mongo: %v", err)
	}
}
