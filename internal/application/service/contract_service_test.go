package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/pkg/apperror"
)

func str(s string) *string { return &s }
func intp(i int) *int      { return &i }

func newConversionFixture(t *testing.T) (*ContractService, *QuoteService, *fakeQuoteRepo, *fakeVehicleRepo, *fakeContractRepo, *fakeNotifier, *entity.Vehicle) {
	t.Helper()

	quoteRepo := newFakeQuoteRepo()
	vehicleRepo := newFakeVehicleRepo()
	dealerRepo := newFakeDealerRepo()
	contractRepo := newFakeContractRepo()
	notifier := &fakeNotifier{}

	vehicle := &entity.Vehicle{
		VIN:       "ZFA3120000J654321",
		Make:      "Fiat",
		Model:     "500",
		Trim:      "Lounge",
		Year:      2025,
		BasePrice: decimal.NewFromInt(28500),
		Status:    enum.VehicleStatusAvailable,
	}
	require.NoError(t, vehicleRepo.Create(context.Background(), vehicle))

	quoteSvc := NewQuoteService(quoteRepo, vehicleRepo, dealerRepo, contractRepo)
	contractSvc := NewContractService(contractRepo, quoteRepo, vehicleRepo, notifier)
	return contractSvc, quoteSvc, quoteRepo, vehicleRepo, contractRepo, notifier, vehicle
}

func naturalPersonContractor() ContractorInput {
	return ContractorInput{
		Type:       enum.ContractorNaturalPerson,
		FirstName:  str("Mario"),
		LastName:   str("Rossi"),
		FiscalCode: str("RSSMRA80A01H501U"),
		BirthDate:  str("1980-01-01"),
		BirthPlace: str("Roma"),
		Address:    "Via Roma 1",
		City:       "Roma",
		Province:   "RM",
		PostalCode: "00100",
		Phone:      "+39 333 1234567",
		Email:      "mario.rossi@example.com",
	}
}

func TestConvertQuoteSnapshotsPriceAndAdjustments(t *testing.T) {
	contractSvc, quoteSvc, quoteRepo, vehicleRepo, _, notifier, vehicle := newConversionFixture(t)

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:        entityUserID(),
		VehicleID:     vehicle.ID,
		CustomerName:  "Mario Rossi",
		CustomerEmail: str("mario.rossi@example.com"),
		Adjustments:   QuoteAdjustmentsInput{Discount: 500},
	})
	require.NoError(t, err)

	contract, err := contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:      quote.ID,
		UserID:       entityUserID(),
		Contractor:   naturalPersonContractor(),
		DeliveryDays: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, "CT-000001", contract.Reference)
	assert.True(t, contract.BasePrice.Equal(decimal.NewFromInt(28500)))
	assert.True(t, contract.Discount.Equal(decimal.NewFromInt(500)))
	// 28500 - 500 + 400
	assert.Equal(t, "28400.00", contract.FinalPrice.StringFixed(2))
	assert.Equal(t, 45, contract.DeliveryDays)

	storedQuote, err := quoteRepo.GetByID(context.Background(), quote.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusConverted, storedQuote.Status)
	assert.Equal(t, "28400.00", storedQuote.FinalPrice.StringFixed(2))

	storedVehicle, err := vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VehicleStatusSold, storedVehicle.Status)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "CT-000001", notifier.sent[0].Reference)
	assert.Equal(t, "28400.00", notifier.sent[0].FinalPrice)
}

func TestConvertQuoteRequiresTradeInFields(t *testing.T) {
	contractSvc, quoteSvc, _, _, _, _, vehicle := newConversionFixture(t)

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
		Adjustments:  QuoteAdjustmentsInput{HasTradeIn: true, TradeInValue: 5000},
	})
	require.NoError(t, err)

	_, err = contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: naturalPersonContractor(),
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "trade_in_brand")
	assert.Contains(t, fields, "trade_in_plate")
	assert.Contains(t, fields, "trade_in_mileage")
}

func TestConvertQuoteWithCompleteTradeIn(t *testing.T) {
	contractSvc, quoteSvc, _, _, _, _, vehicle := newConversionFixture(t)

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
		Adjustments:  QuoteAdjustmentsInput{HasTradeIn: true, TradeInValue: 5000},
		TradeIn: TradeInInput{
			Brand:   str("Fiat"),
			Model:   str("Punto"),
			Plate:   str("AB123CD"),
			Year:    intp(2015),
			Mileage: intp(98000),
		},
	})
	require.NoError(t, err)

	contract, err := contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: naturalPersonContractor(),
	})
	require.NoError(t, err)

	// 28500 - 5000 + 400; trade-in value is never VAT adjusted
	assert.Equal(t, "23900.00", contract.FinalPrice.StringFixed(2))
	require.NotNil(t, contract.TradeIn.Plate)
	assert.Equal(t, "AB123CD", *contract.TradeIn.Plate)
}

func TestConvertQuoteValidatesContractor(t *testing.T) {
	contractSvc, quoteSvc, _, _, _, _, vehicle := newConversionFixture(t)

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "ACME S.r.l.",
	})
	require.NoError(t, err)

	incomplete := ContractorInput{
		Type:        enum.ContractorLegalEntity,
		CompanyName: str("ACME S.r.l."),
		Address:     "Via Milano 10",
		City:        "Milano",
		Province:    "MI",
		PostalCode:  "20100",
		Phone:       "+39 02 1234567",
		Email:       "info@acme.example.com",
	}

	_, err = contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: incomplete,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "vat_number")
	assert.Contains(t, fields, "representative_fiscal_code")
}

func TestConvertNonPendingQuoteFails(t *testing.T) {
	contractSvc, quoteSvc, _, _, _, _, vehicle := newConversionFixture(t)

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	_, err = contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: naturalPersonContractor(),
	})
	require.NoError(t, err)

	// Second conversion attempt must fail, the quote is already converted
	_, err = contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: naturalPersonContractor(),
	})
	assert.Error(t, err)
}

func TestConvertAfterRevertCreatesNewContract(t *testing.T) {
	contractSvc, quoteSvc, _, _, contractRepo, _, vehicle := newConversionFixture(t)

	quote, err := quoteSvc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	first, err := contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: naturalPersonContractor(),
	})
	require.NoError(t, err)

	_, err = quoteSvc.RevertQuote(context.Background(), quote.ID)
	require.NoError(t, err)

	second, err := contractSvc.ConvertQuote(context.Background(), &ConvertQuoteInput{
		QuoteID:    quote.ID,
		UserID:     entityUserID(),
		Contractor: naturalPersonContractor(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "CT-000002", second.Reference)
	assert.Contains(t, contractRepo.deleted, first.ID)
}
