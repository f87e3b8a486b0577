package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
)

func newQuoteFixture(t *testing.T) (*QuoteService, *fakeQuoteRepo, *fakeVehicleRepo, *fakeContractRepo, *entity.Vehicle) {
	t.Helper()

	quoteRepo := newFakeQuoteRepo()
	vehicleRepo := newFakeVehicleRepo()
	dealerRepo := newFakeDealerRepo()
	contractRepo := newFakeContractRepo()

	vehicle := &entity.Vehicle{
		VIN:       "ZFA3120000J123456",
		Make:      "Fiat",
		Model:     "Panda",
		Year:      2025,
		BasePrice: decimal.NewFromInt(28500),
		Status:    enum.VehicleStatusAvailable,
	}
	require.NoError(t, vehicleRepo.Create(context.Background(), vehicle))

	svc := NewQuoteService(quoteRepo, vehicleRepo, dealerRepo, contractRepo)
	return svc, quoteRepo, vehicleRepo, contractRepo, vehicle
}

func TestCreateQuoteSnapshotsBasePriceAndDerivesFinal(t *testing.T) {
	svc, _, vehicleRepo, _, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	assert.Equal(t, "QT-000001", quote.Reference)
	assert.Equal(t, enum.QuoteStatusPending, quote.Status)
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(28500)))
	// 28500 + 400 road preparation default
	assert.Equal(t, "28900.00", quote.FinalPrice.StringFixed(2))

	stored, err := vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VehicleStatusReserved, stored.Status)
}

func TestCreateQuoteRejectsSoldVehicle(t *testing.T) {
	svc, _, vehicleRepo, _, vehicle := newQuoteFixture(t)
	require.NoError(t, vehicleRepo.UpdateStatus(context.Background(), vehicle.ID, enum.VehicleStatusSold))

	_, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	assert.Error(t, err)
}

func TestUpdateQuoteRecomputesFinalPrice(t *testing.T) {
	svc, _, _, _, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		ID:           quote.ID,
		CustomerName: "Mario Rossi",
		Adjustments:  QuoteAdjustmentsInput{Discount: 1000},
	})
	require.NoError(t, err)

	// 28500 - 1000 + 400
	assert.Equal(t, "27900.00", updated.FinalPrice.StringFixed(2))
}

func TestRejectQuoteRequiresReason(t *testing.T) {
	svc, _, _, _, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	_, err = svc.RejectQuote(context.Background(), quote.ID, "")
	assert.Error(t, err)

	_, err = svc.RejectQuote(context.Background(), quote.ID, "too short")
	assert.Error(t, err)

	rejected, err := svc.RejectQuote(context.Background(), quote.ID, "Customer chose a competitor offer")
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Customer chose a competitor offer", *rejected.RejectionReason)
}

func TestRejectedQuoteIsTerminal(t *testing.T) {
	svc, quoteRepo, _, _, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	_, err = svc.RejectQuote(context.Background(), quote.ID, "Customer no longer interested")
	require.NoError(t, err)

	// Rejecting again fails
	_, err = svc.RejectQuote(context.Background(), quote.ID, "Rejecting a second time anyway")
	assert.Error(t, err)

	// Updating fails
	_, err = svc.UpdateQuote(context.Background(), &UpdateQuoteInput{ID: quote.ID, CustomerName: "X"})
	assert.Error(t, err)

	// Reverting fails
	_, err = svc.RevertQuote(context.Background(), quote.ID)
	assert.Error(t, err)

	stored, err := quoteRepo.GetByID(context.Background(), quote.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusRejected, stored.Status)
}

func TestRejectReleasesReservedVehicle(t *testing.T) {
	svc, _, vehicleRepo, _, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	_, err = svc.RejectQuote(context.Background(), quote.ID, "Financing application was declined")
	require.NoError(t, err)

	stored, err := vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VehicleStatusAvailable, stored.Status)
}

func TestRevertQuoteDetachesContract(t *testing.T) {
	svc, quoteRepo, vehicleRepo, contractRepo, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	// Simulate a completed conversion
	contract := &entity.Contract{QuoteID: quote.ID, UserID: quote.UserID, Reference: "CT-000001"}
	require.NoError(t, contractRepo.Create(context.Background(), contract))
	quote.Status = enum.QuoteStatusConverted
	require.NoError(t, quoteRepo.Update(context.Background(), quote))
	require.NoError(t, vehicleRepo.UpdateStatus(context.Background(), vehicle.ID, enum.VehicleStatusSold))

	reverted, err := svc.RevertQuote(context.Background(), quote.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusPending, reverted.Status)

	detached, err := contractRepo.GetByQuoteID(context.Background(), quote.ID)
	require.NoError(t, err)
	assert.Nil(t, detached)
	assert.Contains(t, contractRepo.deleted, contract.ID)

	storedVehicle, err := vehicleRepo.GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VehicleStatusReserved, storedVehicle.Status)
}

func TestDeleteConvertedQuoteFails(t *testing.T) {
	svc, quoteRepo, _, _, vehicle := newQuoteFixture(t)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		UserID:       entityUserID(),
		VehicleID:    vehicle.ID,
		CustomerName: "Mario Rossi",
	})
	require.NoError(t, err)

	quote.Status = enum.QuoteStatusConverted
	require.NoError(t, quoteRepo.Update(context.Background(), quote))

	assert.Error(t, svc.DeleteQuote(context.Background(), quote.ID))
}

func TestPreviewPriceMatchesEngine(t *testing.T) {
	svc, _, _, _, _ := newQuoteFixture(t)

	result := svc.PreviewPrice(28500, QuoteAdjustmentsInput{})
	assert.Equal(t, "28900.00", result.FinalPrice.StringFixed(2))

	noFee := 0.0
	result = svc.PreviewPrice(28500, QuoteAdjustmentsInput{RoadPreparationFee: &noFee})
	assert.Equal(t, "28500.00", result.FinalPrice.StringFixed(2))
}
