package purchases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.Purchase{},
		&models.Payment{},
		&models.Document{},
		&models.Shipment{},
		&models.PurchaseWorkflow{},
	))
	return conn
}

func seedPurchase(t *testing.T, ctx context.Context, repo Repository, status enums.PaymentStatus) *models.Purchase {
	t.Helper()
	purchase := &models.Purchase{
		ID:               uuid.New(),
		VehicleMake:      "Toyota",
		VehicleModel:     "Probox",
		VehicleYear:      2018,
		VIN:              uuid.NewString(),
		WinnerName:       "Amadou Diallo",
		WinnerEmail:      "amadou@example.com",
		WinningBidCents:  500_000,
		TotalAmountCents: 500_000,
		PaymentStatus:    status,
	}
	_, err := repo.Create(ctx, purchase)
	require.NoError(t, err)
	return purchase
}

func TestRepositoryCreateAndFindWithAssociations(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	repo := NewRepository(conn)

	purchase := seedPurchase(t, ctx, repo, enums.PaymentStatusPending)

	wf := &models.PurchaseWorkflow{
		ID:         uuid.New(),
		PurchaseID: purchase.ID,
		Stages:     types.NewWorkflowStages(true, false, false),
	}
	require.NoError(t, conn.Create(wf).Error)

	_, err := repo.AddPayment(ctx, &models.Payment{
		ID:          uuid.New(),
		PurchaseID:  purchase.ID,
		AmountCents: 100_000,
		PaidAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	loaded, err := repo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Payments, 1)
	require.NotNil(t, loaded.Workflow)
	require.Equal(t, wf.ID, loaded.Workflow.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListFilters(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	repo := NewRepository(conn)

	pending := seedPurchase(t, ctx, repo, enums.PaymentStatusPending)
	completed := seedPurchase(t, ctx, repo, enums.PaymentStatusCompleted)

	for i, purchase := range []*models.Purchase{pending, completed} {
		require.NoError(t, conn.Create(&models.PurchaseWorkflow{
			ID:           uuid.New(),
			PurchaseID:   purchase.ID,
			CurrentStage: i*4 + 1, // stages 1 and 5
			Stages:       types.NewWorkflowStages(true, false, false),
		}).Error)
	}

	all, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	status := enums.PaymentStatusCompleted
	byStatus, err := repo.List(ctx, ListFilter{PaymentStatus: &status})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, completed.ID, byStatus[0].ID)

	stage := 5
	byStage, err := repo.List(ctx, ListFilter{CurrentStage: &stage})
	require.NoError(t, err)
	require.Len(t, byStage, 1)
	require.Equal(t, completed.ID, byStage[0].ID)
}

func TestRepositoryPaymentsAreChronological(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	purchase := seedPurchase(t, ctx, repo, enums.PaymentStatusPending)
	base := time.Now().UTC()
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		_, err := repo.AddPayment(ctx, &models.Payment{
			ID:          uuid.New(),
			PurchaseID:  purchase.ID,
			AmountCents: 50_000,
			PaidAt:      base.Add(offset),
		})
		require.NoError(t, err)
	}

	payments, err := repo.ListPayments(ctx, purchase.ID)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	for i := 1; i < len(payments); i++ {
		require.False(t, payments[i].PaidAt.Before(payments[i-1].PaidAt))
	}
}

func TestRepositoryUpsertShipment(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	repo := NewRepository(conn)

	purchase := seedPurchase(t, ctx, repo, enums.PaymentStatusPending)

	_, err := repo.UpsertShipment(ctx, &models.Shipment{
		ID:         uuid.New(),
		PurchaseID: purchase.ID,
		Carrier:    "NYK",
		Status:     enums.ShipmentStatusBooked,
	})
	require.NoError(t, err)

	_, err = repo.UpsertShipment(ctx, &models.Shipment{
		ID:              uuid.New(),
		PurchaseID:      purchase.ID,
		Carrier:         "NYK",
		TrackingNumber:  "NYKS123",
		Status:          enums.ShipmentStatusInTransit,
		CurrentLocation: "Singapore",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, conn.Model(&models.Shipment{}).Where("purchase_id = ?", purchase.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	loaded, err := repo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Shipment)
	require.Equal(t, enums.ShipmentStatusInTransit, loaded.Shipment.Status)
	require.Equal(t, "Singapore", loaded.Shipment.CurrentLocation)
}
