package documents

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
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Document{}))
	return conn
}

func storeDocument(t *testing.T, ctx context.Context, repo Repository, purchaseID uuid.UUID, at time.Time) *models.Document {
	t.Helper()
	doc, err := repo.Create(ctx, &models.Document{
		ID:         uuid.New(),
		PurchaseID: purchaseID,
		Name:       "invoice.pdf",
		Type:       enums.DocumentTypeInvoice,
		UploadedAt: at,
		UploadedBy: "sato",
		URL:        "s3://docs/invoice.pdf",
	})
	require.NoError(t, err)
	return doc
}

func TestRepositoryListOrdersByUploadTime(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))
	purchaseID := uuid.New()

	base := time.Now().UTC()
	second := storeDocument(t, ctx, repo, purchaseID, base.Add(time.Minute))
	first := storeDocument(t, ctx, repo, purchaseID, base)
	storeDocument(t, ctx, repo, uuid.New(), base) // other purchase

	docs, err := repo.ListByPurchase(ctx, purchaseID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, first.ID, docs[0].ID)
	require.Equal(t, second.ID, docs[1].ID)
}

func TestRepositoryDeleteScopedToPurchase(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))
	purchaseID := uuid.New()
	doc := storeDocument(t, ctx, repo, purchaseID, time.Now().UTC())

	// Wrong purchase id must not delete anything.
	affected, err := repo.DeleteByID(ctx, uuid.New(), doc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)

	affected, err = repo.DeleteByID(ctx, purchaseID, doc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	_, err = repo.FindByID(ctx, purchaseID, doc.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
