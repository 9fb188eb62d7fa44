package workflow

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
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.PurchaseWorkflow{}))
	return conn
}

func TestRepositoryRoundTripsStageState(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	wf := newTestWorkflow(true, true, true)
	created, err := repo.Create(ctx, wf)
	require.NoError(t, err)

	// Mutate nested checklist state and persist the whole document.
	created.Stages.Transport.YardNotified.Complete("tanaka", time.Now().UTC())
	created.Stages.DocumentsReceived.SetBranch(false)
	created.CurrentStage = 4
	require.NoError(t, repo.Save(ctx, created))

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 4, loaded.CurrentStage)
	require.True(t, loaded.Stages.Transport.YardNotified.Completed)
	require.NotNil(t, loaded.Stages.Transport.YardNotified.CompletedBy)
	require.Equal(t, "tanaka", *loaded.Stages.Transport.YardNotified.CompletedBy)

	branch := loaded.Stages.DocumentsReceived
	require.NotNil(t, branch.IsRegistered)
	require.False(t, *branch.IsRegistered)
	require.Nil(t, branch.RegisteredTasks)
	require.NotNil(t, branch.UnregisteredTasks)

	require.NotNil(t, loaded.Stages.RepairStorage)
	require.NotNil(t, loaded.Stages.DHLDocuments)
}

func TestRepositoryFindByPurchaseID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	wf := newTestWorkflow(true, false, false)
	_, err := repo.Create(ctx, wf)
	require.NoError(t, err)

	loaded, err := repo.FindByPurchaseID(ctx, wf.PurchaseID)
	require.NoError(t, err)
	require.Equal(t, wf.ID, loaded.ID)

	_, err = repo.FindByPurchaseID(ctx, uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryOptionalStagesStayAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	wf := newTestWorkflow(false, false, false)
	_, err := repo.Create(ctx, wf)
	require.NoError(t, err)

	loaded, err := repo.FindByID(ctx, wf.ID)
	require.NoError(t, err)
	require.Nil(t, loaded.Stages.RepairStorage)
	require.Nil(t, loaded.Stages.DHLDocuments)
}
