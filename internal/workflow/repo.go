package workflow

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
)

// Repository covers persistence for purchase workflows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, workflow *models.PurchaseWorkflow) (*models.PurchaseWorkflow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PurchaseWorkflow, error)
	FindByPurchaseID(ctx context.Context, purchaseID uuid.UUID) (*models.PurchaseWorkflow, error)
	Save(ctx context.Context, workflow *models.PurchaseWorkflow) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a workflow repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, workflow *models.PurchaseWorkflow) (*models.PurchaseWorkflow, error) {
	if err := r.db.WithContext(ctx).Create(workflow).Error; err != nil {
		return nil, err
	}
	return workflow, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PurchaseWorkflow, error) {
	var workflow models.PurchaseWorkflow
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&workflow).Error
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *repository) FindByPurchaseID(ctx context.Context, purchaseID uuid.UUID) (*models.PurchaseWorkflow, error) {
	var workflow models.PurchaseWorkflow
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		First(&workflow).Error
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *repository) Save(ctx context.Context, workflow *models.PurchaseWorkflow) error {
	return r.db.WithContext(ctx).Save(workflow).Error
}
