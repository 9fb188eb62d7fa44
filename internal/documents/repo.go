package documents

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
)

// Repository covers persistence for uploaded document metadata.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, document *models.Document) (*models.Document, error)
	FindByID(ctx context.Context, purchaseID, documentID uuid.UUID) (*models.Document, error)
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]models.Document, error)
	DeleteByID(ctx context.Context, purchaseID, documentID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a documents repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, document *models.Document) (*models.Document, error) {
	if err := r.db.WithContext(ctx).Create(document).Error; err != nil {
		return nil, err
	}
	return document, nil
}

func (r *repository) FindByID(ctx context.Context, purchaseID, documentID uuid.UUID) (*models.Document, error) {
	var document models.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND purchase_id = ?", documentID, purchaseID).
		First(&document).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *repository) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("uploaded_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *repository) DeleteByID(ctx context.Context, purchaseID, documentID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND purchase_id = ?", documentID, purchaseID).
		Delete(&models.Document{})
	return result.RowsAffected, result.Error
}
