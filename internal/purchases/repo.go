package purchases

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
)

// Repository covers persistence for purchases and their money sub-records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, purchase *models.Purchase) (*models.Purchase, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error)
	List(ctx context.Context, filter ListFilter) ([]models.Purchase, error)
	Save(ctx context.Context, purchase *models.Purchase) error
	AddPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	ListPayments(ctx context.Context, purchaseID uuid.UUID) ([]models.Payment, error)
	UpsertShipment(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a purchases repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, purchase *models.Purchase) (*models.Purchase, error) {
	if err := r.db.WithContext(ctx).Create(purchase).Error; err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("paid_at ASC") }).
		Preload("Documents").
		Preload("Shipment").
		Preload("Workflow").
		Where("id = ?", id).
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]models.Purchase, error) {
	query := r.db.WithContext(ctx).Model(&models.Purchase{})
	if filter.PaymentStatus != nil {
		query = query.Where("purchases.payment_status = ?", *filter.PaymentStatus)
	}
	if filter.CurrentStage != nil {
		query = query.
			Joins("JOIN purchase_workflows ON purchase_workflows.purchase_id = purchases.id").
			Where("purchase_workflows.current_stage = ?", *filter.CurrentStage)
	}

	var purchases []models.Purchase
	err := query.Order("purchases.created_at DESC").Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *repository) Save(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Omit("Payments", "Documents", "Shipment", "Workflow").Save(purchase).Error
}

func (r *repository) AddPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *repository) ListPayments(ctx context.Context, purchaseID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) UpsertShipment(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "purchase_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"carrier", "tracking_number", "status", "current_location", "estimated_delivery", "updated_at",
			}),
		}).
		Create(shipment).Error
	if err != nil {
		return nil, err
	}
	return shipment, nil
}
