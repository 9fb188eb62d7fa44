package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/types"
)

// PurchaseWorkflow is the 1:1 fulfillment state for a purchase. CurrentStage
// is operator-set and never auto-advanced; the full per-stage checklist lives
// in one JSON column so stage shape can vary per deal.
type PurchaseWorkflow struct {
	ID           uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PurchaseID   uuid.UUID            `gorm:"column:purchase_id;type:uuid;not null;uniqueIndex"`
	CurrentStage int                  `gorm:"column:current_stage;not null;default:1"`
	Stages       types.WorkflowStages `gorm:"column:stages;type:jsonb;serializer:json"`
	CreatedAt    time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
