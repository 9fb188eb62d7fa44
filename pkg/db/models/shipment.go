package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/enums"
)

// Shipment is the optional carriage record for a purchase.
type Shipment struct {
	ID                uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PurchaseID        uuid.UUID            `gorm:"column:purchase_id;type:uuid;not null;uniqueIndex"`
	Carrier           string               `gorm:"column:carrier;not null"`
	TrackingNumber    string               `gorm:"column:tracking_number"`
	Status            enums.ShipmentStatus `gorm:"column:status;type:text;not null;default:'booked'"`
	CurrentLocation   string               `gorm:"column:current_location"`
	EstimatedDelivery *time.Time           `gorm:"column:estimated_delivery"`
	CreatedAt         time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
