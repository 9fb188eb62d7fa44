package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one recorded installment against a purchase. Rows are
// append-only; insertion order is chronological order.
type Payment struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PurchaseID  uuid.UUID `gorm:"column:purchase_id;type:uuid;not null"`
	AmountCents int64     `gorm:"column:amount_cents;not null"`
	PaidAt      time.Time `gorm:"column:paid_at;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
