package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/enums"
)

// Document is an uploaded file's metadata. Immutable once created; removal
// is a hard delete by id.
type Document struct {
	ID         uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PurchaseID uuid.UUID          `gorm:"column:purchase_id;type:uuid;not null"`
	Name       string             `gorm:"column:name;not null"`
	Type       enums.DocumentType `gorm:"column:type;type:text;not null"`
	UploadedAt time.Time          `gorm:"column:uploaded_at;not null"`
	UploadedBy string             `gorm:"column:uploaded_by;not null"`
	SizeBytes  int64              `gorm:"column:size_bytes;not null;default:0"`
	URL        string             `gorm:"column:url;not null"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
}
