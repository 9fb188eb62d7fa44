package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// FileMetadata describes one uploaded file; the engine stores metadata only,
// blob storage is someone else's problem.
type FileMetadata struct {
	Name      string
	SizeBytes int64
	URL       string
}

// UploadInput is a confirmed upload batch sharing one declared type.
type UploadInput struct {
	PurchaseID   uuid.UUID
	DeclaredType enums.DocumentType
	Files        []FileMetadata
	UploadedBy   string
	UploadedAt   time.Time
}

// UploadResult reports what an upload did. ChecklistUpdated is nil when the
// documents were stored but no task matched; that is a successful outcome,
// not an error.
type UploadResult struct {
	Documents        []models.Document    `json:"documents"`
	ChecklistUpdated *types.ChecklistItem `json:"checklistUpdated"`
}
