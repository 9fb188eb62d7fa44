package workflow

import (
	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/enums"
)

// SetChecklistItemInput carries one checklist toggle.
type SetChecklistItemInput struct {
	WorkflowID  uuid.UUID
	Stage       enums.WorkflowStage
	Item        string
	Completed   bool
	CompletedBy string
	Notes       *string
}

// Summary bundles the derived read models the admin dashboard shows together.
type Summary struct {
	WorkflowID   uuid.UUID    `json:"workflowId"`
	CurrentStage int          `json:"currentStage"`
	Tasks        TaskProgress `json:"tasks"`
	Progress     int          `json:"progress"`
	CustomerView CustomerView `json:"customerView"`
}
