package types

import (
	"time"

	"github.com/google/uuid"
)

// ChecklistItem is the atomic completable task inside a workflow stage.
// CompletedAt/CompletedBy are set exactly when Completed is true; mutate
// through Complete/Reset so the pairing invariant holds.
type ChecklistItem struct {
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CompletedBy  *string    `json:"completedBy,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	AttachmentID *uuid.UUID `json:"attachmentId,omitempty"`
}

// Complete marks the item done, stamping completion metadata.
func (c *ChecklistItem) Complete(by string, at time.Time) {
	c.Completed = true
	c.CompletedAt = &at
	c.CompletedBy = &by
}

// Reset marks the item not done and clears completion metadata. The
// attachment reference is kept; deleting a document never un-completes a task.
func (c *ChecklistItem) Reset() {
	c.Completed = false
	c.CompletedAt = nil
	c.CompletedBy = nil
}

// Attach links a document to the item and marks it complete. Re-attaching
// refreshes CompletedAt and replaces the previous attachment reference.
func (c *ChecklistItem) Attach(documentID uuid.UUID, by string, at time.Time) {
	c.AttachmentID = &documentID
	c.Complete(by, at)
}
