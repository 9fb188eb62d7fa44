package enums

import "fmt"

// WorkflowStage identifies one of the eight fulfillment stages in their
// internal (operational) order.
type WorkflowStage string

const (
	WorkflowStageAfterPurchase     WorkflowStage = "afterPurchase"
	WorkflowStageTransport         WorkflowStage = "transport"
	WorkflowStagePayment           WorkflowStage = "payment"
	WorkflowStageRepairStorage     WorkflowStage = "repairStored"
	WorkflowStageDocumentsReceived WorkflowStage = "documentsReceived"
	WorkflowStageBooking           WorkflowStage = "booking"
	WorkflowStageShipped           WorkflowStage = "shipped"
	WorkflowStageDHLDocuments      WorkflowStage = "dhlDocuments"
)

// StageCount is the fixed number of fulfillment stages.
const StageCount = 8

var orderedWorkflowStages = []WorkflowStage{
	WorkflowStageAfterPurchase,
	WorkflowStageTransport,
	WorkflowStagePayment,
	WorkflowStageRepairStorage,
	WorkflowStageDocumentsReceived,
	WorkflowStageBooking,
	WorkflowStageShipped,
	WorkflowStageDHLDocuments,
}

// String implements fmt.Stringer.
func (w WorkflowStage) String() string {
	return string(w)
}

// IsValid reports whether the value is a known WorkflowStage.
func (w WorkflowStage) IsValid() bool {
	for _, candidate := range orderedWorkflowStages {
		if candidate == w {
			return true
		}
	}
	return false
}

// Number returns the 1-based internal stage number, or 0 for unknown stages.
func (w WorkflowStage) Number() int {
	for i, candidate := range orderedWorkflowStages {
		if candidate == w {
			return i + 1
		}
	}
	return 0
}

// WorkflowStageAt returns the stage for a 1-based internal stage number.
func WorkflowStageAt(number int) (WorkflowStage, error) {
	if number < 1 || number > StageCount {
		return "", fmt.Errorf("stage number %d out of range [1,%d]", number, StageCount)
	}
	return orderedWorkflowStages[number-1], nil
}

// ParseWorkflowStage converts raw input into a WorkflowStage.
func ParseWorkflowStage(value string) (WorkflowStage, error) {
	for _, candidate := range orderedWorkflowStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid workflow stage %q", value)
}
