package workflow

import (
	"math"

	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// TaskProgress is the checklist completion ratio across all present items.
type TaskProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ComputeTaskProgress walks every present checklist field across all stages.
// The payment stage has no checklist and is skipped. For documentsReceived
// only the branch selected by isRegistered counts; with no branch chosen the
// stage contributes nothing. Optional stages count only when present. Pure
// and nil-safe: a structurally incomplete workflow is "not applicable", never
// an error.
func ComputeTaskProgress(stages *types.WorkflowStages) TaskProgress {
	var progress TaskProgress
	if stages == nil {
		return progress
	}

	count := func(items ...*types.ChecklistItem) {
		for _, item := range items {
			progress.Total++
			if item.Completed {
				progress.Completed++
			}
		}
	}

	count(&stages.AfterPurchase.PaymentToAuctionHouse)
	count(
		&stages.Transport.TransportArranged,
		&stages.Transport.YardNotified,
		&stages.Transport.PhotosRequested,
	)
	if stages.RepairStorage != nil {
		count(&stages.RepairStorage.MarkedComplete)
	}
	switch {
	case stages.DocumentsReceived.IsRegistered == nil:
		// no branch chosen yet
	case *stages.DocumentsReceived.IsRegistered && stages.DocumentsReceived.RegisteredTasks != nil:
		tasks := stages.DocumentsReceived.RegisteredTasks
		count(
			&tasks.ReceivedNumberPlates,
			&tasks.Deregistered,
			&tasks.ExportCertificateCreated,
			&tasks.SentDeregistrationCopy,
			&tasks.InsuranceRefundReceived,
		)
	case !*stages.DocumentsReceived.IsRegistered && stages.DocumentsReceived.UnregisteredTasks != nil:
		count(&stages.DocumentsReceived.UnregisteredTasks.ExportCertificateCreated)
	}
	count(
		&stages.Booking.BookingRequested,
		&stages.Booking.SentSIAndEC,
		&stages.Booking.ReceivedSO,
	)
	count(
		&stages.Shipped.BLPaid,
		&stages.Shipped.RecycleApplied,
	)
	if stages.DHLDocuments != nil {
		count(&stages.DHLDocuments.DocumentsSent)
	}

	return progress
}

// ComputeWorkflowProgress is the coarse pipeline percentage over the internal
// stage numbering. Deliberately independent of checklist detail; a deal can
// be far through its current stage's tasks while early in the pipeline.
func ComputeWorkflowProgress(currentStage int) int {
	if currentStage < 1 {
		return 0
	}
	if currentStage > enums.StageCount {
		currentStage = enums.StageCount
	}
	return int(math.Round(float64(currentStage) / float64(enums.StageCount) * 100))
}
