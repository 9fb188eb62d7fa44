package workflow

import (
	"math"

	"github.com/autolane/auctionflow-backend/pkg/enums"
)

// The customer-facing timeline reorders payment ahead of transport, matching
// what the buyer experiences. Indexed by internal stage number.
var internalToExternalStage = [enums.StageCount + 1]int{0, 1, 3, 2, 4, 5, 6, 7, 8}

// externalStageLabels is ordered by external stage number.
var externalStageLabels = [enums.StageCount]string{
	"Won",
	"Payment",
	"Transport",
	"Inspection",
	"Documents",
	"Shipping",
	"In Transit",
	"Delivered",
}

// CustomerStage is one entry of the customer-facing timeline.
type CustomerStage struct {
	Number int               `json:"number"`
	Label  string            `json:"label"`
	Status enums.StageStatus `json:"status"`
}

// CustomerView is the buyer-facing projection of a workflow's position.
type CustomerView struct {
	ExternalStage int             `json:"externalStage"`
	Progress      int             `json:"progress"`
	Stages        []CustomerStage `json:"stages"`
}

// ExternalStageFor translates an internal stage number to its customer-facing
// position. Out-of-range input clamps to the pipeline bounds.
func ExternalStageFor(internalStage int) int {
	if internalStage < 1 {
		internalStage = 1
	}
	if internalStage > enums.StageCount {
		internalStage = enums.StageCount
	}
	return internalToExternalStage[internalStage]
}

// ComputeCustomerView builds the full customer timeline for an internal stage.
// Statuses are purely positional against the translated stage number. The
// percentage shares its formula with ComputeWorkflowProgress but runs over
// the translated numbering; the two can and do diverge.
func ComputeCustomerView(internalStage int) CustomerView {
	external := ExternalStageFor(internalStage)

	view := CustomerView{
		ExternalStage: external,
		Progress:      int(math.Round(float64(external) / float64(enums.StageCount) * 100)),
		Stages:        make([]CustomerStage, 0, enums.StageCount),
	}
	for i := 1; i <= enums.StageCount; i++ {
		status := enums.StageStatusPending
		switch {
		case i < external:
			status = enums.StageStatusCompleted
		case i == external:
			status = enums.StageStatusInProgress
		}
		view.Stages = append(view.Stages, CustomerStage{
			Number: i,
			Label:  externalStageLabels[i-1],
			Status: status,
		})
	}
	return view
}
