package workflow

import (
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// itemKeysByStage is the fixed checklist schema per stage. The payment stage
// is absent: it carries no checklist by contract.
var itemKeysByStage = map[enums.WorkflowStage][]string{
	enums.WorkflowStageAfterPurchase: {types.ItemKeyPaymentToAuctionHouse},
	enums.WorkflowStageTransport: {
		types.ItemKeyTransportArranged,
		types.ItemKeyYardNotified,
		types.ItemKeyPhotosRequested,
	},
	enums.WorkflowStageRepairStorage: {types.ItemKeyMarkedComplete},
	enums.WorkflowStageDocumentsReceived: {
		types.ItemKeyReceivedNumberPlates,
		types.ItemKeyDeregistered,
		types.ItemKeyExportCertificateCreated,
		types.ItemKeySentDeregistrationCopy,
		types.ItemKeyInsuranceRefundReceived,
	},
	enums.WorkflowStageBooking: {
		types.ItemKeyBookingRequested,
		types.ItemKeySentSIAndEC,
		types.ItemKeyReceivedSO,
	},
	enums.WorkflowStageShipped: {
		types.ItemKeyBLPaid,
		types.ItemKeyRecycleApplied,
	},
	enums.WorkflowStageDHLDocuments: {types.ItemKeyDocumentsSent},
}

func knownItemKey(stage enums.WorkflowStage, key string) bool {
	for _, candidate := range itemKeysByStage[stage] {
		if candidate == key {
			return true
		}
	}
	return false
}

// resolveItem returns the mutable checklist item addressed by stage/key.
// Unknown addresses are validation errors; addresses that exist in the schema
// but not in this deal's shape (absent optional stage, inactive branch) are
// state conflicts.
func resolveItem(stages *types.WorkflowStages, stage enums.WorkflowStage, key string) (*types.ChecklistItem, error) {
	if !stage.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown workflow stage").
			WithDetails(map[string]any{"stage": string(stage)})
	}
	if stage == enums.WorkflowStagePayment {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment stage has no checklist").
			WithDetails(map[string]any{"stage": string(stage)})
	}
	if !knownItemKey(stage, key) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown checklist item").
			WithDetails(map[string]any{"stage": string(stage), "item": key})
	}

	switch stage {
	case enums.WorkflowStageAfterPurchase:
		return &stages.AfterPurchase.PaymentToAuctionHouse, nil

	case enums.WorkflowStageTransport:
		switch key {
		case types.ItemKeyTransportArranged:
			return &stages.Transport.TransportArranged, nil
		case types.ItemKeyYardNotified:
			return &stages.Transport.YardNotified, nil
		default:
			return &stages.Transport.PhotosRequested, nil
		}

	case enums.WorkflowStageRepairStorage:
		if stages.RepairStorage == nil {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "repair/storage stage not applicable for this purchase")
		}
		return &stages.RepairStorage.MarkedComplete, nil

	case enums.WorkflowStageDocumentsReceived:
		return resolveDocumentsReceivedItem(&stages.DocumentsReceived, key)

	case enums.WorkflowStageBooking:
		switch key {
		case types.ItemKeyBookingRequested:
			return &stages.Booking.BookingRequested, nil
		case types.ItemKeySentSIAndEC:
			return &stages.Booking.SentSIAndEC, nil
		default:
			return &stages.Booking.ReceivedSO, nil
		}

	case enums.WorkflowStageShipped:
		if key == types.ItemKeyBLPaid {
			return &stages.Shipped.BLPaid, nil
		}
		return &stages.Shipped.RecycleApplied, nil

	default: // enums.WorkflowStageDHLDocuments
		if stages.DHLDocuments == nil {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "courier documents stage not applicable for this purchase")
		}
		return &stages.DHLDocuments.DocumentsSent, nil
	}
}

func resolveDocumentsReceivedItem(stage *types.DocumentsReceivedStage, key string) (*types.ChecklistItem, error) {
	if stage.IsRegistered == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "registration branch not selected yet")
	}

	if *stage.IsRegistered {
		tasks := stage.RegisteredTasks
		if tasks == nil {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "registered branch not populated")
		}
		switch key {
		case types.ItemKeyReceivedNumberPlates:
			return &tasks.ReceivedNumberPlates, nil
		case types.ItemKeyDeregistered:
			return &tasks.Deregistered, nil
		case types.ItemKeyExportCertificateCreated:
			return &tasks.ExportCertificateCreated, nil
		case types.ItemKeySentDeregistrationCopy:
			return &tasks.SentDeregistrationCopy, nil
		case types.ItemKeyInsuranceRefundReceived:
			return &tasks.InsuranceRefundReceived, nil
		}
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown checklist item").
			WithDetails(map[string]any{"item": key})
	}

	tasks := stage.UnregisteredTasks
	if tasks == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "unregistered branch not populated")
	}
	if key == types.ItemKeyExportCertificateCreated {
		return &tasks.ExportCertificateCreated, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "checklist item not present in unregistered branch").
		WithDetails(map[string]any{"item": key})
}
