package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// TargetKind says what a document type feeds into.
type TargetKind string

const (
	// TargetNone stores the document without touching any task.
	TargetNone TargetKind = "none"
	// TargetChecklist completes one checklist item with the document attached.
	TargetChecklist TargetKind = "checklist"
	// TargetInvoiceTrail appends to the after-purchase invoice attachment list.
	TargetInvoiceTrail TargetKind = "invoice_trail"
	// TargetCostInvoice attaches to the matching cost-invoice slot.
	TargetCostInvoice TargetKind = "cost_invoice"
)

// Target is the checklist destination a declared document type satisfies.
type Target struct {
	Kind     TargetKind
	Stage    enums.WorkflowStage
	Item     string
	CostType enums.CostType
	// RequiresRegistered pins documentsReceived targets to one branch; nil
	// means either branch carries the item.
	RequiresRegistered *bool
}

var registeredOnly = true

// classificationTable is total over the document type enum; "other" maps to
// nothing on purpose.
var classificationTable = map[enums.DocumentType]Target{
	enums.DocumentTypeInvoice: {Kind: TargetInvoiceTrail, Stage: enums.WorkflowStageAfterPurchase},
	enums.DocumentTypeInsurance: {
		Kind:     TargetCostInvoice,
		Stage:    enums.WorkflowStageAfterPurchase,
		CostType: enums.CostTypeInsurance,
	},
	enums.DocumentTypeExportCertificate: {
		Kind:  TargetChecklist,
		Stage: enums.WorkflowStageDocumentsReceived,
		Item:  types.ItemKeyExportCertificateCreated,
	},
	enums.DocumentTypeBillOfLading: {
		Kind:  TargetChecklist,
		Stage: enums.WorkflowStageBooking,
		Item:  types.ItemKeyReceivedSO,
	},
	enums.DocumentTypeInspection: {
		Kind:  TargetChecklist,
		Stage: enums.WorkflowStageRepairStorage,
		Item:  types.ItemKeyMarkedComplete,
	},
	enums.DocumentTypeDeregistration: {
		Kind:               TargetChecklist,
		Stage:              enums.WorkflowStageDocumentsReceived,
		Item:               types.ItemKeyDeregistered,
		RequiresRegistered: &registeredOnly,
	},
	enums.DocumentTypeNumberPlates: {
		Kind:               TargetChecklist,
		Stage:              enums.WorkflowStageDocumentsReceived,
		Item:               types.ItemKeyReceivedNumberPlates,
		RequiresRegistered: &registeredOnly,
	},
	enums.DocumentTypeOther: {Kind: TargetNone},
}

// Classify maps a declared document type to the workflow slot it satisfies.
func Classify(docType enums.DocumentType) Target {
	if target, ok := classificationTable[docType]; ok {
		return target
	}
	return Target{Kind: TargetNone}
}

// Apply mutates the stage state for the classified target. Returns the
// updated checklist item, or nil when the target is unreachable in this
// deal's shape (absent optional stage, inactive branch). In that case the
// document is stored but no task is updated.
func Apply(stages *types.WorkflowStages, target Target, documentID uuid.UUID, by string, at time.Time) *types.ChecklistItem {
	switch target.Kind {
	case TargetInvoiceTrail:
		stages.AfterPurchase.InvoiceAttachments = append(stages.AfterPurchase.InvoiceAttachments, documentID)
		return nil

	case TargetCostInvoice:
		for i := range stages.AfterPurchase.CostInvoices {
			if stages.AfterPurchase.CostInvoices[i].CostType == target.CostType {
				stages.AfterPurchase.CostInvoices[i].AttachmentID = &documentID
				return nil
			}
		}
		stages.AfterPurchase.CostInvoices = append(stages.AfterPurchase.CostInvoices, types.CostInvoice{
			CostType:     target.CostType,
			AttachmentID: &documentID,
		})
		return nil

	case TargetChecklist:
		item := lookupItem(stages, target)
		if item == nil {
			return nil
		}
		item.Attach(documentID, by, at)
		return item

	default:
		return nil
	}
}

// lookupItem is the lenient counterpart of the checklist resolver: an
// unreachable target yields nil rather than an error.
func lookupItem(stages *types.WorkflowStages, target Target) *types.ChecklistItem {
	switch target.Stage {
	case enums.WorkflowStageRepairStorage:
		if stages.RepairStorage == nil {
			return nil
		}
		return &stages.RepairStorage.MarkedComplete

	case enums.WorkflowStageBooking:
		return &stages.Booking.ReceivedSO

	case enums.WorkflowStageDocumentsReceived:
		dr := &stages.DocumentsReceived
		if dr.IsRegistered == nil {
			return nil
		}
		if target.RequiresRegistered != nil && *target.RequiresRegistered != *dr.IsRegistered {
			return nil
		}
		if *dr.IsRegistered {
			if dr.RegisteredTasks == nil {
				return nil
			}
			switch target.Item {
			case types.ItemKeyDeregistered:
				return &dr.RegisteredTasks.Deregistered
			case types.ItemKeyReceivedNumberPlates:
				return &dr.RegisteredTasks.ReceivedNumberPlates
			case types.ItemKeyExportCertificateCreated:
				return &dr.RegisteredTasks.ExportCertificateCreated
			}
			return nil
		}
		if dr.UnregisteredTasks == nil || target.Item != types.ItemKeyExportCertificateCreated {
			return nil
		}
		return &dr.UnregisteredTasks.ExportCertificateCreated

	default:
		return nil
	}
}
