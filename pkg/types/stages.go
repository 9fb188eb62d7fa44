package types

import (
	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/enums"
)

// Checklist item keys, addressable through WorkflowStages.Item.
const (
	ItemKeyPaymentToAuctionHouse    = "paymentToAuctionHouse"
	ItemKeyTransportArranged        = "transportArranged"
	ItemKeyYardNotified             = "yardNotified"
	ItemKeyPhotosRequested          = "photosRequested"
	ItemKeyMarkedComplete           = "markedComplete"
	ItemKeyReceivedNumberPlates     = "receivedNumberPlates"
	ItemKeyDeregistered             = "deregistered"
	ItemKeyExportCertificateCreated = "exportCertificateCreated"
	ItemKeySentDeregistrationCopy   = "sentDeregistrationCopy"
	ItemKeyInsuranceRefundReceived  = "insuranceRefundReceived"
	ItemKeyBookingRequested         = "bookingRequested"
	ItemKeySentSIAndEC              = "sentSIAndEC"
	ItemKeyReceivedSO               = "receivedSO"
	ItemKeyBLPaid                   = "blPaid"
	ItemKeyDocumentsSent            = "documentsSent"
	ItemKeyRecycleApplied           = "recycleApplied"
)

// CostInvoice links an extra cost line to its invoice document, if received.
type CostInvoice struct {
	CostType     enums.CostType `json:"costType"`
	AttachmentID *uuid.UUID     `json:"attachmentId,omitempty"`
}

// AfterPurchaseStage covers the immediate post-auction tasks. The invoice
// trail is an attachment list, not a boolean gate.
type AfterPurchaseStage struct {
	PaymentToAuctionHouse ChecklistItem `json:"paymentToAuctionHouse"`
	InvoiceAttachments    []uuid.UUID   `json:"invoiceAttachments"`
	CostInvoices          []CostInvoice `json:"costInvoices"`
}

// TransportStage covers moving the vehicle from the auction yard.
type TransportStage struct {
	TransportArranged ChecklistItem `json:"transportArranged"`
	YardNotified      ChecklistItem `json:"yardNotified"`
	PhotosRequested   ChecklistItem `json:"photosRequested"`
}

// RepairStorageStage exists only for deals flagged as needing repair or
// storage; absence means "not applicable", not "not yet filled in".
type RepairStorageStage struct {
	MarkedComplete ChecklistItem `json:"markedComplete"`
}

// RegisteredDocumentTasks is the document checklist for registered vehicles.
type RegisteredDocumentTasks struct {
	ReceivedNumberPlates     ChecklistItem `json:"receivedNumberPlates"`
	Deregistered             ChecklistItem `json:"deregistered"`
	ExportCertificateCreated ChecklistItem `json:"exportCertificateCreated"`
	SentDeregistrationCopy   ChecklistItem `json:"sentDeregistrationCopy"`
	InsuranceRefundReceived  ChecklistItem `json:"insuranceRefundReceived"`
}

// UnregisteredDocumentTasks is the reduced checklist for vehicles without
// a registration to unwind.
type UnregisteredDocumentTasks struct {
	ExportCertificateCreated ChecklistItem `json:"exportCertificateCreated"`
}

// DocumentsReceivedStage holds a branch selected by IsRegistered. At most one
// of RegisteredTasks/UnregisteredTasks is populated at any time; switch
// branches through SetBranch only.
type DocumentsReceivedStage struct {
	IsRegistered      *bool                      `json:"isRegistered"`
	RegisteredTasks   *RegisteredDocumentTasks   `json:"registeredTasks,omitempty"`
	UnregisteredTasks *UnregisteredDocumentTasks `json:"unregisteredTasks,omitempty"`
}

// SetBranch selects the active branch, seeding it fresh and clearing the
// other. Switching discards any progress recorded on the abandoned branch.
func (s *DocumentsReceivedStage) SetBranch(isRegistered bool) {
	s.IsRegistered = &isRegistered
	if isRegistered {
		if s.RegisteredTasks == nil {
			s.RegisteredTasks = &RegisteredDocumentTasks{}
		}
		s.UnregisteredTasks = nil
		return
	}
	if s.UnregisteredTasks == nil {
		s.UnregisteredTasks = &UnregisteredDocumentTasks{}
	}
	s.RegisteredTasks = nil
}

// BookingStage covers arranging the shipping slot.
type BookingStage struct {
	BookingRequested ChecklistItem `json:"bookingRequested"`
	SentSIAndEC      ChecklistItem `json:"sentSIAndEC"`
	ReceivedSO       ChecklistItem `json:"receivedSO"`
}

// ShippedStage covers the post-departure settlement tasks.
type ShippedStage struct {
	BLPaid         ChecklistItem `json:"blPaid"`
	RecycleApplied ChecklistItem `json:"recycleApplied"`
}

// DHLDocumentsStage exists only for deals that courier originals to the buyer.
type DHLDocumentsStage struct {
	DocumentsSent ChecklistItem `json:"documentsSent"`
}

// WorkflowStages is the full per-deal stage state, persisted as one JSON
// document. Stage 3 (payment) has no checklist; it is tracked through the
// purchase's paid/total amounts.
type WorkflowStages struct {
	AfterPurchase     AfterPurchaseStage     `json:"afterPurchase"`
	Transport         TransportStage         `json:"transport"`
	RepairStorage     *RepairStorageStage    `json:"repairStored,omitempty"`
	DocumentsReceived DocumentsReceivedStage `json:"documentsReceived"`
	Booking           BookingStage           `json:"booking"`
	Shipped           ShippedStage           `json:"shipped"`
	DHLDocuments      *DHLDocumentsStage     `json:"dhlDocuments,omitempty"`
}

// NewWorkflowStages seeds the stage state for a new deal. Registered is the
// default document branch; repair and courier stages appear only when the
// deal is configured for them.
func NewWorkflowStages(vehicleRegistered, requiresRepair, requiresCourierDocs bool) WorkflowStages {
	stages := WorkflowStages{}
	stages.DocumentsReceived.SetBranch(vehicleRegistered)
	if requiresRepair {
		stages.RepairStorage = &RepairStorageStage{}
	}
	if requiresCourierDocs {
		stages.DHLDocuments = &DHLDocumentsStage{}
	}
	return stages
}
