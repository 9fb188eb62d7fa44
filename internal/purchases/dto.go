package purchases

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// CreatePurchaseInput carries everything known about a deal when the auction
// closes. The three boolean flags fix the workflow's shape for good.
type CreatePurchaseInput struct {
	VehicleMake   string
	VehicleModel  string
	VehicleYear   int
	VIN           string
	Mileage       int
	Color         string
	VehicleImages []string

	WinnerName    string
	WinnerEmail   string
	WinnerPhone   string
	WinnerAddress string
	DestPort      string
	Notes         *string

	WinningBidCents   int64
	ShippingCostCents int64
	InsuranceFeeCents int64
	OtherCosts        []types.CostLine

	VehicleRegistered   bool
	RequiresRepair      bool
	RequiresCourierDocs bool
}

// RecordPaymentInput is one installment to append. Negative amounts are
// accepted and act as corrections.
type RecordPaymentInput struct {
	PurchaseID  uuid.UUID
	AmountCents int64
	PaidAt      time.Time
}

// RecordPaymentResult reports the appended payment and the purchase's money
// state after it. Overpaid is informational, never an error.
type RecordPaymentResult struct {
	Payment       models.Payment      `json:"payment"`
	PaymentStatus enums.PaymentStatus `json:"paymentStatus"`
	Financials    Financials          `json:"financials"`
	Overpaid      bool                `json:"overpaid"`
}

// UpdateShipmentInput upserts the carriage record of a purchase.
type UpdateShipmentInput struct {
	PurchaseID        uuid.UUID
	Carrier           string
	TrackingNumber    string
	Status            enums.ShipmentStatus
	CurrentLocation   string
	EstimatedDelivery *time.Time
}

// ListFilter narrows the purchase listing.
type ListFilter struct {
	PaymentStatus *enums.PaymentStatus
	CurrentStage  *int
}

// Detail pairs a purchase with its derived financials.
type Detail struct {
	Purchase   models.Purchase `json:"purchase"`
	Financials Financials      `json:"financials"`
}
