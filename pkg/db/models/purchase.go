package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// Purchase is one won auction tracked through fulfillment. TotalAmountCents
// is computed once at creation from the bid plus recorded costs and never
// re-derived; PaidAmountCents only grows, through recorded payments.
type Purchase struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`

	VehicleMake   string   `gorm:"column:vehicle_make;not null"`
	VehicleModel  string   `gorm:"column:vehicle_model;not null"`
	VehicleYear   int      `gorm:"column:vehicle_year;not null"`
	VIN           string   `gorm:"column:vin;not null"`
	Mileage       int      `gorm:"column:mileage;not null;default:0"`
	Color         string   `gorm:"column:color"`
	VehicleImages []string `gorm:"column:vehicle_images;type:jsonb;serializer:json"`

	WinnerName    string  `gorm:"column:winner_name;not null"`
	WinnerEmail   string  `gorm:"column:winner_email;not null"`
	WinnerPhone   string  `gorm:"column:winner_phone"`
	WinnerAddress string  `gorm:"column:winner_address"`
	DestPort      string  `gorm:"column:destination_port"`
	Notes         *string `gorm:"column:notes"`

	WinningBidCents   int64            `gorm:"column:winning_bid_cents;not null"`
	ShippingCostCents int64            `gorm:"column:shipping_cost_cents;not null;default:0"`
	InsuranceFeeCents int64            `gorm:"column:insurance_fee_cents;not null;default:0"`
	OtherCosts        []types.CostLine `gorm:"column:other_costs;type:jsonb;serializer:json"`
	TotalAmountCents  int64            `gorm:"column:total_amount_cents;not null"`
	PaidAmountCents   int64            `gorm:"column:paid_amount_cents;not null;default:0"`
	PaymentStatus     enums.PaymentStatus `gorm:"column:payment_status;type:text;not null;default:'pending'"`

	VehicleRegistered   bool `gorm:"column:vehicle_registered;not null;default:true"`
	RequiresRepair      bool `gorm:"column:requires_repair;not null;default:false"`
	RequiresCourierDocs bool `gorm:"column:requires_courier_docs;not null;default:false"`

	Payments  []Payment          `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	Documents []Document         `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	Shipment  *Shipment          `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	Workflow  *PurchaseWorkflow  `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
