package purchases

import (
	"github.com/shopspring/decimal"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// Financials is the derived money view of a purchase. Every field here is
// computed from stored cent amounts; nothing in it is persisted directly.
type Financials struct {
	TotalAmountCents int64               `json:"totalAmountCents"`
	PaidAmountCents  int64               `json:"paidAmountCents"`
	OutstandingCents int64               `json:"outstandingCents"`
	ProgressPercent  int                 `json:"progressPercent"`
	PaymentStatus    enums.PaymentStatus `json:"paymentStatus"`
	Overpaid         bool                `json:"overpaid"`
}

// TotalAmountCents folds the winning bid and every recorded cost into the
// amount owed. Called once at purchase creation; the result is stored and
// never re-derived afterwards.
func TotalAmountCents(bidCents, shippingCents, insuranceCents int64, other []types.CostLine) int64 {
	total := bidCents + shippingCents + insuranceCents
	for _, line := range other {
		total += line.AmountCents
	}
	return total
}

// PaymentProgressPercent reports how much of the total has been collected,
// rounded half-up. A zero (or negative) total yields 0 rather than a division
// error; overpayment pushes the percent past 100.
func PaymentProgressPercent(totalCents, paidCents int64) int {
	if totalCents <= 0 {
		return 0
	}
	percent := decimal.NewFromInt(paidCents).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(totalCents)).
		Round(0)
	return int(percent.IntPart())
}

// OutstandingCents is the remaining balance, floored at zero so overpaid
// purchases never report a negative amount due.
func OutstandingCents(totalCents, paidCents int64) int64 {
	if paidCents >= totalCents {
		return 0
	}
	return totalCents - paidCents
}

// DerivePaymentStatus maps paid-vs-total onto the three payment states.
func DerivePaymentStatus(totalCents, paidCents int64) enums.PaymentStatus {
	switch {
	case paidCents <= 0:
		return enums.PaymentStatusPending
	case paidCents < totalCents:
		return enums.PaymentStatusPartial
	default:
		return enums.PaymentStatusCompleted
	}
}

// ComputeFinancials assembles the full derived view for one purchase.
func ComputeFinancials(purchase *models.Purchase) Financials {
	total := purchase.TotalAmountCents
	paid := purchase.PaidAmountCents
	return Financials{
		TotalAmountCents: total,
		PaidAmountCents:  paid,
		OutstandingCents: OutstandingCents(total, paid),
		ProgressPercent:  PaymentProgressPercent(total, paid),
		PaymentStatus:    DerivePaymentStatus(total, paid),
		Overpaid:         paid > total,
	}
}
