package types

import "github.com/autolane/auctionflow-backend/pkg/enums"

// CostLine is an extra cost recorded against a purchase at creation time.
// Cost lines participate in the one-off total computation and get their own
// invoice slot in the after-purchase stage.
type CostLine struct {
	CostType    enums.CostType `json:"costType"`
	AmountCents int64          `json:"amountCents"`
}
