package purchases

import (
	"testing"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

func TestTotalAmountCents(t *testing.T) {
	other := []types.CostLine{
		{CostType: enums.CostTypeRepair, AmountCents: 30_000},
		{CostType: enums.CostTypeStorage, AmountCents: 12_500},
	}
	total := TotalAmountCents(1_500_000, 80_000, 20_000, other)
	if total != 1_642_500 {
		t.Fatalf("expected 1642500, got %d", total)
	}

	if got := TotalAmountCents(1_000_000, 0, 0, nil); got != 1_000_000 {
		t.Fatalf("expected bid-only total 1000000, got %d", got)
	}
}

func TestPaymentProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		paid    int64
		percent int
	}{
		{name: "zero total", total: 0, paid: 50_000, percent: 0},
		{name: "nothing paid", total: 100_000, paid: 0, percent: 0},
		{name: "half paid", total: 100_000, paid: 50_000, percent: 50},
		{name: "rounds half up", total: 300_000, paid: 100_000, percent: 33},
		{name: "rounds to nearest", total: 160_000, paid: 100_000, percent: 63},
		{name: "fully paid", total: 100_000, paid: 100_000, percent: 100},
		{name: "overpaid exceeds 100", total: 100_000, paid: 125_000, percent: 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaymentProgressPercent(tt.total, tt.paid); got != tt.percent {
				t.Fatalf("expected %d%%, got %d%%", tt.percent, got)
			}
		})
	}
}

func TestOutstandingCentsFloorsAtZero(t *testing.T) {
	if got := OutstandingCents(100_000, 30_000); got != 70_000 {
		t.Fatalf("expected 70000 outstanding, got %d", got)
	}
	if got := OutstandingCents(100_000, 130_000); got != 0 {
		t.Fatalf("overpaid purchase should owe 0, got %d", got)
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		total  int64
		paid   int64
		status enums.PaymentStatus
	}{
		{total: 100_000, paid: 0, status: enums.PaymentStatusPending},
		{total: 100_000, paid: -5_000, status: enums.PaymentStatusPending},
		{total: 100_000, paid: 40_000, status: enums.PaymentStatusPartial},
		{total: 100_000, paid: 100_000, status: enums.PaymentStatusCompleted},
		{total: 100_000, paid: 140_000, status: enums.PaymentStatusCompleted},
	}

	for _, tt := range tests {
		if got := DerivePaymentStatus(tt.total, tt.paid); got != tt.status {
			t.Fatalf("total %d paid %d: expected %s, got %s", tt.total, tt.paid, tt.status, got)
		}
	}
}

func TestComputeFinancials(t *testing.T) {
	purchase := &models.Purchase{TotalAmountCents: 200_000, PaidAmountCents: 250_000}

	fin := ComputeFinancials(purchase)
	if fin.OutstandingCents != 0 {
		t.Fatalf("expected 0 outstanding, got %d", fin.OutstandingCents)
	}
	if fin.ProgressPercent != 125 {
		t.Fatalf("expected 125%%, got %d%%", fin.ProgressPercent)
	}
	if fin.PaymentStatus != enums.PaymentStatusCompleted {
		t.Fatalf("expected completed, got %s", fin.PaymentStatus)
	}
	if !fin.Overpaid {
		t.Fatal("overpaid flag should be set")
	}
}
