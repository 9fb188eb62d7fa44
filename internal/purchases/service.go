package purchases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/internal/workflow"
	"github.com/autolane/auctionflow-backend/pkg/db/models"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns the purchase lifecycle and its derived financials.
type Service interface {
	Create(ctx context.Context, input CreatePurchaseInput) (*models.Purchase, error)
	Get(ctx context.Context, id uuid.UUID) (*Detail, error)
	List(ctx context.Context, filter ListFilter) ([]models.Purchase, error)
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error)
	UpdateShipment(ctx context.Context, input UpdateShipmentInput) (*models.Shipment, error)
}

type service struct {
	repo      Repository
	workflows workflow.Repository
	tx        txRunner
}

// NewService builds a purchases service with the required dependencies.
func NewService(repo Repository, workflows workflow.Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("purchases repository required")
	}
	if workflows == nil {
		return nil, fmt.Errorf("workflow store required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, workflows: workflows, tx: tx}, nil
}

// Create stores the purchase and seeds its workflow in one transaction. The
// total owed is computed here, once; the workflow's optional stages and
// document branch are fixed by the input flags.
func (s *service) Create(ctx context.Context, input CreatePurchaseInput) (*models.Purchase, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	purchase := &models.Purchase{
		ID:            uuid.New(),
		VehicleMake:   input.VehicleMake,
		VehicleModel:  input.VehicleModel,
		VehicleYear:   input.VehicleYear,
		VIN:           input.VIN,
		Mileage:       input.Mileage,
		Color:         input.Color,
		VehicleImages: input.VehicleImages,

		WinnerName:    input.WinnerName,
		WinnerEmail:   input.WinnerEmail,
		WinnerPhone:   input.WinnerPhone,
		WinnerAddress: input.WinnerAddress,
		DestPort:      input.DestPort,
		Notes:         input.Notes,

		WinningBidCents:   input.WinningBidCents,
		ShippingCostCents: input.ShippingCostCents,
		InsuranceFeeCents: input.InsuranceFeeCents,
		OtherCosts:        input.OtherCosts,
		TotalAmountCents:  TotalAmountCents(input.WinningBidCents, input.ShippingCostCents, input.InsuranceFeeCents, input.OtherCosts),
		PaymentStatus:     DerivePaymentStatus(0, 0),

		VehicleRegistered:   input.VehicleRegistered,
		RequiresRepair:      input.RequiresRepair,
		RequiresCourierDocs: input.RequiresCourierDocs,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if _, createErr := s.repo.WithTx(tx).Create(ctx, purchase); createErr != nil {
			return createErr
		}
		wf := &models.PurchaseWorkflow{
			ID:           uuid.New(),
			PurchaseID:   purchase.ID,
			CurrentStage: 1,
			Stages:       types.NewWorkflowStages(input.VehicleRegistered, input.RequiresRepair, input.RequiresCourierDocs),
		}
		_, createErr := s.workflows.WithTx(tx).Create(ctx, wf)
		return createErr
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store purchase")
	}

	return purchase, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	purchase, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Purchase:   *purchase,
		Financials: ComputeFinancials(purchase),
	}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.Purchase, error) {
	if filter.PaymentStatus != nil && !filter.PaymentStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment status").
			WithDetails(map[string]any{"paymentStatus": filter.PaymentStatus.String()})
	}
	purchases, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list purchases")
	}
	return purchases, nil
}

// RecordPayment appends one installment and re-derives the purchase's payment
// status. Overpayment succeeds and is reported through the Overpaid flag.
func (s *service) RecordPayment(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error) {
	if input.PaidAt.IsZero() {
		input.PaidAt = time.Now().UTC()
	}

	purchase, err := s.load(ctx, input.PurchaseID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:          uuid.New(),
		PurchaseID:  purchase.ID,
		AmountCents: input.AmountCents,
		PaidAt:      input.PaidAt,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, addErr := repo.AddPayment(ctx, payment); addErr != nil {
			return addErr
		}
		purchase.PaidAmountCents += input.AmountCents
		purchase.PaymentStatus = DerivePaymentStatus(purchase.TotalAmountCents, purchase.PaidAmountCents)
		return repo.Save(ctx, purchase)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record payment")
	}

	financials := ComputeFinancials(purchase)
	return &RecordPaymentResult{
		Payment:       *payment,
		PaymentStatus: financials.PaymentStatus,
		Financials:    financials,
		Overpaid:      financials.Overpaid,
	}, nil
}

func (s *service) UpdateShipment(ctx context.Context, input UpdateShipmentInput) (*models.Shipment, error) {
	if strings.TrimSpace(input.Carrier) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "carrier is required")
	}
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipment status").
			WithDetails(map[string]any{"status": input.Status.String()})
	}

	if _, err := s.load(ctx, input.PurchaseID); err != nil {
		return nil, err
	}

	shipment := &models.Shipment{
		ID:                uuid.New(),
		PurchaseID:        input.PurchaseID,
		Carrier:           input.Carrier,
		TrackingNumber:    input.TrackingNumber,
		Status:            input.Status,
		CurrentLocation:   input.CurrentLocation,
		EstimatedDelivery: input.EstimatedDelivery,
	}
	stored, err := s.repo.UpsertShipment(ctx, shipment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store shipment")
	}
	return stored, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load purchase")
	}
	return purchase, nil
}

func validateCreate(input CreatePurchaseInput) error {
	missing := []string{}
	if strings.TrimSpace(input.VehicleMake) == "" {
		missing = append(missing, "vehicleMake")
	}
	if strings.TrimSpace(input.VehicleModel) == "" {
		missing = append(missing, "vehicleModel")
	}
	if strings.TrimSpace(input.VIN) == "" {
		missing = append(missing, "vin")
	}
	if strings.TrimSpace(input.WinnerName) == "" {
		missing = append(missing, "winnerName")
	}
	if strings.TrimSpace(input.WinnerEmail) == "" {
		missing = append(missing, "winnerEmail")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required fields").
			WithDetails(map[string]any{"fields": missing})
	}
	if input.WinningBidCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "winning bid must not be negative")
	}
	for _, line := range input.OtherCosts {
		if !line.CostType.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown cost type").
				WithDetails(map[string]any{"costType": line.CostType.String()})
		}
	}
	return nil
}
