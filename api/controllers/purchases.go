package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/api/responses"
	"github.com/autolane/auctionflow-backend/api/validators"
	"github.com/autolane/auctionflow-backend/internal/purchases"
	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/logger"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

type costLineRequest struct {
	CostType    string `json:"costType" validate:"required"`
	AmountCents int64  `json:"amountCents" validate:"min=0"`
}

type purchaseCreateRequest struct {
	VehicleMake   string   `json:"vehicleMake" validate:"required"`
	VehicleModel  string   `json:"vehicleModel" validate:"required"`
	VehicleYear   int      `json:"vehicleYear" validate:"required,min=1950"`
	VIN           string   `json:"vin" validate:"required"`
	Mileage       int      `json:"mileage" validate:"min=0"`
	Color         string   `json:"color"`
	VehicleImages []string `json:"vehicleImages"`

	WinnerName    string  `json:"winnerName" validate:"required"`
	WinnerEmail   string  `json:"winnerEmail" validate:"required,email"`
	WinnerPhone   string  `json:"winnerPhone"`
	WinnerAddress string  `json:"winnerAddress"`
	DestPort      string  `json:"destinationPort"`
	Notes         *string `json:"notes"`

	WinningBidCents   int64             `json:"winningBidCents" validate:"min=0"`
	ShippingCostCents int64             `json:"shippingCostCents" validate:"min=0"`
	InsuranceFeeCents int64             `json:"insuranceFeeCents" validate:"min=0"`
	OtherCosts        []costLineRequest `json:"otherCosts" validate:"dive"`

	VehicleRegistered   bool `json:"vehicleRegistered"`
	RequiresRepair      bool `json:"requiresRepair"`
	RequiresCourierDocs bool `json:"requiresCourierDocs"`
}

func (r purchaseCreateRequest) toInput() (purchases.CreatePurchaseInput, error) {
	costs := make([]types.CostLine, 0, len(r.OtherCosts))
	for _, line := range r.OtherCosts {
		costType, err := enums.ParseCostType(strings.TrimSpace(line.CostType))
		if err != nil {
			return purchases.CreatePurchaseInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid cost type").
				WithDetails(map[string]any{"costType": line.CostType})
		}
		costs = append(costs, types.CostLine{CostType: costType, AmountCents: line.AmountCents})
	}

	return purchases.CreatePurchaseInput{
		VehicleMake:   strings.TrimSpace(r.VehicleMake),
		VehicleModel:  strings.TrimSpace(r.VehicleModel),
		VehicleYear:   r.VehicleYear,
		VIN:           strings.TrimSpace(r.VIN),
		Mileage:       r.Mileage,
		Color:         strings.TrimSpace(r.Color),
		VehicleImages: r.VehicleImages,

		WinnerName:    strings.TrimSpace(r.WinnerName),
		WinnerEmail:   strings.TrimSpace(r.WinnerEmail),
		WinnerPhone:   strings.TrimSpace(r.WinnerPhone),
		WinnerAddress: strings.TrimSpace(r.WinnerAddress),
		DestPort:      strings.TrimSpace(r.DestPort),
		Notes:         r.Notes,

		WinningBidCents:   r.WinningBidCents,
		ShippingCostCents: r.ShippingCostCents,
		InsuranceFeeCents: r.InsuranceFeeCents,
		OtherCosts:        costs,

		VehicleRegistered:   r.VehicleRegistered,
		RequiresRepair:      r.RequiresRepair,
		RequiresCourierDocs: r.RequiresCourierDocs,
	}, nil
}

// PurchaseCreate registers a won auction and seeds its workflow.
func PurchaseCreate(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload purchaseCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, purchaseResponseFromModel(created))
	}
}

func PurchaseList(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter purchases.ListFilter

		if raw := strings.TrimSpace(r.URL.Query().Get("paymentStatus")); raw != "" {
			status, err := enums.ParsePaymentStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment status"))
				return
			}
			filter.PaymentStatus = &status
		}

		stage, err := validators.ParseQueryInt(r, "stage", 0, 1, enums.StageCount)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if stage != 0 {
			filter.CurrentStage = &stage
		}

		list, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]purchaseResponse, 0, len(list))
		for i := range list {
			out = append(out, purchaseResponseFromModel(&list[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

func PurchaseDetail(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID, err := parseIDParam(r, "purchaseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Get(r.Context(), purchaseID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := purchaseResponseFromModel(&detail.Purchase)
		resp.Financials = &detail.Financials
		responses.WriteSuccess(w, resp)
	}
}

type recordPaymentRequest struct {
	AmountCents int64      `json:"amountCents" validate:"required"`
	PaidAt      *time.Time `json:"paidAt"`
}

// PaymentRecord appends one installment against a purchase.
func PaymentRecord(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID, err := parseIDParam(r, "purchaseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload recordPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := purchases.RecordPaymentInput{
			PurchaseID:  purchaseID,
			AmountCents: payload.AmountCents,
		}
		if payload.PaidAt != nil {
			input.PaidAt = payload.PaidAt.UTC()
		}

		result, err := svc.RecordPayment(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

type shipmentUpdateRequest struct {
	Carrier           string     `json:"carrier" validate:"required"`
	TrackingNumber    string     `json:"trackingNumber"`
	Status            string     `json:"status" validate:"required"`
	CurrentLocation   string     `json:"currentLocation"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

// ShipmentUpdate upserts the carriage record of a purchase.
func ShipmentUpdate(svc purchases.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID, err := parseIDParam(r, "purchaseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shipmentUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseShipmentStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipment status"))
			return
		}

		shipment, err := svc.UpdateShipment(r.Context(), purchases.UpdateShipmentInput{
			PurchaseID:        purchaseID,
			Carrier:           strings.TrimSpace(payload.Carrier),
			TrackingNumber:    strings.TrimSpace(payload.TrackingNumber),
			Status:            status,
			CurrentLocation:   strings.TrimSpace(payload.CurrentLocation),
			EstimatedDelivery: payload.EstimatedDelivery,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shipmentResponseFromModel(shipment))
	}
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return id, nil
}

type vehicleResponse struct {
	Make    string   `json:"make"`
	Model   string   `json:"model"`
	Year    int      `json:"year"`
	VIN     string   `json:"vin"`
	Mileage int      `json:"mileage"`
	Color   string   `json:"color"`
	Images  []string `json:"images,omitempty"`
}

type winnerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type paymentResponse struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amountCents"`
	PaidAt      time.Time `json:"paidAt"`
}

type shipmentResponse struct {
	ID                uuid.UUID            `json:"id"`
	Carrier           string               `json:"carrier"`
	TrackingNumber    string               `json:"trackingNumber,omitempty"`
	Status            enums.ShipmentStatus `json:"status"`
	CurrentLocation   string               `json:"currentLocation,omitempty"`
	EstimatedDelivery *time.Time           `json:"estimatedDelivery,omitempty"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

type purchaseResponse struct {
	ID      uuid.UUID       `json:"id"`
	Vehicle vehicleResponse `json:"vehicle"`
	Winner  winnerResponse  `json:"winner"`

	DestPort string  `json:"destinationPort,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	WinningBidCents   int64                 `json:"winningBidCents"`
	ShippingCostCents int64                 `json:"shippingCostCents"`
	InsuranceFeeCents int64                 `json:"insuranceFeeCents"`
	OtherCosts        []types.CostLine      `json:"otherCosts,omitempty"`
	TotalAmountCents  int64                 `json:"totalAmountCents"`
	PaidAmountCents   int64                 `json:"paidAmountCents"`
	PaymentStatus     enums.PaymentStatus   `json:"paymentStatus"`
	Financials        *purchases.Financials `json:"financials,omitempty"`

	VehicleRegistered   bool `json:"vehicleRegistered"`
	RequiresRepair      bool `json:"requiresRepair"`
	RequiresCourierDocs bool `json:"requiresCourierDocs"`

	Payments  []paymentResponse  `json:"payments,omitempty"`
	Documents []documentResponse `json:"documents,omitempty"`
	Shipment  *shipmentResponse  `json:"shipment,omitempty"`
	Workflow  *workflowResponse  `json:"workflow,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func purchaseResponseFromModel(m *models.Purchase) purchaseResponse {
	resp := purchaseResponse{
		ID: m.ID,
		Vehicle: vehicleResponse{
			Make:    m.VehicleMake,
			Model:   m.VehicleModel,
			Year:    m.VehicleYear,
			VIN:     m.VIN,
			Mileage: m.Mileage,
			Color:   m.Color,
			Images:  m.VehicleImages,
		},
		Winner: winnerResponse{
			Name:    m.WinnerName,
			Email:   m.WinnerEmail,
			Phone:   m.WinnerPhone,
			Address: m.WinnerAddress,
		},
		DestPort: m.DestPort,
		Notes:    m.Notes,

		WinningBidCents:   m.WinningBidCents,
		ShippingCostCents: m.ShippingCostCents,
		InsuranceFeeCents: m.InsuranceFeeCents,
		OtherCosts:        m.OtherCosts,
		TotalAmountCents:  m.TotalAmountCents,
		PaidAmountCents:   m.PaidAmountCents,
		PaymentStatus:     m.PaymentStatus,

		VehicleRegistered:   m.VehicleRegistered,
		RequiresRepair:      m.RequiresRepair,
		RequiresCourierDocs: m.RequiresCourierDocs,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	for _, payment := range m.Payments {
		resp.Payments = append(resp.Payments, paymentResponse{
			ID:          payment.ID,
			AmountCents: payment.AmountCents,
			PaidAt:      payment.PaidAt,
		})
	}
	for _, doc := range m.Documents {
		resp.Documents = append(resp.Documents, documentResponseFromModel(&doc))
	}
	if m.Shipment != nil {
		shipment := shipmentResponseFromModel(m.Shipment)
		resp.Shipment = &shipment
	}
	if m.Workflow != nil {
		workflow := workflowResponseFromModel(m.Workflow)
		resp.Workflow = &workflow
	}

	return resp
}

func shipmentResponseFromModel(m *models.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:                m.ID,
		Carrier:           m.Carrier,
		TrackingNumber:    m.TrackingNumber,
		Status:            m.Status,
		CurrentLocation:   m.CurrentLocation,
		EstimatedDelivery: m.EstimatedDelivery,
		UpdatedAt:         m.UpdatedAt,
	}
}
