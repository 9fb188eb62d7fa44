package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/api/middleware"
	"github.com/autolane/auctionflow-backend/api/responses"
	"github.com/autolane/auctionflow-backend/api/validators"
	"github.com/autolane/auctionflow-backend/internal/workflow"
	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/logger"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

type workflowResponse struct {
	ID           uuid.UUID            `json:"id"`
	PurchaseID   uuid.UUID            `json:"purchaseId"`
	CurrentStage int                  `json:"currentStage"`
	Stages       types.WorkflowStages `json:"stages"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func workflowResponseFromModel(m *models.PurchaseWorkflow) workflowResponse {
	return workflowResponse{
		ID:           m.ID,
		PurchaseID:   m.PurchaseID,
		CurrentStage: m.CurrentStage,
		Stages:       m.Stages,
		UpdatedAt:    m.UpdatedAt,
	}
}

func WorkflowTaskProgress(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		progress, err := svc.TaskProgress(r.Context(), workflowID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, progress)
	}
}

func WorkflowProgress(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		progress, err := svc.WorkflowProgress(r.Context(), workflowID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"progress": progress})
	}
}

func WorkflowCustomerView(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.CustomerView(r.Context(), workflowID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func WorkflowSummary(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Summary(r.Context(), workflowID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

type checklistItemRequest struct {
	Stage     string  `json:"stage" validate:"required"`
	Item      string  `json:"item" validate:"required"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes"`
}

// ChecklistItemSet toggles one checklist item, stamping the operator from the
// auth context on completion.
func ChecklistItemSet(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checklistItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stage, err := enums.ParseWorkflowStage(strings.TrimSpace(payload.Stage))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid workflow stage"))
			return
		}

		item, err := svc.SetChecklistItem(r.Context(), workflow.SetChecklistItemInput{
			WorkflowID:  workflowID,
			Stage:       stage,
			Item:        strings.TrimSpace(payload.Item),
			Completed:   payload.Completed,
			CompletedBy: middleware.OperatorFromContext(r.Context()),
			Notes:       payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

type documentsBranchRequest struct {
	IsRegistered *bool `json:"isRegistered" validate:"required"`
}

func DocumentsBranchSet(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload documentsBranchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetDocumentsReceivedBranch(r.Context(), workflowID, *payload.IsRegistered)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, workflowResponseFromModel(updated))
	}
}

type currentStageRequest struct {
	Stage int `json:"stage" validate:"required"`
}

func CurrentStageSet(svc workflow.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workflowID, err := parseIDParam(r, "workflowId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload currentStageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetCurrentStage(r.Context(), workflowID, payload.Stage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, workflowResponseFromModel(updated))
	}
}
