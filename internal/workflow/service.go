package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

// Service exposes the workflow engine's operations over persisted workflows.
type Service interface {
	TaskProgress(ctx context.Context, workflowID uuid.UUID) (TaskProgress, error)
	WorkflowProgress(ctx context.Context, workflowID uuid.UUID) (int, error)
	CustomerView(ctx context.Context, workflowID uuid.UUID) (CustomerView, error)
	Summary(ctx context.Context, workflowID uuid.UUID) (Summary, error)
	SetChecklistItem(ctx context.Context, input SetChecklistItemInput) (types.ChecklistItem, error)
	SetDocumentsReceivedBranch(ctx context.Context, workflowID uuid.UUID, isRegistered bool) (*models.PurchaseWorkflow, error)
	SetCurrentStage(ctx context.Context, workflowID uuid.UUID, stage int) (*models.PurchaseWorkflow, error)
}

type service struct {
	repo Repository
}

// NewService builds a workflow service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("workflow repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) load(ctx context.Context, workflowID uuid.UUID) (*models.PurchaseWorkflow, error) {
	workflow, err := s.repo.FindByID(ctx, workflowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "workflow not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load workflow")
	}
	return workflow, nil
}

func (s *service) TaskProgress(ctx context.Context, workflowID uuid.UUID) (TaskProgress, error) {
	workflow, err := s.load(ctx, workflowID)
	if err != nil {
		return TaskProgress{}, err
	}
	return ComputeTaskProgress(&workflow.Stages), nil
}

func (s *service) WorkflowProgress(ctx context.Context, workflowID uuid.UUID) (int, error) {
	workflow, err := s.load(ctx, workflowID)
	if err != nil {
		return 0, err
	}
	return ComputeWorkflowProgress(workflow.CurrentStage), nil
}

func (s *service) CustomerView(ctx context.Context, workflowID uuid.UUID) (CustomerView, error) {
	workflow, err := s.load(ctx, workflowID)
	if err != nil {
		return CustomerView{}, err
	}
	return ComputeCustomerView(workflow.CurrentStage), nil
}

func (s *service) Summary(ctx context.Context, workflowID uuid.UUID) (Summary, error) {
	workflow, err := s.load(ctx, workflowID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		WorkflowID:   workflow.ID,
		CurrentStage: workflow.CurrentStage,
		Tasks:        ComputeTaskProgress(&workflow.Stages),
		Progress:     ComputeWorkflowProgress(workflow.CurrentStage),
		CustomerView: ComputeCustomerView(workflow.CurrentStage),
	}, nil
}

func (s *service) SetChecklistItem(ctx context.Context, input SetChecklistItemInput) (types.ChecklistItem, error) {
	if input.Completed && strings.TrimSpace(input.CompletedBy) == "" {
		return types.ChecklistItem{}, pkgerrors.New(pkgerrors.CodeValidation, "completedBy is required when completing a task")
	}

	workflow, err := s.load(ctx, input.WorkflowID)
	if err != nil {
		return types.ChecklistItem{}, err
	}

	item, err := resolveItem(&workflow.Stages, input.Stage, input.Item)
	if err != nil {
		return types.ChecklistItem{}, err
	}

	if input.Completed {
		item.Complete(input.CompletedBy, time.Now().UTC())
	} else {
		item.Reset()
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}

	if err := s.repo.Save(ctx, workflow); err != nil {
		return types.ChecklistItem{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist checklist change")
	}
	return *item, nil
}

func (s *service) SetDocumentsReceivedBranch(ctx context.Context, workflowID uuid.UUID, isRegistered bool) (*models.PurchaseWorkflow, error) {
	workflow, err := s.load(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	workflow.Stages.DocumentsReceived.SetBranch(isRegistered)

	if err := s.repo.Save(ctx, workflow); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist branch switch")
	}
	return workflow, nil
}

func (s *service) SetCurrentStage(ctx context.Context, workflowID uuid.UUID, stage int) (*models.PurchaseWorkflow, error) {
	if stage < 1 || stage > enums.StageCount {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stage out of range").
			WithDetails(map[string]any{"stage": stage, "min": 1, "max": enums.StageCount})
	}

	workflow, err := s.load(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	// Operators may move the pipeline regardless of checklist state.
	workflow.CurrentStage = stage

	if err := s.repo.Save(ctx, workflow); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist stage change")
	}
	return workflow, nil
}
