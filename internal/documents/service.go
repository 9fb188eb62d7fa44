package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/internal/workflow"
	"github.com/autolane/auctionflow-backend/pkg/db/models"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service handles uploads, deletion and the merged document view.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, purchaseID, documentID uuid.UUID) error
	List(ctx context.Context, purchaseID uuid.UUID) ([]models.Document, error)
}

type service struct {
	repo      Repository
	workflows workflow.Repository
	tx        txRunner
}

// NewService builds a documents service with the required dependencies.
func NewService(repo Repository, workflows workflow.Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("documents repository required")
	}
	if workflows == nil {
		return nil, fmt.Errorf("workflow store required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, workflows: workflows, tx: tx}, nil
}

// Upload stores every file in the batch and completes at most one checklist
// item, attaching the last stored document. Uploading the same type again
// refreshes the attachment and completion timestamp.
func (s *service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if !input.DeclaredType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown document type").
			WithDetails(map[string]any{"type": string(input.DeclaredType)})
	}
	if len(input.Files) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one file is required")
	}
	if strings.TrimSpace(input.UploadedBy) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "uploadedBy is required")
	}
	for _, file := range input.Files {
		if strings.TrimSpace(file.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
		}
	}

	wf, err := s.workflows.FindByPurchaseID(ctx, input.PurchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load workflow")
	}

	result := &UploadResult{}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		for _, file := range input.Files {
			doc := &models.Document{
				PurchaseID: input.PurchaseID,
				Name:       file.Name,
				Type:       input.DeclaredType,
				UploadedAt: input.UploadedAt,
				UploadedBy: input.UploadedBy,
				SizeBytes:  file.SizeBytes,
				URL:        file.URL,
			}
			if doc.ID == uuid.Nil {
				doc.ID = uuid.New()
			}
			stored, createErr := repo.Create(ctx, doc)
			if createErr != nil {
				return createErr
			}
			result.Documents = append(result.Documents, *stored)
		}

		// The batch satisfies its target once, with the last document.
		last := result.Documents[len(result.Documents)-1]
		target := Classify(input.DeclaredType)
		if updated := Apply(&wf.Stages, target, last.ID, input.UploadedBy, input.UploadedAt); updated != nil {
			itemCopy := *updated
			result.ChecklistUpdated = &itemCopy
		}

		// Invoice-trail and cost-invoice targets mutate stage state without
		// completing a task; the workflow still has to be persisted.
		if target.Kind != TargetNone {
			return s.workflows.WithTx(tx).Save(ctx, wf)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store upload batch")
	}

	return result, nil
}

// Delete hard-removes a document by id. Checklist items that referenced the
// document keep their completed flag; deletion never reverts task state.
func (s *service) Delete(ctx context.Context, purchaseID, documentID uuid.UUID) error {
	affected, err := s.repo.DeleteByID(ctx, purchaseID, documentID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete document")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
	}
	return nil
}

func (s *service) List(ctx context.Context, purchaseID uuid.UUID) ([]models.Document, error) {
	docs, err := s.repo.ListByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list documents")
	}
	return docs, nil
}
