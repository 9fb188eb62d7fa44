package documents

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autolane/auctionflow-backend/internal/workflow"
	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

type stubDocRepo struct {
	created   []*models.Document
	deleted   int64
	deleteErr error
	listed    []models.Document
}

func (s *stubDocRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubDocRepo) Create(ctx context.Context, document *models.Document) (*models.Document, error) {
	s.created = append(s.created, document)
	return document, nil
}

func (s *stubDocRepo) FindByID(ctx context.Context, purchaseID, documentID uuid.UUID) (*models.Document, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDocRepo) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]models.Document, error) {
	return s.listed, nil
}

func (s *stubDocRepo) DeleteByID(ctx context.Context, purchaseID, documentID uuid.UUID) (int64, error) {
	return s.deleted, s.deleteErr
}

type stubWorkflowRepo struct {
	workflow *models.PurchaseWorkflow
	findErr  error
	saved    *models.PurchaseWorkflow
}

func (s *stubWorkflowRepo) WithTx(tx *gorm.DB) workflow.Repository { return s }

func (s *stubWorkflowRepo) Create(ctx context.Context, wf *models.PurchaseWorkflow) (*models.PurchaseWorkflow, error) {
	s.workflow = wf
	return wf, nil
}

func (s *stubWorkflowRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.PurchaseWorkflow, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.workflow, nil
}

func (s *stubWorkflowRepo) FindByPurchaseID(ctx context.Context, purchaseID uuid.UUID) (*models.PurchaseWorkflow, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.workflow, nil
}

func (s *stubWorkflowRepo) Save(ctx context.Context, wf *models.PurchaseWorkflow) error {
	s.saved = wf
	return nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected coded error, got %v", err)
	}
	if typed.Code() != code {
		t.Fatalf("expected code %s, got %s (%v)", code, typed.Code(), err)
	}
}

func newUploadService(t *testing.T, docs *stubDocRepo, workflows *stubWorkflowRepo) Service {
	t.Helper()
	svc, err := NewService(docs, workflows, stubTx{})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func testUploadInput(docType enums.DocumentType, files ...FileMetadata) UploadInput {
	return UploadInput{
		PurchaseID:   uuid.New(),
		DeclaredType: docType,
		Files:        files,
		UploadedBy:   "sato",
		UploadedAt:   time.Now().UTC(),
	}
}

func TestUploadValidation(t *testing.T) {
	workflows := &stubWorkflowRepo{workflow: &models.PurchaseWorkflow{Stages: types.NewWorkflowStages(true, false, false)}}
	svc := newUploadService(t, &stubDocRepo{}, workflows)

	_, err := svc.Upload(context.Background(), testUploadInput("paper"))
	expectCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.Upload(context.Background(), testUploadInput(enums.DocumentTypeInvoice))
	expectCode(t, err, pkgerrors.CodeValidation)

	input := testUploadInput(enums.DocumentTypeInvoice, FileMetadata{Name: "a.pdf"})
	input.UploadedBy = " "
	_, err = svc.Upload(context.Background(), input)
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestUploadUnknownPurchase(t *testing.T) {
	workflows := &stubWorkflowRepo{findErr: gorm.ErrRecordNotFound}
	svc := newUploadService(t, &stubDocRepo{}, workflows)

	_, err := svc.Upload(context.Background(), testUploadInput(enums.DocumentTypeInvoice, FileMetadata{Name: "a.pdf"}))
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestUploadBatchStoresAllAndUpdatesOnce(t *testing.T) {
	wf := &models.PurchaseWorkflow{ID: uuid.New(), Stages: types.NewWorkflowStages(true, false, false)}
	workflows := &stubWorkflowRepo{workflow: wf}
	docs := &stubDocRepo{}
	svc := newUploadService(t, docs, workflows)

	result, err := svc.Upload(context.Background(), testUploadInput(
		enums.DocumentTypeExportCertificate,
		FileMetadata{Name: "draft.pdf"},
		FileMetadata{Name: "final.pdf"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("expected 2 stored documents, got %d", len(result.Documents))
	}
	if result.ChecklistUpdated == nil {
		t.Fatal("expected a checklist update")
	}

	item := wf.Stages.DocumentsReceived.RegisteredTasks.ExportCertificateCreated
	if !item.Completed {
		t.Fatal("target item should be completed")
	}
	if item.AttachmentID == nil || *item.AttachmentID != result.Documents[1].ID {
		t.Fatal("last document of the batch should be the attachment")
	}
	if workflows.saved == nil {
		t.Fatal("workflow mutation should be persisted")
	}
}

func TestUploadNoMatchStoresWithoutChecklistUpdate(t *testing.T) {
	wf := &models.PurchaseWorkflow{ID: uuid.New(), Stages: types.NewWorkflowStages(false, false, false)}
	workflows := &stubWorkflowRepo{workflow: wf}
	docs := &stubDocRepo{}
	svc := newUploadService(t, docs, workflows)

	// Deregistration paperwork for an unregistered vehicle: stored, no task.
	result, err := svc.Upload(context.Background(), testUploadInput(
		enums.DocumentTypeDeregistration,
		FileMetadata{Name: "dereg.pdf"},
	))
	if err != nil {
		t.Fatalf("no-match upload must succeed: %v", err)
	}
	if len(result.Documents) != 1 {
		t.Fatalf("document should still be stored, got %d", len(result.Documents))
	}
	if result.ChecklistUpdated != nil {
		t.Fatal("no checklist item should be touched")
	}
}

func TestUploadOtherTypeSkipsWorkflowPersist(t *testing.T) {
	wf := &models.PurchaseWorkflow{ID: uuid.New(), Stages: types.NewWorkflowStages(true, false, false)}
	workflows := &stubWorkflowRepo{workflow: wf}
	svc := newUploadService(t, &stubDocRepo{}, workflows)

	_, err := svc.Upload(context.Background(), testUploadInput(enums.DocumentTypeOther, FileMetadata{Name: "misc.pdf"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workflows.saved != nil {
		t.Fatal("untargeted uploads should not rewrite the workflow")
	}
}

func TestDeleteMissingDocument(t *testing.T) {
	svc := newUploadService(t, &stubDocRepo{deleted: 0}, &stubWorkflowRepo{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteLeavesChecklistAlone(t *testing.T) {
	wf := &models.PurchaseWorkflow{ID: uuid.New(), Stages: types.NewWorkflowStages(true, false, false)}
	wf.Stages.Booking.ReceivedSO.Attach(uuid.New(), "sato", time.Now().UTC())
	workflows := &stubWorkflowRepo{workflow: wf}
	svc := newUploadService(t, &stubDocRepo{deleted: 1}, workflows)

	if err := svc.Delete(context.Background(), uuid.New(), *wf.Stages.Booking.ReceivedSO.AttachmentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !wf.Stages.Booking.ReceivedSO.Completed {
		t.Fatal("deletion must not revert completed tasks")
	}
	if workflows.saved != nil {
		t.Fatal("deletion must not rewrite the workflow")
	}
}
