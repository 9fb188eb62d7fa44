package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autolane/auctionflow-backend/api/middleware"
	"github.com/autolane/auctionflow-backend/api/responses"
	"github.com/autolane/auctionflow-backend/api/validators"
	"github.com/autolane/auctionflow-backend/internal/documents"
	"github.com/autolane/auctionflow-backend/pkg/db/models"
	"github.com/autolane/auctionflow-backend/pkg/enums"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/logger"
	"github.com/autolane/auctionflow-backend/pkg/types"
)

type uploadFileRequest struct {
	Name      string `json:"name" validate:"required"`
	SizeBytes int64  `json:"sizeBytes" validate:"min=0"`
	URL       string `json:"url" validate:"required"`
}

type documentUploadRequest struct {
	Type  string              `json:"type" validate:"required"`
	Files []uploadFileRequest `json:"files" validate:"required,min=1,dive"`
}

type documentResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Type       enums.DocumentType `json:"type"`
	UploadedAt time.Time          `json:"uploadedAt"`
	UploadedBy string             `json:"uploadedBy"`
	SizeBytes  int64              `json:"sizeBytes"`
	URL        string             `json:"url"`
}

type documentUploadResponse struct {
	Documents        []documentResponse   `json:"documents"`
	ChecklistUpdated *types.ChecklistItem `json:"checklistUpdated"`
}

func documentResponseFromModel(m *models.Document) documentResponse {
	return documentResponse{
		ID:         m.ID,
		Name:       m.Name,
		Type:       m.Type,
		UploadedAt: m.UploadedAt,
		UploadedBy: m.UploadedBy,
		SizeBytes:  m.SizeBytes,
		URL:        m.URL,
	}
}

// DocumentUpload stores an upload batch and links it to the workflow's
// checklist where the declared type matches.
func DocumentUpload(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID, err := parseIDParam(r, "purchaseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload documentUploadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		docType, err := enums.ParseDocumentType(strings.TrimSpace(payload.Type))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid document type"))
			return
		}

		files := make([]documents.FileMetadata, 0, len(payload.Files))
		for _, file := range payload.Files {
			files = append(files, documents.FileMetadata{
				Name:      strings.TrimSpace(file.Name),
				SizeBytes: file.SizeBytes,
				URL:       file.URL,
			})
		}

		result, err := svc.Upload(r.Context(), documents.UploadInput{
			PurchaseID:   purchaseID,
			DeclaredType: docType,
			Files:        files,
			UploadedBy:   middleware.OperatorFromContext(r.Context()),
			UploadedAt:   time.Now().UTC(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := documentUploadResponse{ChecklistUpdated: result.ChecklistUpdated}
		for i := range result.Documents {
			out.Documents = append(out.Documents, documentResponseFromModel(&result.Documents[i]))
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

func DocumentList(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID, err := parseIDParam(r, "purchaseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		docs, err := svc.List(r.Context(), purchaseID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]documentResponse, 0, len(docs))
		for i := range docs {
			out = append(out, documentResponseFromModel(&docs[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// DocumentDelete hard-removes a stored document. Checklist state is left
// untouched on purpose.
func DocumentDelete(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchaseID, err := parseIDParam(r, "purchaseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		documentID, err := parseIDParam(r, "documentId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), purchaseID, documentID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
