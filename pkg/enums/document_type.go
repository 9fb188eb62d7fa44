package enums

import "fmt"

// DocumentType classifies the paperwork collected for a purchase.
type DocumentType string

const (
	DocumentTypeInvoice           DocumentType = "invoice"
	DocumentTypeExportCertificate DocumentType = "export_certificate"
	DocumentTypeBillOfLading      DocumentType = "bill_of_lading"
	DocumentTypeInsurance         DocumentType = "insurance"
	DocumentTypeInspection        DocumentType = "inspection"
	DocumentTypeDeregistration    DocumentType = "deregistration"
	DocumentTypeNumberPlates      DocumentType = "number_plates"
	DocumentTypeOther             DocumentType = "other"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeInvoice,
	DocumentTypeExportCertificate,
	DocumentTypeBillOfLading,
	DocumentTypeInsurance,
	DocumentTypeInspection,
	DocumentTypeDeregistration,
	DocumentTypeNumberPlates,
	DocumentTypeOther,
}

// String implements fmt.Stringer.
func (d DocumentType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DocumentType.
func (d DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentType converts raw input into a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
