package mapping

import (
	"github.com/docflowhq/docflow_backend/internal/core/domain"
	"github.com/docflowhq/docflow_backend/internal/models"
)

// ToModelDocument converts a domain DocumentHeader to a model Document
func ToModelDocument(d domain.DocumentHeader) models.Document {
	return models.Document{
		ID:          d.ID,
		DocType:     string(d.DocType),
		Status:      string(d.Status),
		OwnerUserID: d.OwnerUserID,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainDocument converts a model Document to a domain DocumentHeader
func ToDomainDocument(m models.Document) domain.DocumentHeader {
	return domain.DocumentHeader{
		ID:          m.ID,
		DocType:     domain.DocumentType(m.DocType),
		Status:      domain.DocumentStatus(m.Status),
		OwnerUserID: m.OwnerUserID,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToModelInvoiceIn converts a domain InvoiceIn to a model InvoiceIn
func ToModelInvoiceIn(d domain.InvoiceIn) models.InvoiceIn {
	return models.InvoiceIn{
		Document:        ToModelDocument(d.DocumentHeader),
		VendorID:        d.VendorID,
		PurchaseOrderID: d.PurchaseOrderID,
		InvoiceNo:       d.InvoiceNo,
		InvoiceDate:     d.InvoiceDate,
		DueDate:         d.DueDate,
		Currency:        d.Currency,
		Subtotal:        d.Subtotal,
		Tax:             d.Tax,
		Total:           d.Total,
	}
}

// ToDomainInvoiceIn converts a model InvoiceIn to a domain InvoiceIn
func ToDomainInvoiceIn(m models.InvoiceIn) domain.InvoiceIn {
	return domain.InvoiceIn{
		DocumentHeader:  ToDomainDocument(m.Document),
		VendorID:        m.VendorID,
		PurchaseOrderID: m.PurchaseOrderID,
		InvoiceNo:       m.InvoiceNo,
		InvoiceDate:     m.InvoiceDate,
		DueDate:         m.DueDate,
		Currency:        m.Currency,
		Subtotal:        m.Subtotal,
		Tax:             m.Tax,
		Total:           m.Total,
	}
}

// ToModelInvoiceOut converts a domain InvoiceOut to a model InvoiceOut
func ToModelInvoiceOut(d domain.InvoiceOut) models.InvoiceOut {
	return models.InvoiceOut{
		Document:    ToModelDocument(d.DocumentHeader),
		ClientID:    d.ClientID,
		InvoiceNo:   d.InvoiceNo,
		InvoiceDate: d.InvoiceDate,
		DueDate:     d.DueDate,
		Currency:    d.Currency,
		Subtotal:    d.Subtotal,
		Tax:         d.Tax,
		Total:       d.Total,
	}
}

// ToDomainInvoiceOut converts a model InvoiceOut to a domain InvoiceOut
func ToDomainInvoiceOut(m models.InvoiceOut) domain.InvoiceOut {
	return domain.InvoiceOut{
		DocumentHeader: ToDomainDocument(m.Document),
		ClientID:       m.ClientID,
		InvoiceNo:      m.InvoiceNo,
		InvoiceDate:    m.InvoiceDate,
		DueDate:        m.DueDate,
		Currency:       m.Currency,
		Subtotal:       m.Subtotal,
		Tax:            m.Tax,
		Total:          m.Total,
	}
}
