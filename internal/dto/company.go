package dto

import (
	"github.com/SscSPs/biztime_api/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a new company.
// Code is optional; when omitted it is derived from Name.
type CreateCompanyRequest struct {
	Code        string `json:"code" binding:"omitempty,slug"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCompanyRequest defines the data allowed for updating a company.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse is a company with its invoices and industry names.
type CompanyDetailResponse struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Invoices    []InvoiceResponse `json:"invoices"`
	Industries  []string          `json:"industries"`
}

// CompanyEnvelope wraps a single company.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope wraps a company aggregate.
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}

// ListCompaniesResponse wraps the company list.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// StatusDeleted is the status reported after a successful delete.
const StatusDeleted = "deleted"

// StatusResponse is returned by delete operations.
type StatusResponse struct {
	Status string `json:"status"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToListCompaniesResponse converts a slice of domain.Company to ListCompaniesResponse
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return ListCompaniesResponse{Companies: res}
}

// ToCompanyDetailResponse converts a domain.CompanyAggregate to CompanyDetailResponse.
// Relations are always rendered as arrays, never null.
func ToCompanyDetailResponse(agg *domain.CompanyAggregate) CompanyDetailResponse {
	invoices := make([]InvoiceResponse, len(agg.Invoices))
	for i := range agg.Invoices {
		invoices[i] = ToInvoiceResponse(&agg.Invoices[i])
	}
	industries := make([]string, len(agg.Industries))
	copy(industries, agg.Industries)

	return CompanyDetailResponse{
		Code:        agg.Code,
		Name:        agg.Name,
		Description: agg.Description,
		Invoices:    invoices,
		Industries:  industries,
	}
}
