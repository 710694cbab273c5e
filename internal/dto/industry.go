package dto

import (
	"github.com/SscSPs/biztime_api/internal/core/domain"
)

// CreateIndustryRequest defines the data needed to create a new industry.
type CreateIndustryRequest struct {
	Industry string `json:"industry" binding:"required"`
}

// AssociateIndustryRequest links an existing company to an existing industry.
type AssociateIndustryRequest struct {
	CompanyCode  string `json:"companyCode" binding:"required"`
	IndustryCode string `json:"industryCode" binding:"required"`
}

// IndustryResponse defines the data returned for an industry.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryWithCompaniesResponse is an industry with the codes of its companies.
type IndustryWithCompaniesResponse struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	Companies []string `json:"companies"`
}

// AssociationResponse defines the data returned for a company/industry link.
type AssociationResponse struct {
	CompanyCode  string `json:"company_code"`
	IndustryCode string `json:"industry_code"`
}

// IndustryEnvelope wraps a single industry.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// AssociationEnvelope wraps a single association.
type AssociationEnvelope struct {
	Association AssociationResponse `json:"association"`
}

// ListIndustriesResponse wraps the industry list.
type ListIndustriesResponse struct {
	Industries []IndustryWithCompaniesResponse `json:"industries"`
}

// ToIndustryResponse converts a domain.Industry to IndustryResponse DTO
func ToIndustryResponse(ind *domain.Industry) IndustryResponse {
	return IndustryResponse{Code: ind.Code, Industry: ind.Industry}
}

// ToAssociationResponse converts a domain.CompanyIndustry to AssociationResponse DTO
func ToAssociationResponse(a *domain.CompanyIndustry) AssociationResponse {
	return AssociationResponse{CompanyCode: a.CompanyCode, IndustryCode: a.IndustryCode}
}

// ToListIndustriesResponse converts industries to the list view, with empty company lists as [].
func ToListIndustriesResponse(industries []domain.IndustryWithCompanies) ListIndustriesResponse {
	res := make([]IndustryWithCompaniesResponse, len(industries))
	for i, ind := range industries {
		companies := ind.Companies
		if companies == nil {
			companies = []string{}
		}
		res[i] = IndustryWithCompaniesResponse{
			Code:      ind.Code,
			Industry:  ind.Industry.Industry,
			Companies: companies,
		}
	}
	return ListIndustriesResponse{Industries: res}
}
