package mapping

import (
	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/SscSPs/biztime_api/internal/models"
)

// ToModelIndustry converts a domain Industry to a model Industry
func ToModelIndustry(d domain.Industry) models.Industry {
	return models.Industry{Code: d.Code, Industry: d.Industry}
}

// ToModelCompanyIndustry converts a domain CompanyIndustry to a model CompanyIndustry
func ToModelCompanyIndustry(d domain.CompanyIndustry) models.CompanyIndustry {
	return models.CompanyIndustry{CompanyCode: d.CompanyCode, IndustryCode: d.IndustryCode}
}
