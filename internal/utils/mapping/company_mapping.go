package mapping

import (
	"github.com/SscSPs/biztime_api/internal/core/domain"
	"github.com/SscSPs/biztime_api/internal/models"
)

// ToModelCompany converts a domain Company to a model Company.
// An empty description is stored as NULL.
func ToModelCompany(d domain.Company) models.Company {
	m := models.Company{
		Code: d.Code,
		Name: d.Name,
	}
	if d.Description != "" {
		desc := d.Description
		m.Description = &desc
	}
	return m
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	d := domain.Company{
		Code: m.Code,
		Name: m.Name,
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToDomainCompanySlice converts a slice of model Companies to a slice of domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}
