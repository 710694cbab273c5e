package services

import (
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, invoiceOpts ...InvoiceServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company:  NewCompanyService(repos.CompanyRepo, repos.InvoiceRepo, repos.IndustryRepo),
		Invoice:  NewInvoiceService(repos.InvoiceRepo, invoiceOpts...),
		Industry: NewIndustryService(repos.IndustryRepo),
	}
}
