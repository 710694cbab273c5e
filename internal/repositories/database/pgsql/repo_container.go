package pgsql

import (
	portsrepo "github.com/SscSPs/biztime_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository on top of the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:  newPgxCompanyRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		IndustryRepo: newPgxIndustryRepository(dbPool),
	}
}
