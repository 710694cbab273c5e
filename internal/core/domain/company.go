package domain

// Company represents a business that invoices are issued against.
type Company struct {
	Code        string `json:"code"` // Primary Key, URL-safe slug (e.g., "acme-corp")
	Name        string `json:"name"`
	Description string `json:"description"` // Optional, empty when not provided
}

// CompanyAggregate is the read model returned for a single company:
// the company itself plus its invoices and industry names.
type CompanyAggregate struct {
	Company
	Invoices   []Invoice `json:"invoices"`   // Ordered by insertion (invoice id)
	Industries []string  `json:"industries"` // Industry display names, order not significant
}

// NewCompanyAggregate assembles an aggregate, normalizing nil relations to empty slices.
func NewCompanyAggregate(company Company, invoices []Invoice, industries []string) *CompanyAggregate {
	if invoices == nil {
		invoices = []Invoice{}
	}
	if industries == nil {
		industries = []string{}
	}
	return &CompanyAggregate{
		Company:    company,
		Invoices:   invoices,
		Industries: industries,
	}
}
