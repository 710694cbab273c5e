package domain

// Industry is a sector a company can be associated with.
type Industry struct {
	Code     string `json:"code"`     // Primary Key, slug derived from the display name
	Industry string `json:"industry"` // Display name
}

// IndustryWithCompanies is an industry together with the codes of the companies linked to it.
type IndustryWithCompanies struct {
	Industry
	Companies []string `json:"companies"`
}

// CompanyIndustry links a company to an industry. The pair is its own identity.
type CompanyIndustry struct {
	CompanyCode  string `json:"company_code"`
	IndustryCode string `json:"industry_code"`
}
