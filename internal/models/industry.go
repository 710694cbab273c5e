package models

// Industry mirrors a row of the industries table.
type Industry struct {
	Code     string `db:"code"`
	Industry string `db:"industry"`
}

// CompanyIndustry mirrors a row of the company_industries join table.
type CompanyIndustry struct {
	CompanyCode  string `db:"company_code"`
	IndustryCode string `db:"industry_code"`
}
