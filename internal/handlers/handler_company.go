package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/SscSPs/biztime_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// RegisterCompanyRoutes registers routes related to companies.
func RegisterCompanyRoutes(rg gin.IRouter, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.POST("", h.createCompany)
		companies.GET("/:code", h.getCompany)
		companies.PUT("/:code", h.updateCompany)
		companies.DELETE("/:code", h.deleteCompany)
	}
}

// listCompanies godoc
// @Summary List all companies
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 500 {object} map[string]string "Failed to list companies"
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list companies")
		return
	}

	logger.Info("Companies listed successfully", slog.Int("count", len(companies)))
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompany godoc
// @Summary Get a company by code
// @Description Returns the company with its invoices and industry names
// @Tags companies
// @Produce  json
// @Param   code path string true "Company code"
// @Success 200 {object} dto.CompanyDetailEnvelope
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to retrieve company"
// @Router /companies/{code} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_code", code))

	company, err := h.companyService.GetCompany(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve company")
		return
	}

	c.JSON(http.StatusOK, dto.CompanyDetailEnvelope{Company: dto.ToCompanyDetailResponse(company)})
}

// createCompany godoc
// @Summary Create a new company
// @Description The code is derived from the name unless a valid slug is supplied
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Company code already exists"
// @Failure 500 {object} map[string]string "Failed to create company"
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create company")
		return
	}

	logger.Info("Company created successfully", slog.String("company_code", company.Code))
	c.JSON(http.StatusCreated, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// updateCompany godoc
// @Summary Update a company
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   code path string true "Company code"
// @Param   company body dto.UpdateCompanyRequest true "Company details"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to update company"
// @Router /companies/{code} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_code", code))

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Fails with 409 while the company still has invoices
// @Tags companies
// @Produce  json
// @Param   code path string true "Company code"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 409 {object} map[string]string "Company has invoices"
// @Failure 500 {object} map[string]string "Failed to delete company"
// @Router /companies/{code} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_code", code))

	if err := h.companyService.DeleteCompany(c.Request.Context(), code); err != nil {
		respondError(c, logger, err, "Failed to delete company")
		return
	}

	logger.Info("Company deleted successfully")
	c.JSON(http.StatusOK, dto.StatusResponse{Status: dto.StatusDeleted})
}
