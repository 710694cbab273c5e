package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/biztime_api/internal/core/ports/services"
	"github.com/SscSPs/biztime_api/internal/dto"
	"github.com/SscSPs/biztime_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// industryHandler handles HTTP requests related to industries.
type industryHandler struct {
	industryService portssvc.IndustrySvcFacade
}

func newIndustryHandler(is portssvc.IndustrySvcFacade) *industryHandler {
	return &industryHandler{industryService: is}
}

// RegisterIndustryRoutes registers routes related to industries.
func RegisterIndustryRoutes(rg gin.IRouter, industryService portssvc.IndustrySvcFacade) {
	h := newIndustryHandler(industryService)

	industries := rg.Group("/industries")
	{
		industries.GET("", h.listIndustries)
		industries.POST("", h.createIndustry)
		industries.POST("/associate", h.associateIndustry)
	}
}

// listIndustries godoc
// @Summary List all industries
// @Description Each industry lists the codes of the companies in it
// @Tags industries
// @Produce  json
// @Success 200 {object} dto.ListIndustriesResponse
// @Failure 500 {object} map[string]string "Failed to list industries"
// @Router /industries [get]
func (h *industryHandler) listIndustries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	industries, err := h.industryService.ListIndustries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list industries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListIndustriesResponse(industries))
}

// createIndustry godoc
// @Summary Create a new industry
// @Tags industries
// @Accept  json
// @Produce  json
// @Param   industry body dto.CreateIndustryRequest true "Industry name"
// @Success 201 {object} dto.IndustryEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Industry already exists"
// @Failure 500 {object} map[string]string "Failed to create industry"
// @Router /industries [post]
func (h *industryHandler) createIndustry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	industry, err := h.industryService.CreateIndustry(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create industry")
		return
	}

	logger.Info("Industry created successfully", slog.String("industry_code", industry.Code))
	c.JSON(http.StatusCreated, dto.IndustryEnvelope{Industry: dto.ToIndustryResponse(industry)})
}

// associateIndustry godoc
// @Summary Associate a company with an industry
// @Tags industries
// @Accept  json
// @Produce  json
// @Param   association body dto.AssociateIndustryRequest true "Company and industry codes"
// @Success 201 {object} dto.AssociationEnvelope
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company or industry not found"
// @Failure 409 {object} map[string]string "Association already exists"
// @Failure 500 {object} map[string]string "Failed to associate industry"
// @Router /industries/associate [post]
func (h *industryHandler) associateIndustry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssociateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	assoc, err := h.industryService.AssociateIndustry(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to associate industry")
		return
	}

	c.JSON(http.StatusCreated, dto.AssociationEnvelope{Association: dto.ToAssociationResponse(assoc)})
}
