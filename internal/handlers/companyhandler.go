package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// CompanyService is what the handler needs from the entity access
// layer; the concrete implementation lives in internal/services.
type CompanyService interface {
	Create(ctx context.Context, req dtos.CompanyCreationRequest) (*models.Company, error)
	List(ctx context.Context, req dtos.CompanySearchRequest) ([]models.Company, error)
	Get(ctx context.Context, handle string) (*models.Company, error)
	Update(ctx context.Context, handle string, req dtos.CompanyUpdateRequest) (*models.Company, error)
	Delete(ctx context.Context, handle string) error
}

type CompanyHandler struct {
	Service CompanyService
}

func NewCompanyHandler(s CompanyService) *CompanyHandler {
	return &CompanyHandler{Service: s}
}

// CreateCompany is the POST /companies endpoint (admin only).
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// ListCompanies is the GET /companies endpoint. Filters come from the
// query string: name, minEmployees, maxEmployees.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var req dtos.CompanySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query string: " + err.Error()})
		return
	}
	companies, err := h.Service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// GetCompany is the GET /companies/:handle endpoint.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.Service.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// UpdateCompany is the PATCH /companies/:handle endpoint (admin only).
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.Service.Update(c.Request.Context(), c.Param("handle"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// DeleteCompany is the DELETE /companies/:handle endpoint (admin only).
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.Service.Delete(c.Request.Context(), handle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
