package http

import (
	"net/http"

	"jobdesk/internal/domain"

	"github.com/gin-gonic/gin"
)

type companyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url"`
}

type companyUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" binding:"omitempty"`
}

type companyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type companyListResponse struct {
	Companies []companyResponse `json:"companies"`
	pageMeta
}

func (s *Server) handleListCompanies(c *gin.Context) {
	page, perPage := parsePageQuery(c)
	companies, total, err := s.companies.List(c.Request.Context(), (page-1)*perPage, perPage)
	if err != nil {
		writeError(c, err)
		return
	}
	items := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		items = append(items, toCompanyResponse(company))
	}
	c.JSON(http.StatusOK, companyListResponse{
		Companies: items,
		pageMeta:  buildPageMeta(page, perPage, total),
	})
}

func (s *Server) handleCreateCompany(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	company, err := s.companies.Create(c.Request.Context(), user, domain.Company{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCompanyResponse(company))
}

func (s *Server) handleGetCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	company, err := s.companies.Get(c.Request.Context(), companyID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

func (s *Server) handleUpdateCompany(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	var req companyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if req.Name != nil && *req.Name == "" {
		writeFieldError(c, "name", "must not be empty")
		return
	}
	company, err := s.companies.Update(c.Request.Context(), user, companyID, domain.CompanyUpdate{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

func (s *Server) handleDeleteCompany(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	if err := s.companies.Delete(c.Request.Context(), user, companyID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "company deleted"})
}

func toCompanyResponse(company domain.Company) companyResponse {
	return companyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		LogoURL:     company.LogoURL,
	}
}
