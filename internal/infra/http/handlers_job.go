package http

import (
	"net/http"
	"time"

	"jobdesk/internal/domain"

	"github.com/gin-gonic/gin"
)

type jobRequest struct {
	Title            string         `json:"title" binding:"required"`
	SalaryMin        *int           `json:"salary_min"`
	SalaryMax        *int           `json:"salary_max"`
	ContractTypes    []string       `json:"contract_type" binding:"required,min=1"`
	WorkModes        []string       `json:"work_mode" binding:"required,min=1"`
	ExperienceLevels []string       `json:"experience_level"`
	JobTypes         []string       `json:"job_type" binding:"required,min=1"`
	Description      string         `json:"description" binding:"required"`
	Requirements     map[string]any `json:"requirements"`
	Locations        []string       `json:"location"`
	StartDate        *time.Time     `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
	CompanyID        int64          `json:"company_id" binding:"required"`
}

type jobUpdateRequest struct {
	Title            *string        `json:"title"`
	SalaryMin        *int           `json:"salary_min"`
	SalaryMax        *int           `json:"salary_max"`
	ContractTypes    []string       `json:"contract_type"`
	WorkModes        []string       `json:"work_mode"`
	ExperienceLevels []string       `json:"experience_level"`
	JobTypes         []string       `json:"job_type"`
	Description      *string        `json:"description"`
	Requirements     map[string]any `json:"requirements"`
	Locations        []string       `json:"location"`
	StartDate        *time.Time     `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
}

type jobCompanyRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type jobResponse struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title"`
	SalaryMin        *int           `json:"salary_min,omitempty"`
	SalaryMax        *int           `json:"salary_max,omitempty"`
	ContractTypes    []string       `json:"contract_type"`
	WorkModes        []string       `json:"work_mode"`
	ExperienceLevels []string       `json:"experience_level,omitempty"`
	JobTypes         []string       `json:"job_type"`
	Description      string         `json:"description"`
	Requirements     map[string]any `json:"requirements,omitempty"`
	Locations        []string       `json:"location,omitempty"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	CompanyID        int64          `json:"company_id"`
	Company          jobCompanyRef  `json:"company"`
}

type jobListResponse struct {
	Jobs []jobResponse `json:"jobs"`
	pageMeta
}

type jobEnums struct {
	contracts []domain.ContractType
	modes     []domain.WorkMode
	levels    []domain.ExperienceLevel
	types     []domain.JobType
}

// parseJobEnums validates the closed vocabularies and reports the
// offending field on failure.
func parseJobEnums(c *gin.Context, contracts, modes, levels, types []string) (jobEnums, bool) {
	var parsed jobEnums
	var err error
	if parsed.contracts, err = domain.ParseContractTypes(contracts); err != nil {
		writeFieldError(c, "contract_type", err.Error())
		return jobEnums{}, false
	}
	if parsed.modes, err = domain.ParseWorkModes(modes); err != nil {
		writeFieldError(c, "work_mode", err.Error())
		return jobEnums{}, false
	}
	if parsed.levels, err = domain.ParseExperienceLevels(levels); err != nil {
		writeFieldError(c, "experience_level", err.Error())
		return jobEnums{}, false
	}
	if parsed.types, err = domain.ParseJobTypes(types); err != nil {
		writeFieldError(c, "job_type", err.Error())
		return jobEnums{}, false
	}
	return parsed, true
}

func (s *Server) handleListJobs(c *gin.Context) {
	page, perPage := parsePageQuery(c)
	jobs, total, err := s.jobs.List(c.Request.Context(), (page-1)*perPage, perPage)
	if err != nil {
		writeError(c, err)
		return
	}
	items := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, toJobResponse(job))
	}
	c.JSON(http.StatusOK, jobListResponse{
		Jobs:     items,
		pageMeta: buildPageMeta(page, perPage, total),
	})
}

func (s *Server) handleCreateJob(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	enums, ok := parseJobEnums(c, req.ContractTypes, req.WorkModes, req.ExperienceLevels, req.JobTypes)
	if !ok {
		return
	}
	job := domain.Job{
		Title:            req.Title,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		ContractTypes:    enums.contracts,
		WorkModes:        enums.modes,
		ExperienceLevels: enums.levels,
		JobTypes:         enums.types,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Locations:        req.Locations,
		EndDate:          req.EndDate,
		CompanyID:        req.CompanyID,
	}
	if req.StartDate != nil {
		job.StartDate = *req.StartDate
	}
	created, err := s.jobs.Create(c.Request.Context(), user, job)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toJobResponse(created))
}

func (s *Server) handleGetJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "job_id")
	if !ok {
		return
	}
	job, err := s.jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

// handlePublicGetJob serves the unauthenticated job detail view.
func (s *Server) handlePublicGetJob(c *gin.Context) {
	s.handleGetJob(c)
}

func (s *Server) handleUpdateJob(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "job_id")
	if !ok {
		return
	}
	var req jobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	enums, ok := parseJobEnums(c, req.ContractTypes, req.WorkModes, req.ExperienceLevels, req.JobTypes)
	if !ok {
		return
	}
	update := domain.JobUpdate{
		Title:        req.Title,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Description:  req.Description,
		Requirements: req.Requirements,
		Locations:    req.Locations,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if req.ContractTypes != nil {
		update.ContractTypes = enums.contracts
	}
	if req.WorkModes != nil {
		update.WorkModes = enums.modes
	}
	if req.ExperienceLevels != nil {
		update.ExperienceLevels = enums.levels
	}
	if req.JobTypes != nil {
		update.JobTypes = enums.types
	}
	job, err := s.jobs.Update(c.Request.Context(), user, jobID, update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

func (s *Server) handleDeleteJob(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "job_id")
	if !ok {
		return
	}
	if err := s.jobs.Delete(c.Request.Context(), user, jobID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}

func toJobResponse(job domain.Job) jobResponse {
	return jobResponse{
		ID:               job.ID,
		Title:            job.Title,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		ContractTypes:    contractTags(job.ContractTypes),
		WorkModes:        workModeTags(job.WorkModes),
		ExperienceLevels: experienceTags(job.ExperienceLevels),
		JobTypes:         jobTypeTags(job.JobTypes),
		Description:      job.Description,
		Requirements:     job.Requirements,
		Locations:        job.Locations,
		StartDate:        job.StartDate,
		EndDate:          job.EndDate,
		CompanyID:        job.CompanyID,
		Company:          jobCompanyRef{ID: job.CompanyID, Name: job.CompanyName},
	}
}

func contractTags(values []domain.ContractType) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}

func workModeTags(values []domain.WorkMode) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}

func experienceTags(values []domain.ExperienceLevel) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}

func jobTypeTags(values []domain.JobType) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}
