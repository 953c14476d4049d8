package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/service"
	"content-site-api/internal/validator"
)

// JobHandler handles job posting requests.
type JobHandler struct {
	jobService service.JobServiceInterface
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService service.JobServiceInterface) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type salaryRequest struct {
	Min      FlexNumber `json:"min"`
	Max      FlexNumber `json:"max"`
	Currency string     `json:"currency"`
}

type jobRequest struct {
	Title               string        `json:"title"`
	Company             string        `json:"company"`
	Location            string        `json:"location"`
	Type                string        `json:"type"`
	Description         string        `json:"description"`
	Requirements        StringList    `json:"requirements"`
	Benefits            StringList    `json:"benefits"`
	Salary              salaryRequest `json:"salary"`
	ApplicationDeadline string        `json:"applicationDeadline"`
	ApplyURL            string        `json:"applyUrl"`
	IsActive            *FlexBool     `json:"isActive"`
}

// bindJobPosting reads a posting from JSON or form fields. A missing
// isActive flag means active.
func bindJobPosting(c *gin.Context) (*domain.JobPosting, error) {
	var req jobRequest
	if isJSONRequest(c) {
		if err := bindJSON(c, &req); err != nil {
			return nil, err
		}
	} else {
		var err error
		if req, err = jobRequestFromForm(c); err != nil {
			return nil, err
		}
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = bool(*req.IsActive)
	}

	return &domain.JobPosting{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Salary: domain.Salary{
			Min:      req.Salary.Min.Value,
			Max:      req.Salary.Max.Value,
			Currency: req.Salary.Currency,
		},
		ApplicationDeadline: deadline,
		ApplyURL:            req.ApplyURL,
		IsActive:            active,
	}, nil
}

func jobRequestFromForm(c *gin.Context) (jobRequest, error) {
	req := jobRequest{
		Title:               c.PostForm("title"),
		Company:             c.PostForm("company"),
		Location:            c.PostForm("location"),
		Type:                c.PostForm("type"),
		Description:         c.PostForm("description"),
		Requirements:        formList(c, "requirements"),
		Benefits:            formList(c, "benefits"),
		ApplicationDeadline: c.PostForm("applicationDeadline"),
		ApplyURL:            c.PostForm("applyUrl"),
	}

	if active, ok := formBool(c, "isActive"); ok {
		flag := FlexBool(active)
		req.IsActive = &flag
	}

	// salary[min], salary[max], salary[currency]
	salary := c.PostFormMap("salary")
	salaryMin, err := parseOptionalFloat(salary["min"])
	if err != nil {
		return req, validator.NewFieldError("salary", "invalid_salary_min", err.Error())
	}
	salaryMax, err := parseOptionalFloat(salary["max"])
	if err != nil {
		return req, validator.NewFieldError("salary", "invalid_salary_max", err.Error())
	}
	req.Salary = salaryRequest{
		Min:      FlexNumber{Value: salaryMin},
		Max:      FlexNumber{Value: salaryMax},
		Currency: salary["currency"],
	}
	return req, nil
}

// List handles GET /api/jobs - active postings only.
func (h *JobHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListAdmin handles GET /api/admin/jobs - every posting.
func (h *JobHandler) ListAdmin(c *gin.Context) {
	h.list(c, false)
}

func (h *JobHandler) list(c *gin.Context, activeOnly bool) {
	jobs, err := h.jobService.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "Job posting")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Job posting")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	job, err := bindJobPosting(c)
	if err != nil {
		respondError(c, err, "Job posting")
		return
	}
	if err := h.jobService.Create(c.Request.Context(), job); err != nil {
		respondError(c, err, "Job posting")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update handles PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	job, err := bindJobPosting(c)
	if err != nil {
		respondError(c, err, "Job posting")
		return
	}
	job.ID = c.Param("id")

	if err := h.jobService.Update(c.Request.Context(), job); err != nil {
		respondError(c, err, "Job posting")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Job posting")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Job posting deleted successfully"})
}
