package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/services"
)

// Dependency injection: each handler talks to its services only
type JobHandler struct {
	JobService       *services.JobService
	DashboardService *services.DashboardService
	SavedJobsService *services.SavedJobsService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, dashboard *services.DashboardService, saved *services.SavedJobsService) *JobHandler {
	return &JobHandler{
		JobService:       jobs,
		DashboardService: dashboard,
		SavedJobsService: saved,
	}
}

// CreateJob is the POST /jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All required fields must be provided", "error": err.Error()})
		return
	}
	job, err := h.JobService.Create(&req)
	if err != nil {
		respondError(c, "Error trying to save job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job successfully saved", "job": job})
}

// GetJobs is the GET /jobs endpoint. Filters come from the query string
// and every one of them is optional.
func (h *JobHandler) GetJobs(c *gin.Context) {
	var query dtos.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters", "error": err.Error()})
		return
	}
	jobs, err := h.JobService.List(query)
	if err != nil {
		respondError(c, "Error trying to retrieve jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/:id endpoint
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, "Error trying to retrieve job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob is the PUT /jobs/:id endpoint, merging only supplied fields
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format", "error": err.Error()})
		return
	}
	job, err := h.JobService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, "Error trying to update job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job successfully updated", "job": job})
}

// DeleteJob is the DELETE /jobs/:id endpoint; responds with the deleted record
func (h *JobHandler) DeleteJob(c *gin.Context) {
	job, err := h.JobService.Delete(c.Param("id"))
	if err != nil {
		respondError(c, "Error trying to delete job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job successfully deleted", "job": job})
}

// GetJobsByPoster is the GET /jobs/poster/:posterId endpoint.
// A poster with no jobs gets an empty array, not a 404.
func (h *JobHandler) GetJobsByPoster(c *gin.Context) {
	jobs, err := h.JobService.ByPoster(c.Param("posterId"))
	if err != nil {
		respondError(c, "Error trying to retrieve jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetDashboardStats is the GET /jobs/dashboard/stats/:posterId endpoint
func (h *JobHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.DashboardService.Stats(c.Param("posterId"))
	if err != nil {
		respondError(c, "Error trying to retrieve dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SaveJob is the POST /jobs/:id/save endpoint; the body carries the acting user
func (h *JobHandler) SaveJob(c *gin.Context) {
	var req dtos.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User id is required", "error": err.Error()})
		return
	}
	job, err := h.SavedJobsService.Save(c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, "Error saving job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job saved", "job": job})
}

// UnsaveJob is the POST /jobs/:id/unsave endpoint; removing twice is fine
func (h *JobHandler) UnsaveJob(c *gin.Context) {
	var req dtos.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User id is required", "error": err.Error()})
		return
	}
	job, err := h.SavedJobsService.Unsave(c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, "Error unsaving job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job unsaved", "job": job})
}
