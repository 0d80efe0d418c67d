package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applications}
}

// CreateApplication is the POST /applications endpoint
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required", "error": err.Error()})
		return
	}
	application, err := h.ApplicationService.Submit(&req)
	if err != nil {
		respondError(c, "Failed to submit application", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application successfully submitted", "application": application})
}

// GetApplications is the GET /applications/:jobId endpoint. The job must
// exist; zero applications is an empty array.
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	applications, err := h.ApplicationService.ListForJob(c.Param("jobId"))
	if err != nil {
		respondError(c, "Error trying to retrieve applications", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}
