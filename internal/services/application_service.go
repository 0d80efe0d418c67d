package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasijobz/backend/internal/apperr"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Submit validates and persists a job application. Checks run in order
// and stop at the first failure: required fields, job exists, applicant
// is not the poster, no prior application with the same email.
func (s *ApplicationService) Submit(req *dtos.ApplicationRequest) (*models.Application, error) {
	if strings.TrimSpace(req.JobID) == "" ||
		strings.TrimSpace(req.ApplicantID) == "" ||
		strings.TrimSpace(req.ApplicantName) == "" ||
		strings.TrimSpace(req.ApplicantEmail) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return nil, apperr.Validation("All fields are required")
	}

	job, err := findJob(s.DB, req.JobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID == req.ApplicantID {
		return nil, apperr.Conflict("You cannot apply to your own job")
	}

	email := strings.ToLower(strings.TrimSpace(req.ApplicantEmail))
	var existing int64
	err = s.DB.Model(&models.Application{}).
		Where("job_id = ? AND applicant_email = ?", req.JobID, email).
		Count(&existing).Error
	if err != nil {
		return nil, apperr.Storage("Failed to submit application", err)
	}
	if existing > 0 {
		return nil, apperr.Conflict("You have already applied to this job")
	}

	application := &models.Application{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		JobID:          req.JobID,
		ApplicantID:    req.ApplicantID,
		ApplicantName:  strings.TrimSpace(req.ApplicantName),
		ApplicantEmail: email,
		Message:        req.Message,
	}
	if err := s.DB.Create(application).Error; err != nil {
		return nil, apperr.Storage("Failed to submit application", err)
	}
	return application, nil
}

// ListForJob returns a job's applications in submission order. A job
// with no applications yields an empty slice; only a missing job is a
// not-found.
func (s *ApplicationService) ListForJob(jobID string) ([]models.Application, error) {
	if _, err := findJob(s.DB, jobID); err != nil {
		return nil, err
	}

	applications := []models.Application{}
	err := s.DB.Where("job_id = ?", jobID).
		Order("created_at, id").
		Find(&applications).Error
	if err != nil {
		return nil, apperr.Storage("Error trying to retrieve applications", err)
	}
	return applications, nil
}
