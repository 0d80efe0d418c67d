package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasijobz/backend/internal/apperr"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// findJob loads one job with its saved-by set. Shared by the other
// services in this package that need to resolve a job reference.
func findJob(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Saves").First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperr.Storage("Error trying to retrieve job", err)
	}
	return &job, nil
}

// List returns jobs matching the filter, newest first.
// search matches title OR company OR description, case-insensitive
// substring; province/jobType/experience are exact matches; all
// provided criteria combine with AND. Absent criteria restrict nothing.
func (s *JobService) List(query dtos.JobListQuery) ([]models.Job, error) {
	q := s.DB.Preload("Saves")

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern)
	}
	if query.Province != "" {
		q = q.Where("province = ?", query.Province)
	}
	if query.JobType != "" {
		q = q.Where("job_type = ?", query.JobType)
	}
	if query.Experience != "" {
		q = q.Where("experience = ?", query.Experience)
	}

	var jobs []models.Job
	// id as tiebreak so equal timestamps still order deterministically
	if err := q.Order("created_at DESC, id").Find(&jobs).Error; err != nil {
		return nil, apperr.Storage("Error trying to retrieve jobs", err)
	}
	return jobs, nil
}

func (s *JobService) GetByID(id string) (*models.Job, error) {
	return findJob(s.DB, id)
}

// ByPoster lists a poster's jobs newest first. A poster with no jobs
// gets an empty slice, never a not-found.
func (s *JobService) ByPoster(posterID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.DB.Preload("Saves").
		Where("poster_id = ?", posterID).
		Order("created_at DESC, id").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Storage("Error trying to retrieve jobs", err)
	}
	return jobs, nil
}

func (s *JobService) Create(req *dtos.JobCreationRequest) (*models.Job, error) {
	// The poster reference is validated here, symmetric with the
	// job-existence check on application submission
	var posterCount int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", req.PosterID).Count(&posterCount).Error; err != nil {
		return nil, apperr.Storage("Error trying to save job", err)
	}
	if posterCount == 0 {
		return nil, apperr.Validation("Poster does not exist")
	}

	job := &models.Job{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		PosterID:    req.PosterID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Province:    req.Province,
		JobType:     req.JobType,
		Salary:      req.Salary,
		Description: req.Description,
		Experience:  req.Experience,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperr.Storage("Error trying to save job", err)
	}
	job.SavedBy = []string{}
	return job, nil
}

// requiredJobFields are the columns a partial update may not blank out.
var requiredJobFields = map[string]string{
	"title":       "Title",
	"company":     "Company",
	"location":    "Location",
	"province":    "Province",
	"description": "Description",
}

// Update merges only the supplied fields into the job. Fields absent
// from the request stay untouched; supplying an empty value for a
// required field is rejected.
func (s *JobService) Update(id string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := findJob(s.DB, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	set("title", req.Title)
	set("company", req.Company)
	set("location", req.Location)
	set("province", req.Province)
	set("job_type", req.JobType)
	set("salary", req.Salary)
	set("description", req.Description)
	set("experience", req.Experience)

	for column, label := range requiredJobFields {
		if value, ok := updates[column]; ok && strings.TrimSpace(value.(string)) == "" {
			return nil, apperr.Validation(label + " cannot be empty")
		}
	}

	if len(updates) == 0 {
		return job, nil
	}
	if err := s.DB.Model(job).Updates(updates).Error; err != nil {
		return nil, apperr.Storage("Error trying to update job", err)
	}
	return findJob(s.DB, id)
}

// Delete removes the job together with its applications and saved-job
// rows in one transaction, so nothing is left orphaned. Returns the
// record as it was before deletion.
func (s *JobService) Delete(id string) (*models.Job, error) {
	job, err := findJob(s.DB, id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, apperr.Storage("Error trying to delete job", err)
	}
	return job, nil
}
