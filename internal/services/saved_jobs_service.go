package services

import (
	"strings"
	"time"

	"github.com/kasijobz/backend/internal/apperr"
	"github.com/kasijobz/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedJobsService struct {
	DB *gorm.DB
}

func NewSavedJobsService(db *gorm.DB) *SavedJobsService {
	return &SavedJobsService{DB: db}
}

// Save bookmarks the job for the user. The insert carries ON CONFLICT
// DO NOTHING against the (job, user) unique index, so concurrent saves
// can't lose each other: zero rows affected means it was already saved.
func (s *SavedJobsService) Save(jobID, userID string) (*models.Job, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("User id is required")
	}
	if _, err := findJob(s.DB, jobID); err != nil {
		return nil, err
	}

	result := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.SavedJob{
		CreatedAt: time.Now().UTC(),
		JobID:     jobID,
		UserID:    userID,
	})
	if result.Error != nil {
		return nil, apperr.Storage("Error saving job", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.Conflict("Job already saved")
	}
	return findJob(s.DB, jobID)
}

// Unsave removes the bookmark. Removing one that isn't there is fine.
func (s *SavedJobsService) Unsave(jobID, userID string) (*models.Job, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("User id is required")
	}
	if _, err := findJob(s.DB, jobID); err != nil {
		return nil, err
	}

	err := s.DB.Where("job_id = ? AND user_id = ?", jobID, userID).
		Delete(&models.SavedJob{}).Error
	if err != nil {
		return nil, apperr.Storage("Error unsaving job", err)
	}
	return findJob(s.DB, jobID)
}
