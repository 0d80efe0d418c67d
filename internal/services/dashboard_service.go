package services

import (
	"github.com/kasijobz/backend/internal/apperr"
	"github.com/kasijobz/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// DashboardStats is the poster dashboard summary. activeJobs equals
// totalJobs: the data model has no distinct active state.
type DashboardStats struct {
	TotalJobs         int64        `json:"totalJobs"`
	ActiveJobs        int64        `json:"activeJobs"`
	TotalApplications int64        `json:"totalApplications"`
	RecentJobs        []models.Job `json:"recentJobs"`
}

// Stats aggregates a poster's jobs and the applications across them.
// A poster with no jobs gets all-zero stats, not an error.
func (s *DashboardService) Stats(posterID string) (*DashboardStats, error) {
	jobs := []models.Job{}
	err := s.DB.Preload("Saves").
		Where("poster_id = ?", posterID).
		Order("created_at DESC, id").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Storage("Error trying to retrieve dashboard stats", err)
	}

	stats := &DashboardStats{
		TotalJobs:  int64(len(jobs)),
		ActiveJobs: int64(len(jobs)),
		RecentJobs: jobs,
	}
	if len(stats.RecentJobs) > 5 {
		stats.RecentJobs = stats.RecentJobs[:5]
	}

	if len(jobs) > 0 {
		ids := make([]string, 0, len(jobs))
		for _, job := range jobs {
			ids = append(ids, job.ID)
		}
		// one aggregate count across the whole id set, not per job
		err = s.DB.Model(&models.Application{}).
			Where("job_id IN ?", ids).
			Count(&stats.TotalApplications).Error
		if err != nil {
			return nil, apperr.Storage("Error trying to retrieve dashboard stats", err)
		}
	}
	return stats, nil
}
