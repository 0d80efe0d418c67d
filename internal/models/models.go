package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Bcrypt hash. Never serialized back to clients.
	Password string `gorm:"not null" json:"-"`
}

type Job struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// References the posting user. Checked at creation time, no DB-level FK.
	PosterID string `gorm:"index;not null" json:"posterId"`

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `gorm:"not null" json:"location"`
	Province    string `gorm:"index;not null" json:"province"`
	JobType     string `gorm:"default:''" json:"jobType"`
	Salary      string `json:"salary"`
	Description string `gorm:"type:text;not null" json:"description"`
	Experience  string `gorm:"default:''" json:"experience"`

	// Association: GORM needs Preload("Saves") to fill this
	Saves []SavedJob `gorm:"foreignKey:JobID" json:"-"`
	// Flattened user-id set clients actually see
	SavedBy []string `gorm:"-" json:"savedBy"`
}

// AfterFind flattens the saved_jobs rows into the savedBy id list.
// Empty set marshals as [] rather than null.
func (j *Job) AfterFind(tx *gorm.DB) error {
	j.SavedBy = make([]string, 0, len(j.Saves))
	for _, s := range j.Saves {
		j.SavedBy = append(j.SavedBy, s.UserID)
	}
	return nil
}

// SavedJob is one user's bookmark of one job. The composite unique index
// makes save/unsave single atomic statements instead of read-then-write.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID  string `gorm:"index;uniqueIndex:idx_job_user_save;not null" json:"job_id"`
	UserID string `gorm:"uniqueIndex:idx_job_user_save;not null" json:"user_id"`
}

type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	JobID       string `gorm:"index;uniqueIndex:idx_job_applicant_email;not null" json:"jobId"`
	ApplicantID string `gorm:"index;not null" json:"applicantId"`

	ApplicantName string `gorm:"not null" json:"applicantName"`
	// Stored trimmed and lowercased so the duplicate check is exact
	ApplicantEmail string `gorm:"uniqueIndex:idx_job_applicant_email;not null" json:"applicantEmail"`
	Message        string `gorm:"type:text;not null" json:"message"`
}
