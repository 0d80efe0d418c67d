package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasijobz/backend/internal/apperr"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
// Shared-cache DSN keyed by test name so gorm's pool sees one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.SavedJob{}, &models.Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Name:      name,
		Email:     name + "@example.com",
		Password:  "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// seedJob inserts a job directly so tests can control the timestamp.
func seedJob(t *testing.T, db *gorm.DB, posterID string, createdAt time.Time, fields map[string]string) *models.Job {
	t.Helper()
	job := &models.Job{
		ID:          uuid.NewString(),
		CreatedAt:   createdAt,
		PosterID:    posterID,
		Title:       "Software Engineer",
		Company:     "Acme",
		Location:    "Soweto",
		Province:    "Gauteng",
		Description: "Build things",
	}
	for field, value := range fields {
		switch field {
		case "title":
			job.Title = value
		case "company":
			job.Company = value
		case "province":
			job.Province = value
		case "jobType":
			job.JobType = value
		case "experience":
			job.Experience = value
		case "description":
			job.Description = value
		}
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestCreateJobRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")

	created, err := svc.Create(&dtos.JobCreationRequest{
		Title:       "Plumber",
		Company:     "PipeWorks",
		Location:    "Khayelitsha",
		Province:    "Western Cape",
		Description: "Fix pipes",
		PosterID:    poster.ID,
		Salary:      "R15000",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned id and timestamp, got %+v", created)
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Plumber" || got.Company != "PipeWorks" || got.Salary != "R15000" || got.PosterID != poster.ID {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.JobType != "" || got.Experience != "" {
		t.Fatalf("optional fields should default empty: %+v", got)
	}
	if len(got.SavedBy) != 0 {
		t.Fatalf("new job should have empty savedBy, got %v", got.SavedBy)
	}
}

func TestCreateJobRejectsUnknownPoster(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	_, err := svc.Create(&dtos.JobCreationRequest{
		Title:       "Plumber",
		Company:     "PipeWorks",
		Location:    "Khayelitsha",
		Province:    "Western Cape",
		Description: "Fix pipes",
		PosterID:    "nobody",
	})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListJobsProvinceExactMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	now := time.Now().UTC()

	seedJob(t, db, poster.ID, now, map[string]string{"province": "Gauteng"})
	seedJob(t, db, poster.ID, now, map[string]string{"province": "gauteng"})
	seedJob(t, db, poster.ID, now, map[string]string{"province": "Limpopo"})

	jobs, err := svc.List(dtos.JobListQuery{Province: "Gauteng"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Province != "Gauteng" {
		t.Fatalf("province match must be exact and case-sensitive, got %d jobs", len(jobs))
	}
}

func TestListJobsSearchAcrossFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	now := time.Now().UTC()

	byTitle := seedJob(t, db, poster.ID, now, map[string]string{"title": "Senior ENGINEER", "company": "Acme", "description": "stuff"})
	byCompany := seedJob(t, db, poster.ID, now, map[string]string{"title": "Cleaner", "company": "Engineering Co", "description": "stuff"})
	byDescription := seedJob(t, db, poster.ID, now, map[string]string{"title": "Cleaner", "company": "Acme", "description": "assists the engineer on site"})
	seedJob(t, db, poster.ID, now, map[string]string{"title": "Driver", "company": "Acme", "description": "deliveries"})

	jobs, err := svc.List(dtos.JobListQuery{Search: "engineer"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 matches across title/company/description, got %d", len(jobs))
	}
	want := map[string]bool{byTitle.ID: true, byCompany.ID: true, byDescription.ID: true}
	for _, job := range jobs {
		if !want[job.ID] {
			t.Fatalf("unexpected match %q", job.Title)
		}
	}
}

func TestListJobsCombinesCriteriaWithAnd(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	now := time.Now().UTC()

	match := seedJob(t, db, poster.ID, now, map[string]string{"title": "Engineer", "province": "Gauteng", "jobType": "full-time"})
	seedJob(t, db, poster.ID, now, map[string]string{"title": "Engineer", "province": "Limpopo", "jobType": "full-time"})
	seedJob(t, db, poster.ID, now, map[string]string{"title": "Engineer", "province": "Gauteng", "jobType": "part-time"})

	jobs, err := svc.List(dtos.JobListQuery{Search: "engineer", Province: "Gauteng", JobType: "full-time"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != match.ID {
		t.Fatalf("criteria must AND together, got %d jobs", len(jobs))
	}
}

func TestListJobsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	base := time.Now().UTC().Add(-time.Hour)

	old := seedJob(t, db, poster.ID, base, nil)
	mid := seedJob(t, db, poster.ID, base.Add(10*time.Minute), nil)
	newest := seedJob(t, db, poster.ID, base.Add(20*time.Minute), nil)

	jobs, err := svc.List(dtos.JobListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != newest.ID || jobs[1].ID != mid.ID || jobs[2].ID != old.ID {
		t.Fatalf("wrong order: %s %s %s", jobs[0].ID, jobs[1].ID, jobs[2].ID)
	}
}

func TestGetJobByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	_, err := svc.GetByID("missing")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestByPosterEmptyIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	jobs, err := svc.ByPoster("nobody")
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Fatalf("expected empty slice, got %v", jobs)
	}
}

func TestUpdateJobMergesOnlySuppliedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	job := seedJob(t, db, poster.ID, time.Now().UTC(), map[string]string{"title": "Engineer", "jobType": "full-time"})

	title := "Senior Engineer"
	updated, err := svc.Update(job.ID, &dtos.JobUpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Senior Engineer" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.JobType != "full-time" || updated.Company != job.Company {
		t.Fatalf("absent fields must stay untouched: %+v", updated)
	}
}

func TestUpdateJobRejectsEmptyRequiredField(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	job := seedJob(t, db, poster.ID, time.Now().UTC(), nil)

	empty := "  "
	_, err := svc.Update(job.ID, &dtos.JobUpdateRequest{Title: &empty})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateJobNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	title := "x"
	_, err := svc.Update("missing", &dtos.JobUpdateRequest{Title: &title})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteJobCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	poster := seedUser(t, db, "thabo")
	seeker := seedUser(t, db, "lerato")
	job := seedJob(t, db, poster.ID, time.Now().UTC(), nil)

	apps := NewApplicationService(db)
	if _, err := apps.Submit(&dtos.ApplicationRequest{
		JobID:          job.ID,
		ApplicantID:    seeker.ID,
		ApplicantName:  seeker.Name,
		ApplicantEmail: seeker.Email,
		Message:        "please hire me",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	saved := NewSavedJobsService(db)
	if _, err := saved.Save(job.ID, seeker.ID); err != nil {
		t.Fatalf("save: %v", err)
	}

	deleted, err := svc.Delete(job.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != job.ID {
		t.Fatalf("expected the deleted record back, got %+v", deleted)
	}

	if _, err := svc.GetByID(job.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("job should be gone, got %v", err)
	}
	var orphans int64
	db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&orphans)
	if orphans != 0 {
		t.Fatalf("applications not cascaded: %d left", orphans)
	}
	var bookmarks int64
	db.Model(&models.SavedJob{}).Where("job_id = ?", job.ID).Count(&bookmarks)
	if bookmarks != 0 {
		t.Fatalf("saved rows not cascaded: %d left", bookmarks)
	}
}

func TestDeleteJobNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	_, err := svc.Delete("missing")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
