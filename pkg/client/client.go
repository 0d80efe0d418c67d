// Package client provides typed access to the KasiJobz API for mobile
// frontends and tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client wraps the KasiJobz HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// APIError represents an error response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api request failed (%d): %s", e.Status, e.Message)
}

// User mirrors the API's user payload. No password field ever comes back.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Job mirrors the API's job payload.
type Job struct {
	ID          string    `json:"id"`
	PosterID    string    `json:"posterId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Province    string    `json:"province"`
	JobType     string    `json:"jobType"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Experience  string    `json:"experience"`
	SavedBy     []string  `json:"savedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Application mirrors the API's application payload.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"jobId"`
	ApplicantID    string    `json:"applicantId"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DashboardStats is the poster dashboard summary.
type DashboardStats struct {
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
	RecentJobs        []Job `json:"recentJobs"`
}

// NewUserInput carries registration fields.
type NewUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewJobInput carries job posting fields.
type NewJobInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Province    string `json:"province"`
	JobType     string `json:"jobType,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description"`
	Experience  string `json:"experience,omitempty"`
	PosterID    string `json:"posterId"`
}

// JobUpdateInput carries a partial job update; nil fields stay untouched.
type JobUpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Company     *string `json:"company,omitempty"`
	Location    *string `json:"location,omitempty"`
	Province    *string `json:"province,omitempty"`
	JobType     *string `json:"jobType,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	Description *string `json:"description,omitempty"`
	Experience  *string `json:"experience,omitempty"`
}

// NewApplicationInput carries submission fields.
type NewApplicationInput struct {
	JobID          string `json:"jobId"`
	ApplicantID    string `json:"applicantId"`
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	Message        string `json:"message"`
}

// JobSearch holds the optional listing filters.
type JobSearch struct {
	Search     string
	Province   string
	JobType    string
	Experience string
}

func (f JobSearch) encode() string {
	params := url.Values{}
	if s := strings.TrimSpace(f.Search); s != "" {
		params.Set("search", s)
	}
	if f.Province != "" {
		params.Set("province", f.Province)
	}
	if f.JobType != "" {
		params.Set("jobType", f.JobType)
	}
	if f.Experience != "" {
		params.Set("experience", f.Experience)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body any, v any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := c.baseURL + path
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return APIError{Status: resp.StatusCode, Message: extractError(resp.Body)}
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func extractError(body io.Reader) string {
	if body == nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" && payload.Error != payload.Message {
		return payload.Message + ": " + payload.Error
	}
	return payload.Message
}

// CreateUser registers a user.
func (c *Client) CreateUser(ctx context.Context, input NewUserInput) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", input, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Users lists every registered user.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []User{}
	}
	return out, nil
}

// CreateJob posts a new job.
func (c *Client) CreateJob(ctx context.Context, input NewJobInput) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/jobs", input, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// Jobs lists jobs matching the optional filters, newest first. The
// result is never nil so callers can range without checking.
func (c *Client) Jobs(ctx context.Context, search JobSearch) ([]Job, error) {
	var out []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs"+search.encode(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Job{}
	}
	return out, nil
}

// Job fetches a single job by id.
func (c *Client) Job(ctx context.Context, id string) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJob applies a partial update to a job.
func (c *Client) UpdateJob(ctx context.Context, id string, input JobUpdateInput) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/jobs/"+url.PathEscape(id), input, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// DeleteJob removes a job and returns the deleted record.
func (c *Client) DeleteJob(ctx context.Context, id string) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/jobs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// JobsByPoster lists a poster's jobs. An unknown poster is an empty
// slice, matching the API.
func (c *Client) JobsByPoster(ctx context.Context, posterID string) ([]Job, error) {
	var out []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/poster/"+url.PathEscape(posterID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Job{}
	}
	return out, nil
}

// Stats fetches a poster's dashboard summary. When the stats endpoint
// fails, it falls back to counting the poster's jobs directly and
// reports zero applications, the way the mobile dashboard degrades.
func (c *Client) Stats(ctx context.Context, posterID string) (*DashboardStats, error) {
	var out DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/jobs/dashboard/stats/"+url.PathEscape(posterID), nil, &out)
	if err == nil {
		if out.RecentJobs == nil {
			out.RecentJobs = []Job{}
		}
		return &out, nil
	}

	jobs, fallbackErr := c.JobsByPoster(ctx, posterID)
	if fallbackErr != nil {
		return nil, err
	}
	stats := &DashboardStats{
		TotalJobs:  int64(len(jobs)),
		ActiveJobs: int64(len(jobs)),
		RecentJobs: jobs,
	}
	if len(stats.RecentJobs) > 5 {
		stats.RecentJobs = stats.RecentJobs[:5]
	}
	return stats, nil
}

// SaveJob bookmarks a job for the acting user.
func (c *Client) SaveJob(ctx context.Context, jobID, userID string) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	body := map[string]string{"userId": userID}
	if err := c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/save", body, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// UnsaveJob removes the acting user's bookmark.
func (c *Client) UnsaveJob(ctx context.Context, jobID, userID string) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	body := map[string]string{"userId": userID}
	if err := c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/unsave", body, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// SubmitApplication applies to a job.
func (c *Client) SubmitApplication(ctx context.Context, input NewApplicationInput) (*Application, error) {
	var out struct {
		Application Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/applications", input, &out); err != nil {
		return nil, err
	}
	return &out.Application, nil
}

// Applications lists a job's applications.
func (c *Client) Applications(ctx context.Context, jobID string) ([]Application, error) {
	var out []Application
	if err := c.do(ctx, http.MethodGet, "/api/applications/"+url.PathEscape(jobID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Application{}
	}
	return out, nil
}
