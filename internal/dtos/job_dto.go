package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Province    string `json:"province" binding:"required"`
	Description string `json:"description" binding:"required"`
	PosterID    string `json:"posterId" binding:"required"`

	// Optional Fields
	JobType    string `json:"jobType"`
	Salary     string `json:"salary"`
	Experience string `json:"experience"`
}

// JobUpdateRequest carries a partial update. Nil pointer means the field
// was absent from the request and stays untouched.
type JobUpdateRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Province    *string `json:"province"`
	JobType     *string `json:"jobType"`
	Salary      *string `json:"salary"`
	Description *string `json:"description"`
	Experience  *string `json:"experience"`
}

// JobListQuery binds the listing filters from the query string.
// Every criterion is optional; empty means no restriction.
type JobListQuery struct {
	Search     string `form:"search"`
	Province   string `form:"province"`
	JobType    string `form:"jobType"`
	Experience string `form:"experience"`
}

// SaveJobRequest identifies the acting user for save/unsave toggles.
type SaveJobRequest struct {
	UserID string `json:"userId" binding:"required"`
}
