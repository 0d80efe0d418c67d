package dtos

type ApplicationRequest struct {
	JobID          string `json:"jobId" binding:"required"`
	ApplicantID    string `json:"applicantId" binding:"required"`
	ApplicantName  string `json:"applicantName" binding:"required"`
	ApplicantEmail string `json:"applicantEmail" binding:"required"`
	Message        string `json:"message" binding:"required"`
}
