package dto

import "time"

// CreateSubjectRequest is the body of POST /subjects
// @Description Request body for creating a subject
type CreateSubjectRequest struct {
	ID   string `json:"id" example:"bio-101"`
	Name string `json:"name" example:"Introductory Biology"`
}

// SubjectResponse represents a subject in the API response
// @Description Subject with the names of its ingested files
type SubjectResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	Files       []string  `json:"files"`
}

type SubjectListResponse struct {
	Subjects []SubjectResponse `json:"subjects"`
}

// IngestionResponse summarises a file upload.
type IngestionResponse struct {
	SubjectID string   `json:"subject_id"`
	Ingested  []string `json:"ingested"`
	Skipped   []string `json:"skipped"`
	Chunks    int      `json:"chunks"`
}
