package models

import "time"

// Job is a posting in the job catalog.
type Job struct {
	ID          string    `dynamodbav:"jobId" json:"id"`
	Title       string    `dynamodbav:"title" json:"title"`
	Company     string    `dynamodbav:"company" json:"company"`
	Location    string    `dynamodbav:"location" json:"location"`
	Salary      string    `dynamodbav:"salary,omitempty" json:"salary,omitempty"`
	Description string    `dynamodbav:"description,omitempty" json:"description,omitempty"`
	PosterID    string    `dynamodbav:"posterId" json:"posterId"`
	CreatedAt   time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// JobFilter narrows a catalog listing. An empty ExcludePosterID disables the
// poster filter.
type JobFilter struct {
	ExcludePosterID string
}
