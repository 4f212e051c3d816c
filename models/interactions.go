package models

import "time"

// Interaction is a user's recorded decision on one job. The store holds at
// most one per (UserID, JobID).
type Interaction struct {
	PK        string     `dynamodbav:"PK" json:"-"` // USER#<userId>
	SK        string     `dynamodbav:"SK" json:"-"` // JOB#<jobId>
	UserID    string     `dynamodbav:"userId" json:"userId"`
	JobID     string     `dynamodbav:"jobId" json:"jobId"`
	Decision  Decision   `dynamodbav:"decision" json:"decision"`
	Label     string     `dynamodbav:"label,omitempty" json:"label,omitempty"` // wire label as sent
	CreatedAt time.Time  `dynamodbav:"recordedAt" json:"recordedAt"`
	UpdatedAt *time.Time `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"` // set only by amendment
}

// AcceptedJob is the element of the "accepted" listing.
type AcceptedJob struct {
	JobID string `json:"jobId"`
}
