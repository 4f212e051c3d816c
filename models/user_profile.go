package models

import "time"

// UserProfile holds the candidate details that get copied into a match.
type UserProfile struct {
	UserID    string    `dynamodbav:"userId" json:"userId"`
	Name      string    `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Email     string    `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Bio       string    `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Skills    []string  `dynamodbav:"skills,omitempty" json:"skills,omitempty"`
	ResumeKey string    `dynamodbav:"resumeKey,omitempty" json:"resumeKey,omitempty"`
	UpdatedAt time.Time `dynamodbav:"updatedAt" json:"updatedAt"`
}
