package models

import "time"

// CandidateProfile is the copy of the candidate's profile taken when the match
// was created. It is never refreshed.
type CandidateProfile struct {
	Name      string   `dynamodbav:"name" json:"name"`
	Email     string   `dynamodbav:"email" json:"email"`
	Bio       string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Skills    []string `dynamodbav:"skills,omitempty" json:"skills,omitempty"`
	ResumeKey string   `dynamodbav:"resumeKey,omitempty" json:"-"`
}

// Match is a positive interaction materialized for the job poster.
type Match struct {
	PK               string           `dynamodbav:"PK" json:"-"` // JOB#<jobId>
	SK               string           `dynamodbav:"SK" json:"-"` // CANDIDATE#<candidateId>
	MatchID          string           `dynamodbav:"matchId" json:"matchId"`
	JobID            string           `dynamodbav:"jobId" json:"jobId"`
	CandidateID      string           `dynamodbav:"candidateId" json:"candidateId"`
	CandidateProfile CandidateProfile `dynamodbav:"candidateProfile" json:"candidateProfile"`
	MatchedAt        time.Time        `dynamodbav:"matchedAt" json:"matchedAt"`

	// ResumeURL is a presigned read link, filled in per response.
	ResumeURL string `dynamodbav:"-" json:"resumeUrl,omitempty"`
}

// SnapshotProfile copies the fields of p that a poster gets to see.
func SnapshotProfile(p UserProfile) CandidateProfile {
	var skills []string
	if len(p.Skills) > 0 {
		skills = make([]string, len(p.Skills))
		copy(skills, p.Skills)
	}
	return CandidateProfile{
		Name:      p.Name,
		Email:     p.Email,
		Bio:       p.Bio,
		Skills:    skills,
		ResumeKey: p.ResumeKey,
	}
}
