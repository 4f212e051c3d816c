package models

// Table names, before the configured prefix is applied.
const (
	InteractionsTable = "Interactions"
	MatchesTable      = "Matches"
	JobsTable         = "Jobs"
	UserProfilesTable = "UserProfiles"
)

// CandidateIDIndex is the GSI on Matches used for the candidate's own match history.
const CandidateIDIndex = "candidateId-index"

// Feed page sizes.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)
