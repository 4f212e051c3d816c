package utils

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

const (
	userPrefix      = "USER#"
	jobPrefix       = "JOB#"
	candidatePrefix = "CANDIDATE#"
)

// UserKey builds the partition key for a user's interactions.
func UserKey(userID string) string { return userPrefix + userID }

// JobKey builds the sort key of an interaction and the partition key of a
// job's matches.
func JobKey(jobID string) string { return jobPrefix + jobID }

// CandidateKey builds the sort key of a match.
func CandidateKey(candidateID string) string { return candidatePrefix + candidateID }

// StringValue wraps s as a DynamoDB string attribute.
func StringValue(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

// CompositeKey builds a PK/SK key map.
func CompositeKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": StringValue(pk),
		"SK": StringValue(sk),
	}
}
