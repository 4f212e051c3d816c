package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "USER#u1", UserKey("u1"))
	assert.Equal(t, "JOB#j1", JobKey("j1"))
	assert.Equal(t, "CANDIDATE#u2", CandidateKey("u2"))
}

func TestCompositeKey(t *testing.T) {
	key := CompositeKey(UserKey("u1"), JobKey("j1"))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "USER#u1"}, key["PK"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "JOB#j1"}, key["SK"])
	assert.Len(t, key, 2)
}
