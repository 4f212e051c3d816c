package store

import (
	"context"
	"fmt"

	"jobswipe_server/models"
	"jobswipe_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoMatches struct {
	dynamo *DynamoService
	table  string
}

func (r *dynamoMatches) Create(ctx context.Context, m *models.Match) error {
	m.PK = utils.JobKey(m.JobID)
	m.SK = utils.CandidateKey(m.CandidateID)
	return r.dynamo.PutItemIfAbsent(ctx, r.table, "PK", m)
}

func (r *dynamoMatches) Get(ctx context.Context, jobID, candidateID string) (*models.Match, error) {
	var m models.Match
	key := utils.CompositeKey(utils.JobKey(jobID), utils.CandidateKey(candidateID))
	if err := r.dynamo.GetItem(ctx, r.table, key, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *dynamoMatches) ListByJob(ctx context.Context, jobID string) ([]models.Match, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": utils.StringValue(utils.JobKey(jobID)),
		},
	})
}

// ListByCandidate reads the candidateId GSI, newest first.
func (r *dynamoMatches) ListByCandidate(ctx context.Context, candidateID string) ([]models.Match, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(models.CandidateIDIndex),
		KeyConditionExpression: aws.String("candidateId = :candidate"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":candidate": utils.StringValue(candidateID),
		},
		ScanIndexForward: aws.Bool(false),
	})
}

func (r *dynamoMatches) query(ctx context.Context, input *dynamodb.QueryInput) ([]models.Match, error) {
	items, err := r.dynamo.QueryAll(ctx, input)
	if err != nil {
		return nil, err
	}

	matches := []models.Match{}
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}
