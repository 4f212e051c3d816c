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

type dynamoInteractions struct {
	dynamo *DynamoService
	table  string
}

func (r *dynamoInteractions) Create(ctx context.Context, i *models.Interaction) error {
	i.PK = utils.UserKey(i.UserID)
	i.SK = utils.JobKey(i.JobID)
	return r.dynamo.PutItemIfAbsent(ctx, r.table, "PK", i)
}

func (r *dynamoInteractions) Get(ctx context.Context, userID, jobID string) (*models.Interaction, error) {
	var i models.Interaction
	key := utils.CompositeKey(utils.UserKey(userID), utils.JobKey(jobID))
	if err := r.dynamo.GetItem(ctx, r.table, key, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *dynamoInteractions) UpdateDecision(ctx context.Context, i *models.Interaction) (*models.Interaction, error) {
	updatedAt, err := attributevalue.Marshal(i.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal updatedAt: %w", err)
	}

	var out models.Interaction
	err = r.dynamo.UpdateExistingItem(ctx, r.table,
		utils.CompositeKey(utils.UserKey(i.UserID), utils.JobKey(i.JobID)),
		"SET #decision = :decision, #label = :label, #updatedAt = :updatedAt",
		map[string]string{
			"#decision":  "decision",
			"#label":     "label",
			"#updatedAt": "updatedAt",
		},
		map[string]types.AttributeValue{
			":decision":  utils.StringValue(string(i.Decision)),
			":label":     utils.StringValue(i.Label),
			":updatedAt": updatedAt,
		},
		&out,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *dynamoInteractions) ListByUser(ctx context.Context, userID string) ([]models.Interaction, error) {
	return r.query(ctx, userID, false)
}

func (r *dynamoInteractions) ListPositiveByUser(ctx context.Context, userID string) ([]models.Interaction, error) {
	return r.query(ctx, userID, true)
}

func (r *dynamoInteractions) query(ctx context.Context, userID string, positiveOnly bool) ([]models.Interaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": utils.StringValue(utils.UserKey(userID)),
		},
	}
	if positiveOnly {
		input.FilterExpression = aws.String("#decision = :positive")
		input.ExpressionAttributeNames = map[string]string{"#decision": "decision"}
		input.ExpressionAttributeValues[":positive"] = utils.StringValue(string(models.DecisionPositive))
	}

	items, err := r.dynamo.QueryAll(ctx, input)
	if err != nil {
		return nil, err
	}

	interactions := []models.Interaction{}
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}
	return interactions, nil
}

func (r *dynamoInteractions) ScanPositive(ctx context.Context, fn func(models.Interaction) error) error {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		FilterExpression:         aws.String("#decision = :positive"),
		ExpressionAttributeNames: map[string]string{"#decision": "decision"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":positive": utils.StringValue(string(models.DecisionPositive)),
		},
	}

	return r.dynamo.ScanPages(ctx, input, func(items []map[string]types.AttributeValue) error {
		var page []models.Interaction
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return fmt.Errorf("failed to unmarshal interactions: %w", err)
		}
		for _, i := range page {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	})
}
