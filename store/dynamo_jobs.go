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

type dynamoJobs struct {
	dynamo *DynamoService
	table  string
}

func (r *dynamoJobs) Create(ctx context.Context, j *models.Job) error {
	return r.dynamo.PutItemIfAbsent(ctx, r.table, "jobId", j)
}

func (r *dynamoJobs) Get(ctx context.Context, jobID string) (*models.Job, error) {
	var j models.Job
	key := map[string]types.AttributeValue{"jobId": utils.StringValue(jobID)}
	if err := r.dynamo.GetItem(ctx, r.table, key, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// List scans the catalog. The poster filter runs server-side; ordering is left
// to the caller since a scan has none.
func (r *dynamoJobs) List(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.table)}
	if filter.ExcludePosterID != "" {
		input.FilterExpression = aws.String("#posterId <> :poster")
		input.ExpressionAttributeNames = map[string]string{"#posterId": "posterId"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":poster": utils.StringValue(filter.ExcludePosterID),
		}
	}

	jobs := []models.Job{}
	err := r.dynamo.ScanPages(ctx, input, func(items []map[string]types.AttributeValue) error {
		var page []models.Job
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return fmt.Errorf("failed to unmarshal jobs: %w", err)
		}
		jobs = append(jobs, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
