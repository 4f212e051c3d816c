package store

import (
	"context"

	"jobswipe_server/models"
	"jobswipe_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoProfiles struct {
	dynamo *DynamoService
	table  string
}

func (r *dynamoProfiles) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	key := map[string]types.AttributeValue{"userId": utils.StringValue(userID)}
	if err := r.dynamo.GetItem(ctx, r.table, key, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *dynamoProfiles) Put(ctx context.Context, p *models.UserProfile) error {
	return r.dynamo.PutItem(ctx, r.table, p)
}
