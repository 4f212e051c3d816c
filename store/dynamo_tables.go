package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobswipe_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Tables holds the resolved table names.
type Tables struct {
	Interactions string
	Matches      string
	Jobs         string
	Profiles     string
}

func NewTables(prefix string) Tables {
	return Tables{
		Interactions: prefix + models.InteractionsTable,
		Matches:      prefix + models.MatchesTable,
		Jobs:         prefix + models.JobsTable,
		Profiles:     prefix + models.UserProfilesTable,
	}
}

func (t Tables) All() []string {
	return []string{t.Interactions, t.Matches, t.Jobs, t.Profiles}
}

func (t Tables) definitions() []*dynamodb.CreateTableInput {
	str := types.ScalarAttributeTypeS
	composite := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("PK"), AttributeType: str},
				{AttributeName: aws.String("SK"), AttributeType: str},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("SK"), KeyType: types.KeyTypeRange},
			},
		}
	}
	single := func(name, key string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(key), AttributeType: str},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
		}
	}

	matches := composite(t.Matches)
	matches.AttributeDefinitions = append(matches.AttributeDefinitions,
		types.AttributeDefinition{AttributeName: aws.String("candidateId"), AttributeType: str},
		types.AttributeDefinition{AttributeName: aws.String("matchedAt"), AttributeType: str},
	)
	matches.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(models.CandidateIDIndex),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("candidateId"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("matchedAt"), KeyType: types.KeyTypeRange},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}

	return []*dynamodb.CreateTableInput{
		composite(t.Interactions),
		matches,
		single(t.Jobs, "jobId"),
		single(t.Profiles, "userId"),
	}
}

// EnsureTables creates any missing table and waits for it to become active.
// Existing tables are left untouched.
func (ds *DynamoService) EnsureTables(ctx context.Context, t Tables) error {
	waiter := dynamodb.NewTableExistsWaiter(ds.Client)

	for _, def := range t.definitions() {
		name := aws.ToString(def.TableName)

		_, err := ds.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
		if err == nil {
			ds.Log.Info("table exists", zap.String("table", name))
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to describe table '%s': %w", name, err)
		}

		if _, err := ds.Client.CreateTable(ctx, def); err != nil {
			return fmt.Errorf("failed to create table '%s': %w", name, err)
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, 2*time.Minute); err != nil {
			return fmt.Errorf("waiting for table '%s': %w", name, err)
		}
		ds.Log.Info("table created", zap.String("table", name))
	}
	return nil
}
