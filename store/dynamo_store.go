package store

// NewDynamoStore wires the DynamoDB repositories onto one service handle.
func NewDynamoStore(svc *DynamoService, tables Tables) *Store {
	return &Store{
		Interactions: &dynamoInteractions{dynamo: svc, table: tables.Interactions},
		Matches:      &dynamoMatches{dynamo: svc, table: tables.Matches},
		Jobs:         &dynamoJobs{dynamo: svc, table: tables.Jobs},
		Profiles:     &dynamoProfiles{dynamo: svc, table: tables.Profiles},
	}
}
