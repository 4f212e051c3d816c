// Package store holds the persistence side of the service: repository
// interfaces for the four collections and their DynamoDB and in-memory
// implementations.
//
// The store only guarantees single-item atomicity. Uniqueness of interactions
// and matches comes from conditional writes on their composite keys; nothing
// here spans two items.
package store

import (
	"context"
	"errors"
	"fmt"

	"jobswipe_server/models"

	"go.uber.org/zap"
)

// ErrConflict is returned by a conditional create when the key is taken.
var ErrConflict = errors.New("item already exists")

type InteractionRepository interface {
	// Create inserts i, failing with ErrConflict if (UserID, JobID) exists.
	Create(ctx context.Context, i *models.Interaction) error
	Get(ctx context.Context, userID, jobID string) (*models.Interaction, error)
	// UpdateDecision rewrites the decision of an existing interaction and
	// returns models.ErrNotFound when there is none.
	UpdateDecision(ctx context.Context, i *models.Interaction) (*models.Interaction, error)
	ListByUser(ctx context.Context, userID string) ([]models.Interaction, error)
	ListPositiveByUser(ctx context.Context, userID string) ([]models.Interaction, error)
	// ScanPositive walks every positive interaction in the store.
	ScanPositive(ctx context.Context, fn func(models.Interaction) error) error
}

type MatchRepository interface {
	// Create inserts m, failing with ErrConflict if (JobID, CandidateID) exists.
	Create(ctx context.Context, m *models.Match) error
	Get(ctx context.Context, jobID, candidateID string) (*models.Match, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Match, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Match, error)
}

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	Get(ctx context.Context, jobID string) (*models.Job, error)
	List(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Put(ctx context.Context, p *models.UserProfile) error
}

// Store is the handle passed to every service. It is opened once at startup
// and closed on shutdown.
type Store struct {
	Interactions InteractionRepository
	Matches      MatchRepository
	Jobs         JobRepository
	Profiles     ProfileRepository

	closeFn func() error
}

// Close releases the underlying client.
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

type Options struct {
	Driver      string
	Region      string
	Endpoint    string
	TablePrefix string
}

// Open builds the store selected by opts.Driver. For DynamoDB the tables are
// described up front so a bad endpoint or missing table fails at startup
// rather than on the first request.
func Open(ctx context.Context, opts Options, log *zap.Logger) (*Store, error) {
	switch opts.Driver {
	case DriverMemory:
		log.Warn("using in-memory store, data is lost on exit")
		return NewMemoryStore(), nil
	case DriverDynamoDB, "":
		client, err := InitializeDynamoDBClient(ctx, opts.Region, opts.Endpoint)
		if err != nil {
			return nil, err
		}
		svc := &DynamoService{Client: client, Log: log}
		tables := NewTables(opts.TablePrefix)
		if err := svc.Ping(ctx, tables.All()...); err != nil {
			return nil, err
		}
		return NewDynamoStore(svc, tables), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
