package cmd

import (
	"context"

	"jobswipe_server/config"
	"jobswipe_server/routes"
	"jobswipe_server/services"
	"jobswipe_server/store"

	"go.uber.org/zap"
)

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*store.Store, error) {
	return store.Open(ctx, store.Options{
		Driver:      cfg.Store.Driver,
		Region:      cfg.AWS.Region,
		Endpoint:    cfg.DynamoDB.Endpoint,
		TablePrefix: cfg.DynamoDB.TablePrefix,
	}, log)
}

// buildServices injects the store handle into every service.
func buildServices(ctx context.Context, cfg *config.Config, st *store.Store, log *zap.Logger) (routes.Services, *services.ReconcileService, error) {
	matches := &services.MatchService{
		Matches:  st.Matches,
		Profiles: st.Profiles,
		Jobs:     st.Jobs,
		Log:      log.Named("matches"),
	}

	var resumes *services.ResumeService
	if cfg.S3.Bucket != "" {
		var err error
		resumes, err = services.NewResumeService(ctx, cfg.AWS.Region, cfg.S3.Bucket, cfg.S3.PresignTTL)
		if err != nil {
			return routes.Services{}, nil, err
		}
		matches.Resumes = resumes
	} else {
		log.Info("s3.bucket not set, resume links disabled")
	}

	svc := routes.Services{
		Interactions: &services.InteractionService{
			Interactions: st.Interactions,
			Matches:      matches,
			Log:          log.Named("interactions"),
		},
		Jobs: &services.JobService{Jobs: st.Jobs, Log: log.Named("jobs")},
		Feed: &services.FeedService{
			Jobs:               st.Jobs,
			Interactions:       st.Interactions,
			Log:                log.Named("feed"),
			DefaultLimit:       cfg.Feed.DefaultLimit,
			MaxLimit:           cfg.Feed.MaxLimit,
			ExcludeOwnPostings: cfg.Feed.ExcludeOwnPostings,
		},
		Matches:  matches,
		Profiles: &services.UserProfileService{Profiles: st.Profiles, Log: log.Named("profiles")},
		Resumes:  resumes,
	}

	reconcile := &services.ReconcileService{
		Interactions: st.Interactions,
		Matches:      matches,
		Log:          log.Named("reconcile"),
	}
	return svc, reconcile, nil
}
