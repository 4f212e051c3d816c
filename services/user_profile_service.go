package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobswipe_server/models"
	"jobswipe_server/store"

	"go.uber.org/zap"
)

type UserProfileService struct {
	Profiles store.ProfileRepository
	Log      *zap.Logger
	Now      func() time.Time
}

// ProfileInput is a partial update. Nil fields are left unchanged.
type ProfileInput struct {
	Name      *string
	Email     *string
	Bio       *string
	Skills    []string
	ResumeKey *string
}

// GetProfile returns the user's profile or models.ErrNotFound.
func (ups *UserProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := ups.Profiles.Get(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("profile %s: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile creates the profile on first use and merges in on later
// calls. Existing matches keep their snapshot.
func (ups *UserProfileService) UpsertProfile(ctx context.Context, userID string, in ProfileInput) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", models.ErrInvalidInput)
	}

	profile, err := ups.Profiles.Get(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		profile = &models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if in.Name != nil {
		profile.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		profile.Email = strings.TrimSpace(*in.Email)
	}
	if in.Bio != nil {
		profile.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Skills != nil {
		profile.Skills = NormalizeSkills(in.Skills)
	}
	if in.ResumeKey != nil {
		if *in.ResumeKey != "" && !OwnsKey(userID, *in.ResumeKey) {
			return nil, fmt.Errorf("resumeKey does not belong to user: %w", models.ErrInvalidInput)
		}
		profile.ResumeKey = *in.ResumeKey
	}
	profile.UpdatedAt = now(ups.Now)

	if err := ups.Profiles.Put(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	ups.Log.Info("profile saved", zap.String("userId", userID))
	return profile, nil
}

// NormalizeSkills trims entries, splits comma-joined ones and drops blanks.
func NormalizeSkills(raw []string) []string {
	skills := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}
	return skills
}
