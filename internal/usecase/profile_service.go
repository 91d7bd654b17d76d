package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/profile"
	"github.com/ekalbevoldog/contested/internal/domain/user"
)

type SaveAthleteProfileInput struct {
	DisplayName string
	Sport       string
	League      string
	Bio         string
	SocialReach int64
}

type SaveBusinessProfileInput struct {
	CompanyName string
	Industry    string
	Website     string
	Bio         string
}

type ProfileService struct {
	profileRepo profile.Repository
	now         func() time.Time
}

func NewProfileService(profileRepo profile.Repository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// SaveAthleteProfile upserts the caller's athlete profile as a partial merge:
// empty fields keep their stored value.
func (s *ProfileService) SaveAthleteProfile(ctx context.Context, principal user.Principal, input SaveAthleteProfileInput) (profile.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.SaveAthleteProfile")
	defer span.End()

	if principal.Role != user.RoleAthlete && principal.Role != user.RoleAdmin {
		return profile.Athlete{}, fmt.Errorf("%w: only athletes can edit athlete profiles", ErrForbidden)
	}

	existing, exists, err := s.profileRepo.GetAthleteByUserID(ctx, principal.UserID)
	if err != nil {
		return profile.Athlete{}, fmt.Errorf("get athlete profile: %w", err)
	}

	now := s.now().UTC()
	out := existing
	out.UserID = principal.UserID
	if v := strings.TrimSpace(input.DisplayName); v != "" {
		out.DisplayName = v
	}
	if v := strings.TrimSpace(input.Sport); v != "" {
		out.Sport = v
	}
	if v := strings.TrimSpace(input.League); v != "" {
		out.League = v
	}
	if v := strings.TrimSpace(input.Bio); v != "" {
		out.Bio = v
	}
	if input.SocialReach > 0 {
		out.SocialReach = input.SocialReach
	}
	if !exists {
		out.CreatedAt = now
	}
	out.UpdatedAt = now

	if err := out.Validate(); err != nil {
		return profile.Athlete{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.profileRepo.UpsertAthlete(ctx, out); err != nil {
		return profile.Athlete{}, fmt.Errorf("upsert athlete profile: %w", err)
	}

	return out, nil
}

func (s *ProfileService) GetAthleteProfile(ctx context.Context, userID string) (profile.Athlete, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.GetAthleteProfile")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Athlete{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	found, exists, err := s.profileRepo.GetAthleteByUserID(ctx, userID)
	if err != nil {
		return profile.Athlete{}, fmt.Errorf("get athlete profile: %w", err)
	}
	if !exists {
		return profile.Athlete{}, fmt.Errorf("%w: athlete profile not found", ErrNotFound)
	}

	return found, nil
}

func (s *ProfileService) SaveBusinessProfile(ctx context.Context, principal user.Principal, input SaveBusinessProfileInput) (profile.Business, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.SaveBusinessProfile")
	defer span.End()

	if principal.Role != user.RoleBusiness && principal.Role != user.RoleAdmin {
		return profile.Business{}, fmt.Errorf("%w: only businesses can edit business profiles", ErrForbidden)
	}

	existing, exists, err := s.profileRepo.GetBusinessByUserID(ctx, principal.UserID)
	if err != nil {
		return profile.Business{}, fmt.Errorf("get business profile: %w", err)
	}

	now := s.now().UTC()
	out := existing
	out.UserID = principal.UserID
	if v := strings.TrimSpace(input.CompanyName); v != "" {
		out.CompanyName = v
	}
	if v := strings.TrimSpace(input.Industry); v != "" {
		out.Industry = v
	}
	if v := strings.TrimSpace(input.Website); v != "" {
		out.Website = v
	}
	if v := strings.TrimSpace(input.Bio); v != "" {
		out.Bio = v
	}
	if !exists {
		out.CreatedAt = now
	}
	out.UpdatedAt = now

	if err := out.Validate(); err != nil {
		return profile.Business{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.profileRepo.UpsertBusiness(ctx, out); err != nil {
		return profile.Business{}, fmt.Errorf("upsert business profile: %w", err)
	}

	return out, nil
}

func (s *ProfileService) GetBusinessProfile(ctx context.Context, userID string) (profile.Business, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.GetBusinessProfile")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profile.Business{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	found, exists, err := s.profileRepo.GetBusinessByUserID(ctx, userID)
	if err != nil {
		return profile.Business{}, fmt.Errorf("get business profile: %w", err)
	}
	if !exists {
		return profile.Business{}, fmt.Errorf("%w: business profile not found", ErrNotFound)
	}

	return found, nil
}
