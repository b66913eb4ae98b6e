package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"society/internal/domain"
	"society/internal/storage"
	"society/internal/team"
)

type TeamService struct {
	repo        domain.TeamRepository
	store       ObjectStore
	defaultYear string
	logger      zerolog.Logger
}

func NewTeamService(repo domain.TeamRepository, store ObjectStore, defaultYear string, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, store: store, defaultYear: defaultYear, logger: logger}
}

// DefaultYear is the committee year shown when none is requested.
func (s *TeamService) DefaultYear() string {
	return s.defaultYear
}

// Chart groups the members of year into the org chart tiers.
func (s *TeamService) Chart(ctx context.Context, year string) (team.Hierarchy, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		year = s.defaultYear
	}
	members, err := s.repo.List(ctx, year)
	if err != nil {
		return team.Hierarchy{}, err
	}
	return team.Group(members), nil
}

// Save validates m and creates or updates it. Positions outside the known
// set are rejected and accepted ones are stored in canonical spelling.
func (s *TeamService) Save(ctx context.Context, m *domain.TeamMember) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Year = strings.TrimSpace(m.Year)
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	position, ok := team.CanonicalPosition(m.Position)
	if !ok {
		return fmt.Errorf("%w: unknown position %q", domain.ErrInvalidInput, m.Position)
	}
	m.Position = position
	if m.Year == "" {
		m.Year = s.defaultYear
	}
	if m.DisplayOrder < 0 {
		return fmt.Errorf("%w: display order must not be negative", domain.ErrInvalidInput)
	}

	if m.ID == "" {
		return s.repo.Create(ctx, m)
	}
	prev, err := s.repo.Get(ctx, m.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return err
	}
	if prev.ImageURL != "" && prev.ImageURL != m.ImageURL {
		s.removePhoto(ctx, prev.ImageURL)
	}
	return nil
}

// Delete removes a member and their photo.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if m.ImageURL != "" {
		s.removePhoto(ctx, m.ImageURL)
	}
	return nil
}

// UploadPhoto stores a member photo and returns its public URL.
func (s *TeamService) UploadPhoto(ctx context.Context, filename string, data []byte) (string, error) {
	return s.store.Upload(ctx, storage.BucketTeamPhotos, filename, data)
}

func (s *TeamService) removePhoto(ctx context.Context, url string) {
	if err := s.store.Delete(ctx, storage.BucketTeamPhotos, url); err != nil {
		s.logger.Warn().Err(err).Str("url", url).Msg("remove team photo")
	}
}
