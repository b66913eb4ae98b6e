package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"society/internal/domain"
	"society/internal/progress"
	"society/internal/storage"
)

// listConcurrency bounds the per-program reads issued by List.
const listConcurrency = 8

// ObjectStore uploads and removes public files.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, filename string, data []byte) (string, error)
	Delete(ctx context.Context, bucket, publicURL string) error
}

// FundingSummary is the money side of a charity program.
type FundingSummary struct {
	Goal          *decimal.Decimal
	Raised        decimal.Decimal
	Expenses      decimal.Decimal
	Remaining     *decimal.Decimal
	Percentage    int
	DonationCount int
	GoodsCount    int
}

// ProgramSummary is a program card: the program, its feature image and, for
// charity programs, the funding figures.
type ProgramSummary struct {
	Program      domain.Program
	FeatureImage *domain.ProgramImage
	Funding      *FundingSummary
}

// ProgramDetail is everything the program page shows.
type ProgramDetail struct {
	Program      domain.Program
	FeatureImage *domain.ProgramImage
	Gallery      []domain.ProgramImage
	Funding      *FundingSummary
	Goods        []progress.ItemProgress
}

type ProgramService struct {
	programs  domain.ProgramRepository
	catalog   domain.CatalogRepository
	donations domain.DonationRepository
	expenses  domain.ExpenseRepository
	store     ObjectStore
	logger    zerolog.Logger
}

func NewProgramService(
	programs domain.ProgramRepository,
	catalog domain.CatalogRepository,
	donations domain.DonationRepository,
	expenses domain.ExpenseRepository,
	store ObjectStore,
	logger zerolog.Logger,
) *ProgramService {
	return &ProgramService{
		programs:  programs,
		catalog:   catalog,
		donations: donations,
		expenses:  expenses,
		store:     store,
		logger:    logger,
	}
}

// List returns program cards. Funding figures of charity programs are loaded
// concurrently.
func (s *ProgramService) List(ctx context.Context, filter domain.ProgramFilter) ([]ProgramSummary, error) {
	programs, err := s.programs.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]ProgramSummary, len(programs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i := range programs {
		out[i].Program = programs[i]
		g.Go(func() error {
			images, err := s.programs.ListImages(gctx, programs[i].ID)
			if err != nil {
				return fmt.Errorf("images of %s: %w", programs[i].ID, err)
			}
			out[i].FeatureImage, _ = splitImages(images)
			return nil
		})
		if !programs[i].IsCharity() {
			continue
		}
		g.Go(func() error {
			funding, err := s.funding(gctx, &programs[i])
			if err != nil {
				return err
			}
			out[i].Funding = funding
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Detail loads a published program with its gallery and, for charity
// programs, funding and goods progress. Drafts are reported as not found.
func (s *ProgramService) Detail(ctx context.Context, id string) (*ProgramDetail, error) {
	p, err := s.programs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ProgramStatusPublished {
		return nil, domain.ErrNotFound
	}
	return s.detail(ctx, p)
}

// AdminDetail is Detail without the published check.
func (s *ProgramService) AdminDetail(ctx context.Context, id string) (*ProgramDetail, error) {
	p, err := s.programs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, p)
}

func (s *ProgramService) detail(ctx context.Context, p *domain.Program) (*ProgramDetail, error) {
	detail := &ProgramDetail{Program: *p}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		images, err := s.programs.ListImages(gctx, p.ID)
		if err != nil {
			return fmt.Errorf("images: %w", err)
		}
		detail.FeatureImage, detail.Gallery = splitImages(images)
		return nil
	})
	if p.IsCharity() {
		g.Go(func() error {
			funding, err := s.funding(gctx, p)
			if err != nil {
				return err
			}
			detail.Funding = funding
			return nil
		})
		g.Go(func() error {
			goods, err := s.goods(gctx, p.ID)
			if err != nil {
				return err
			}
			detail.Goods = goods
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *ProgramService) funding(ctx context.Context, p *domain.Program) (*FundingSummary, error) {
	var (
		stats domain.ProgramDonationStats
		spent decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.donations.ProgramStats(gctx, p.ID)
		if err != nil {
			return fmt.Errorf("donation stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		spent, err = s.expenses.TotalForProgram(gctx, p.ID)
		if err != nil {
			return fmt.Errorf("expense total: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &FundingSummary{
		Goal:          p.FundingGoal,
		Raised:        stats.TotalRaised,
		Expenses:      spent,
		Percentage:    progress.Funding(stats.TotalRaised, p.FundingGoal),
		DonationCount: stats.DonationCount,
		GoodsCount:    stats.GoodsCount,
	}
	if p.FundingGoal != nil {
		remaining := p.FundingGoal.Sub(spent)
		summary.Remaining = &remaining
	}
	return summary, nil
}

func (s *ProgramService) goods(ctx context.Context, programID string) ([]progress.ItemProgress, error) {
	var (
		required      []domain.RequiredItem
		contributions []domain.GoodsContribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		required, err = s.catalog.RequiredItems(gctx, programID)
		if err != nil {
			return fmt.Errorf("required items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		contributions, err = s.donations.GoodsContributions(gctx, programID)
		if err != nil {
			return fmt.Errorf("goods contributions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return progress.Goods(required, contributions), nil
}

// Save validates p and creates it when it has no id, updates it otherwise.
func (s *ProgramService) Save(ctx context.Context, p *domain.Program) error {
	if err := validateProgram(p); err != nil {
		return err
	}
	if p.ID == "" {
		return s.programs.Create(ctx, p)
	}
	return s.programs.Update(ctx, p)
}

// Delete removes the program and then its stored images. Storage failures
// are logged, the database row is already gone.
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	images, err := s.programs.ListImages(ctx, id)
	if err != nil {
		return err
	}
	if err := s.programs.Delete(ctx, id); err != nil {
		return err
	}
	for _, img := range images {
		s.removeObject(ctx, storage.BucketProgramImages, img.ImageURL)
	}
	return nil
}

// AddImage uploads an image for a program. A feature upload replaces the
// current feature image; other uploads are appended to the gallery.
func (s *ProgramService) AddImage(ctx context.Context, programID, filename string, data []byte, feature bool) (*domain.ProgramImage, error) {
	if _, err := s.programs.Get(ctx, programID); err != nil {
		return nil, err
	}

	var previous []domain.ProgramImage
	order := domain.FeatureImageOrder
	if feature {
		images, err := s.programs.ListImages(ctx, programID)
		if err != nil {
			return nil, err
		}
		for _, img := range images {
			if img.DisplayOrder == domain.FeatureImageOrder {
				previous = append(previous, img)
			}
		}
	} else {
		next, err := s.programs.NextGalleryOrder(ctx, programID)
		if err != nil {
			return nil, err
		}
		order = next
	}

	url, err := s.store.Upload(ctx, storage.BucketProgramImages, filename, data)
	if err != nil {
		return nil, err
	}
	img := &domain.ProgramImage{ProgramID: programID, ImageURL: url, DisplayOrder: order}
	if err := s.programs.AddImage(ctx, img); err != nil {
		s.removeObject(ctx, storage.BucketProgramImages, url)
		return nil, err
	}
	for _, old := range previous {
		if err := s.programs.DeleteImage(ctx, old.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.removeObject(ctx, storage.BucketProgramImages, old.ImageURL)
	}
	return img, nil
}

// DeleteImage removes one program image and its stored file.
func (s *ProgramService) DeleteImage(ctx context.Context, id string) error {
	img, err := s.programs.GetImage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.programs.DeleteImage(ctx, id); err != nil {
		return err
	}
	s.removeObject(ctx, storage.BucketProgramImages, img.ImageURL)
	return nil
}

func (s *ProgramService) removeObject(ctx context.Context, bucket, url string) {
	if err := s.store.Delete(ctx, bucket, url); err != nil {
		s.logger.Warn().Err(err).Str("bucket", bucket).Str("url", url).Msg("remove stored object")
	}
}

// splitImages separates the feature image from the gallery. Images arrive
// ordered by display order.
func splitImages(images []domain.ProgramImage) (*domain.ProgramImage, []domain.ProgramImage) {
	var feature *domain.ProgramImage
	gallery := make([]domain.ProgramImage, 0, len(images))
	for i := range images {
		if images[i].DisplayOrder == domain.FeatureImageOrder && feature == nil {
			feature = &images[i]
			continue
		}
		gallery = append(gallery, images[i])
	}
	return feature, gallery
}

func validateProgram(p *domain.Program) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Location = strings.TrimSpace(p.Location)
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, p.Category)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, p.Status)
	case p.Date.IsZero():
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if p.FundingGoal != nil {
		if !p.IsCharity() {
			return fmt.Errorf("%w: only charity programs have a funding goal", domain.ErrInvalidInput)
		}
		if p.FundingGoal.IsNegative() {
			return fmt.Errorf("%w: funding goal must not be negative", domain.ErrInvalidInput)
		}
	}
	return nil
}
