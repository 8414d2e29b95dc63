package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

type PackageService struct {
	repo   ports.PackageRepository
	logger zerolog.Logger
}

func NewPackageService(repo ports.PackageRepository, logger zerolog.Logger) *PackageService {
	return &PackageService{repo: repo, logger: logger}
}

func (s *PackageService) CreatePackage(ctx context.Context, input ports.CreatePackageInput) (*domain.SubscriptionPackage, error) {
	if strings.TrimSpace(input.PackageName) == "" {
		return nil, fmt.Errorf("create package: %w: package_name is required", domain.ErrInvalidValue)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("create package: %w: duration must not be negative", domain.ErrInvalidValue)
	}

	p := &domain.SubscriptionPackage{
		ID:          uuid.NewString(),
		PackageName: input.PackageName,
		Duration:    input.Duration,
		Price:       input.Price,
		Currency:    input.Currency,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create subscription package")
		return nil, err
	}

	s.logger.Info().Str("package_id", p.ID).Int64("duration", p.Duration).Msg("subscription package created")
	return p, nil
}

func (s *PackageService) GetPackage(ctx context.Context, id string) (*domain.SubscriptionPackage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PackageService) ListPackages(ctx context.Context) ([]*domain.SubscriptionPackage, error) {
	return s.repo.List(ctx)
}
