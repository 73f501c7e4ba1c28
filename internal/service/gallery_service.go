package service

import (
	"context"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
)

// GalleryServiceImpl implements ports.GalleryService.
type GalleryServiceImpl struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryServiceImpl {
	return &GalleryServiceImpl{repo: repo, log: log}
}

// List returns a snapshot of the wallet's gallery, oldest first.
func (s *GalleryServiceImpl) List(ctx context.Context, owner domain.WalletAddress) ([]domain.AssetRecord, error) {
	records, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	if records == nil {
		records = []domain.AssetRecord{}
	}
	return records, nil
}

// Delete removes a record. Deleting an unknown id is not an error.
func (s *GalleryServiceImpl) Delete(ctx context.Context, owner domain.WalletAddress, id int64) error {
	removed, err := s.repo.Remove(ctx, owner, id)
	if err != nil {
		return apperror.ErrStorageError(err)
	}
	if removed {
		s.log.Info().Str("wallet", owner.String()).Int64("asset", id).Msg("asset removed from gallery")
	}
	return nil
}
