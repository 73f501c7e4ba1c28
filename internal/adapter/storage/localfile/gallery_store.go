// Package localfile keeps galleries as JSON files on local disk.
package localfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"chatmint-studio/internal/core/domain"

	"github.com/rs/zerolog"
)

// GalleryStore implements ports.GalleryRepository with one file per wallet,
// named "<key>-<wallet>.json". Writes go to a temp file that is renamed
// into place, so readers never see a partial gallery.
type GalleryStore struct {
	dir string
	key string
	log zerolog.Logger

	mu sync.Mutex
}

// NewGalleryStore creates the directory if needed.
func NewGalleryStore(dir, key string, log zerolog.Logger) (*GalleryStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating gallery dir %s: %w", dir, err)
	}
	return &GalleryStore{dir: dir, key: key, log: log}, nil
}

// List returns the wallet's records, oldest first.
func (s *GalleryStore) List(_ context.Context, owner domain.WalletAddress) ([]domain.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(owner)
}

// Append adds record at the end of the wallet's gallery.
func (s *GalleryStore) Append(_ context.Context, owner domain.WalletAddress, record domain.AssetRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(owner)
	if err != nil {
		return err
	}
	return s.write(owner, append(records, record))
}

// Remove deletes the first record with id.
func (s *GalleryStore) Remove(_ context.Context, owner domain.WalletAddress, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(owner)
	if err != nil {
		return false, err
	}
	next, removed := domain.RemoveAsset(records, id)
	if !removed {
		return false, nil
	}
	return true, s.write(owner, next)
}

// Path returns the file holding owner's gallery.
func (s *GalleryStore) Path(owner domain.WalletAddress) string {
	return filepath.Join(s.dir, s.key+"-"+owner.String()+".json")
}

func (s *GalleryStore) read(owner domain.WalletAddress) ([]domain.AssetRecord, error) {
	data, err := os.ReadFile(s.Path(owner))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.AssetRecord{}, nil
		}
		return nil, fmt.Errorf("reading gallery: %w", err)
	}

	records, err := domain.DecodeGallery(data)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", owner.String()).Msg("gallery data is malformed, treating as empty")
		return []domain.AssetRecord{}, nil
	}
	return records, nil
}

func (s *GalleryStore) write(owner domain.WalletAddress, records []domain.AssetRecord) error {
	data, err := domain.EncodeGallery(records)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".gallery-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path(owner)); err != nil {
		return fmt.Errorf("replacing gallery: %w", err)
	}
	tmpName = ""
	return nil
}
