package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
)

// MaxImageSize caps a single uploaded image at 5 MiB.
const MaxImageSize = 5 << 20

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

type Storage interface {
	Save(filename string, data []byte) (string, error)
	Remove(path string) error
	Dir() string
}

type diskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	return &diskStorage{dir: dir}, nil
}

func (s *diskStorage) Save(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", errors.Wrapf(errs.ErrUnsupportedMedia, "%q", ext)
	}
	if len(data) > MaxImageSize {
		return "", errors.Wrapf(errs.ErrUnsupportedMedia, "file exceeds %d bytes", MaxImageSize)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "write image")
	}
	return name, nil
}

func (s *diskStorage) Remove(path string) error {
	// Ignore already-removed files, the DB row is the source of truth.
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(path))); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *diskStorage) Dir() string {
	return s.dir
}
