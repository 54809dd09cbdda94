// utils/images.go
package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// ImageStore keeps monster portraits and serves them back over HTTP.
type ImageStore interface {
	// Save stores r under name, replacing any previous image with that name.
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	// Mount serves stored images below prefix, e.g. "/images/monster_7.png".
	Mount(router fiber.Router, prefix string)
}

// LocalImageStore keeps portraits in a directory on disk.
type LocalImageStore struct {
	Dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to ensure image dir: %w", err)
	}
	return &LocalImageStore{Dir: dir}, nil
}

// Path returns where name is (or would be) stored.
func (s *LocalImageStore) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

func (s *LocalImageStore) Save(_ context.Context, name string, r io.Reader, _ string) error {
	if err := WriteFile(r, s.Path(name)); err != nil {
		return fmt.Errorf("failed to write image %s: %w", name, err)
	}
	return nil
}

// Mount serves the directory without fasthttp's open-file cache, so an
// overwritten portrait is read fresh on the next request.
func (s *LocalImageStore) Mount(router fiber.Router, prefix string) {
	router.Use(prefix, filesystem.New(filesystem.Config{
		Root: http.Dir(s.Dir),
	}))
}
