// services/image_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"deeper-dungeons/models"
	"deeper-dungeons/utils"

	"github.com/rs/zerolog/log"
)

// ImagePathPrefix is where stored portraits are served from.
const ImagePathPrefix = "/images"

// DefaultMaxImageBytes caps remote downloads when no limit is configured.
const DefaultMaxImageBytes = 16 << 20

// ImageService stores monster portraits and points monsters at them.
type ImageService struct {
	Monsters *MonsterService
	Store    utils.ImageStore
	Client   *http.Client
	// MaxBytes is the largest remote image UploadFromURL accepts.
	MaxBytes int64
}

func NewImageService(monsters *MonsterService, store utils.ImageStore, client *http.Client, maxBytes int64) *ImageService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &ImageService{Monsters: monsters, Store: store, Client: client, MaxBytes: maxBytes}
}

// ImageFilename is the deterministic portrait name for a monster.
func ImageFilename(id uint, ext string) string {
	return fmt.Sprintf("monster_%d.%s", id, ext)
}

// Upload stores a multipart portrait as monster_<id>.<ext>, taking the
// extension from the uploaded filename ("png" when it has none).
func (s *ImageService) Upload(ctx context.Context, id uint, fileHeader *multipart.FileHeader) (models.MonsterDTO, error) {
	if err := s.ensureMonster(ctx, id); err != nil {
		return models.MonsterDTO{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.MonsterDTO{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	ext := utils.ExtensionOr(filepath.Base(fileHeader.Filename), "png")
	name := ImageFilename(id, ext)
	if err := s.Store.Save(ctx, name, file, fileHeader.Header.Get("Content-Type")); err != nil {
		return models.MonsterDTO{}, err
	}

	log.Info().Uint("monster_id", id).Str("file", name).Msg("[ImageService] portrait uploaded")
	return s.Monsters.SetImageURL(ctx, id, ImagePathPrefix+"/"+name)
}

// UploadFromURL downloads a remote portrait and stores it as
// monster_<id>.png whatever the remote content type is.
func (s *ImageService) UploadFromURL(ctx context.Context, id uint, rawURL string) (models.MonsterDTO, error) {
	if err := s.ensureMonster(ctx, id); err != nil {
		return models.MonsterDTO{}, err
	}

	imageURL := strings.Trim(strings.TrimSpace(rawURL), `"`)
	body, contentType, err := s.download(ctx, imageURL)
	if err != nil {
		return models.MonsterDTO{}, err
	}

	name := ImageFilename(id, "png")
	if err := s.Store.Save(ctx, name, bytes.NewReader(body), contentType); err != nil {
		return models.MonsterDTO{}, err
	}

	log.Info().Uint("monster_id", id).Str("url", imageURL).Str("file", name).Msg("[ImageService] portrait downloaded")
	return s.Monsters.SetImageURL(ctx, id, ImagePathPrefix+"/"+name)
}

func (s *ImageService) ensureMonster(ctx context.Context, id uint) error {
	exists, err := s.Monsters.Store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMonsterNotFound
	}
	return nil
}

func (s *ImageService) download(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid image url: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	// one byte past the limit tells an oversized image from one exactly at it
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.MaxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(body)) > s.MaxBytes {
		return nil, "", fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, s.MaxBytes)
	}
	if len(body) == 0 {
		return nil, "", ErrImageDownload
	}
	return body, resp.Header.Get("Content-Type"), nil
}
