// services/monster_service.go
package services

import (
	"context"
	"strings"

	"deeper-dungeons/models"

	"github.com/rs/zerolog/log"
)

// MonsterService maps between store records and wire DTOs and stamps the
// application version on every write.
type MonsterService struct {
	Store   MonsterStore
	Version string
}

func NewMonsterService(store MonsterStore, version string) *MonsterService {
	return &MonsterService{Store: store, Version: version}
}

// ExportedMonster is a monster ready for download.
type ExportedMonster struct {
	Filename string
	Monster  models.MonsterDTO
}

// ExportFilename is the monster name with spaces replaced by underscores,
// suffixed ".json".
func ExportFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".json"
}

func (s *MonsterService) List(ctx context.Context, filter MonsterFilter) ([]models.MonsterDTO, error) {
	monsters, err := s.Store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.MonsterDTO, len(monsters))
	for i, m := range monsters {
		out[i] = ToDTO(m)
	}
	return filter.Apply(out), nil
}

func (s *MonsterService) Get(ctx context.Context, id uint) (models.MonsterDTO, error) {
	m, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return models.MonsterDTO{}, err
	}
	return ToDTO(*m), nil
}

// Save creates or fully overwrites a monster. The version sent by the client
// is replaced with the running version.
func (s *MonsterService) Save(ctx context.Context, dto models.MonsterDTO) (models.MonsterDTO, error) {
	dto.DeeperDungeonsVersion = s.Version
	m := FromDTO(dto)

	saved, err := s.Store.Upsert(ctx, &m)
	if err != nil {
		log.Error().Err(err).Str("name", dto.Name).Msg("[MonsterService] save failed")
		return models.MonsterDTO{}, err
	}
	log.Info().Uint("monster_id", saved.ID).Str("name", saved.Name).Msg("[MonsterService] monster saved")
	return ToDTO(*saved), nil
}

// Import always creates a new monster; any id in the document is discarded.
func (s *MonsterService) Import(ctx context.Context, dto models.MonsterDTO) (models.MonsterDTO, error) {
	dto.ID = nil
	return s.Save(ctx, dto)
}

func (s *MonsterService) Export(ctx context.Context, id uint) (ExportedMonster, error) {
	dto, err := s.Get(ctx, id)
	if err != nil {
		return ExportedMonster{}, err
	}
	return ExportedMonster{Filename: ExportFilename(dto.Name), Monster: dto}, nil
}

func (s *MonsterService) Delete(ctx context.Context, id uint) error {
	exists, err := s.Store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMonsterNotFound
	}
	if err := s.Store.DeleteByID(ctx, id); err != nil {
		return err
	}
	// the portrait file, if any, stays on disk
	log.Info().Uint("monster_id", id).Msg("[MonsterService] monster deleted")
	return nil
}

// SetImageURL points the monster at a stored portrait. The version stamp is
// left as it was.
func (s *MonsterService) SetImageURL(ctx context.Context, id uint, imageURL string) (models.MonsterDTO, error) {
	m, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return models.MonsterDTO{}, err
	}
	m.ImageURL = &imageURL

	saved, err := s.Store.Upsert(ctx, m)
	if err != nil {
		return models.MonsterDTO{}, err
	}
	return ToDTO(*saved), nil
}
