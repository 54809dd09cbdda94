// services/monster_store.go
package services

//go:generate mockgen -destination=mocks/mock_monster_store.go -package=mocks deeper-dungeons/services MonsterStore

import (
	"context"
	"errors"
	"fmt"

	"deeper-dungeons/models"

	"gorm.io/gorm"
)

// MonsterStore is durable CRUD for monster records.
type MonsterStore interface {
	// ListAll returns every monster ordered by id.
	ListAll(ctx context.Context) ([]models.Monster, error)
	// GetByID returns ErrMonsterNotFound if no monster has the id.
	GetByID(ctx context.Context, id uint) (*models.Monster, error)
	// Upsert inserts when ID is 0 and otherwise overwrites the whole record,
	// entries included. It returns the record as stored.
	Upsert(ctx context.Context, m *models.Monster) (*models.Monster, error)
	// DeleteByID returns ErrMonsterNotFound if no monster has the id.
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

type GormMonsterStore struct {
	DB *gorm.DB
}

func NewGormMonsterStore(db *gorm.DB) *GormMonsterStore {
	return &GormMonsterStore{DB: db}
}

func preloadEntries(db *gorm.DB) *gorm.DB {
	return db.Order("kind ASC, position ASC, id ASC")
}

func (s *GormMonsterStore) ListAll(ctx context.Context) ([]models.Monster, error) {
	var monsters []models.Monster
	if err := s.DB.WithContext(ctx).Preload("Entries", preloadEntries).Order("id ASC").Find(&monsters).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch monsters: %w", err)
	}
	return monsters, nil
}

func (s *GormMonsterStore) GetByID(ctx context.Context, id uint) (*models.Monster, error) {
	var monster models.Monster
	if err := s.DB.WithContext(ctx).Preload("Entries", preloadEntries).First(&monster, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMonsterNotFound
		}
		return nil, fmt.Errorf("failed to fetch monster %d: %w", id, err)
	}
	return &monster, nil
}

func (s *GormMonsterStore) Upsert(ctx context.Context, m *models.Monster) (*models.Monster, error) {
	if m == nil {
		return nil, errors.New("monster cannot be nil")
	}

	entries := m.Entries
	record := *m
	record.Entries = nil

	// 🧹 Transaction: save scalars, replace entries wholesale
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Save writes every column, so carry the original creation time over
		explicitInsert := false
		if record.ID != 0 {
			var existing models.Monster
			err := tx.Select("id", "created_at").First(&existing, record.ID).Error
			switch {
			case err == nil:
				if record.CreatedAt.IsZero() {
					record.CreatedAt = existing.CreatedAt
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				explicitInsert = true
			default:
				return err
			}
		}

		if err := tx.Omit("Entries").Save(&record).Error; err != nil {
			return err
		}
		if explicitInsert {
			if err := syncIDSequence(tx); err != nil {
				return err
			}
		}

		if err := tx.Where("monster_id = ?", record.ID).Delete(&models.MonsterEntry{}).Error; err != nil {
			return err
		}

		if len(entries) > 0 {
			fresh := make([]models.MonsterEntry, len(entries))
			for i, e := range entries {
				fresh[i] = models.MonsterEntry{
					MonsterID:   record.ID,
					Kind:        e.Kind,
					Position:    e.Position,
					Name:        e.Name,
					Description: e.Description,
				}
			}
			if err := tx.Create(&fresh).Error; err != nil {
				return fmt.Errorf("failed to save entries: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save monster: %w", err)
	}

	return s.GetByID(ctx, record.ID)
}

// syncIDSequence moves the Postgres identity sequence past a caller-chosen id
// so later inserts don't collide with it. SQLite needs nothing.
func syncIDSequence(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	err := tx.Exec(`SELECT setval(pg_get_serial_sequence('monsters', 'id'), (SELECT MAX(id) FROM monsters))`).Error
	if err != nil {
		return fmt.Errorf("failed to sync monster id sequence: %w", err)
	}
	return nil
}

func (s *GormMonsterStore) DeleteByID(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Monster{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete monster %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrMonsterNotFound
		}
		// entries have no standalone value
		if err := tx.Where("monster_id = ?", id).Delete(&models.MonsterEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete entries of monster %d: %w", id, err)
		}
		return nil
	})
}

func (s *GormMonsterStore) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Monster{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check monster %d: %w", id, err)
	}
	return count > 0, nil
}
