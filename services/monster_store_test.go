package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"deeper-dungeons/models"
	"deeper-dungeons/services"
)

type MonsterStoreSuite struct {
	suite.Suite
	db    *gorm.DB
	store *services.GormMonsterStore
	ctx   context.Context
}

func TestMonsterStoreSuite(t *testing.T) {
	suite.Run(t, new(MonsterStoreSuite))
}

func (s *MonsterStoreSuite) SetupTest() {
	db, err := models.OpenDatabase(":memory:")
	s.Require().NoError(err)
	s.db = db
	s.store = services.NewGormMonsterStore(db)
	s.ctx = context.Background()
}

func (s *MonsterStoreSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func goblin() models.Monster {
	return services.FromDTO(models.MonsterDTO{
		Name:      "Goblin",
		Size:      models.SizeSmall,
		Type:      models.TypeHumanoid,
		Alignment: models.AlignmentNeutralEvil,
		Str:       models.StatDTO{Value: 8},
		Dex:       models.StatDTO{Value: 14},
		Challenge: "1/4 (50 XP)",
		Traits: []models.TraitDTO{
			{Name: "Nimble Escape", Description: "Disengage or Hide as a bonus action."},
		},
		Actions: []models.TraitDTO{
			{Name: "Scimitar", Description: "Melee Weapon Attack."},
			{Name: "Shortbow", Description: "Ranged Weapon Attack."},
		},
	})
}

func (s *MonsterStoreSuite) TestInsertAssignsID() {
	m := goblin()
	saved, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)

	s.NotZero(saved.ID)
	s.Equal("Goblin", saved.Name)
	s.Equal(models.SizeSmall, saved.Size)
	s.Equal(8, saved.Str)
	s.Len(saved.Entries, 3)
}

func (s *MonsterStoreSuite) TestEntriesKeepOrder() {
	m := goblin()
	saved, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)

	got, err := s.store.GetByID(s.ctx, saved.ID)
	s.Require().NoError(err)

	actions := got.EntriesOf(models.EntryKindAction)
	s.Require().Len(actions, 2)
	s.Equal("Scimitar", actions[0].Name)
	s.Equal("Shortbow", actions[1].Name)
	s.Len(got.EntriesOf(models.EntryKindReaction), 0)
}

func (s *MonsterStoreSuite) TestUpsertOverwritesWholeRecord() {
	m := goblin()
	saved, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)
	created := saved.CreatedAt

	time.Sleep(5 * time.Millisecond)

	update := services.FromDTO(models.MonsterDTO{
		ID:   &saved.ID,
		Name: "Goblin Boss",
		Reactions: []models.TraitDTO{
			{Name: "Redirect Attack", Description: "Swap places with a goblin."},
		},
	})
	updated, err := s.store.Upsert(s.ctx, &update)
	s.Require().NoError(err)

	s.Equal(saved.ID, updated.ID)
	s.Equal("Goblin Boss", updated.Name)
	s.Equal(models.SizeMedium, updated.Size)
	s.Equal(0, updated.Str)
	s.Require().Len(updated.Entries, 1)
	s.Equal(models.EntryKindReaction, updated.Entries[0].Kind)
	s.WithinDuration(created, updated.CreatedAt, time.Millisecond)

	var entries int64
	s.Require().NoError(s.db.Model(&models.MonsterEntry{}).Where("monster_id = ?", saved.ID).Count(&entries).Error)
	s.Equal(int64(1), entries)
}

func (s *MonsterStoreSuite) TestUpsertWithUnknownIDInserts() {
	m := goblin()
	m.ID = 42
	saved, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)
	s.Equal(uint(42), saved.ID)

	exists, err := s.store.ExistsByID(s.ctx, 42)
	s.Require().NoError(err)
	s.True(exists)

	next := goblin()
	fresh, err := s.store.Upsert(s.ctx, &next)
	s.Require().NoError(err)
	s.Greater(fresh.ID, uint(42))
}

func (s *MonsterStoreSuite) TestGetByIDNotFound() {
	_, err := s.store.GetByID(s.ctx, 999)
	s.ErrorIs(err, services.ErrMonsterNotFound)
}

func (s *MonsterStoreSuite) TestListAllOrderedByID() {
	for _, name := range []string{"Orc", "Kobold", "Ogre"} {
		m := goblin()
		m.Name = name
		_, err := s.store.Upsert(s.ctx, &m)
		s.Require().NoError(err)
	}

	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Orc", all[0].Name)
	s.Equal("Kobold", all[1].Name)
	s.Equal("Ogre", all[2].Name)
	s.Less(all[0].ID, all[1].ID)
	s.Len(all[2].Entries, 3)
}

func (s *MonsterStoreSuite) TestListAllEmpty() {
	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *MonsterStoreSuite) TestDeleteRemovesMonsterAndEntries() {
	m := goblin()
	saved, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteByID(s.ctx, saved.ID))

	exists, err := s.store.ExistsByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.False(exists)

	var entries int64
	s.Require().NoError(s.db.Model(&models.MonsterEntry{}).Count(&entries).Error)
	s.Zero(entries)

	s.ErrorIs(s.store.DeleteByID(s.ctx, saved.ID), services.ErrMonsterNotFound)
}

func (s *MonsterStoreSuite) TestZeroScoresPersist() {
	m := goblin()
	m.Str = 0
	m.ArmorClassValue = 0
	saved, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)
	s.Equal(0, saved.Str)
	s.Equal(0, saved.ArmorClassValue)
}

func (s *MonsterStoreSuite) TestSavingSameRecordTwiceIsStable() {
	m := goblin()
	first, err := s.store.Upsert(s.ctx, &m)
	s.Require().NoError(err)

	again := *first
	second, err := s.store.Upsert(s.ctx, &again)
	s.Require().NoError(err)

	firstDTO, secondDTO := services.ToDTO(*first), services.ToDTO(*second)
	s.Equal(firstDTO, secondDTO)
	s.WithinDuration(first.CreatedAt, second.CreatedAt, time.Millisecond)
}
