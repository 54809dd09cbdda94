package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeper-dungeons/models"
	"deeper-dungeons/services"
)

func TestFromDTONormalizesPortraitLayout(t *testing.T) {
	cases := []struct {
		name      string
		position  string
		scale     float64
		wantPos   string
		wantScale float64
	}{
		{"empty", "", 0, models.ImagePositionTop, 1.0},
		{"negative scale", models.ImagePositionLeft, -2, models.ImagePositionLeft, 1.0},
		{"unknown position", "center", 0.5, models.ImagePositionTop, 0.5},
		{"kept", models.ImagePositionBottom, 1.75, models.ImagePositionBottom, 1.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := services.FromDTO(models.MonsterDTO{ImagePosition: tc.position, ImageScale: tc.scale})
			assert.Equal(t, tc.wantPos, m.ImagePosition)
			assert.Equal(t, tc.wantScale, m.ImageScale)
		})
	}
}

func TestFromDTOFallsBackForMissingEnums(t *testing.T) {
	m := services.FromDTO(models.MonsterDTO{Name: "Blob"})
	assert.Equal(t, models.SizeMedium, m.Size)
	assert.Equal(t, models.TypeHumanoid, m.Type)
	assert.Equal(t, models.AlignmentUnaligned, m.Alignment)
	assert.Zero(t, m.ID)
}

func TestMappingRoundTripKeepsEntryOrder(t *testing.T) {
	id := uint(12)
	dto := models.NewMonsterTemplate()
	dto.ID = &id
	dto.Traits = []models.TraitDTO{{Name: "Keen Smell"}, {Name: "Pack Tactics"}}
	dto.Actions = []models.TraitDTO{{Name: "Bite"}}
	dto.Reactions = []models.TraitDTO{{Name: "Parry"}}

	m := services.FromDTO(dto)
	require.Len(t, m.Entries, 4)
	assert.Equal(t, uint(12), m.ID)

	// reverse storage order; reads must still come back by position
	for i, j := 0, len(m.Entries)-1; i < j; i, j = i+1, j-1 {
		m.Entries[i], m.Entries[j] = m.Entries[j], m.Entries[i]
	}

	back := services.ToDTO(m)
	require.NotNil(t, back.ID)
	assert.Equal(t, id, *back.ID)
	assert.Equal(t, dto.Traits, back.Traits)
	assert.Equal(t, dto.Actions, back.Actions)
	assert.Equal(t, dto.Reactions, back.Reactions)
}

func TestToDTOOmitsIDWhenNotPersisted(t *testing.T) {
	dto := services.ToDTO(models.Monster{Name: "Draft", Cha: 3})
	assert.Nil(t, dto.ID)
	assert.Equal(t, -4, dto.Cha.Modifier)
	assert.NotNil(t, dto.Traits)
	assert.Empty(t, dto.Traits)
}
