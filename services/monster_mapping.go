// services/monster_mapping.go
package services

import (
	"deeper-dungeons/models"
)

// ToDTO converts a stored monster to its wire shape, deriving every ability
// modifier from the raw score.
func ToDTO(m models.Monster) models.MonsterDTO {
	var id *uint
	if m.ID != 0 {
		v := m.ID
		id = &v
	}

	return models.MonsterDTO{
		ID:        id,
		Name:      m.Name,
		Size:      m.Size,
		Type:      m.Type,
		Alignment: m.Alignment,
		ArmorClass: models.ArmorClassDTO{
			Value:       m.ArmorClassValue,
			Description: m.ArmorClassDescription,
		},
		HitPoints:             m.HitPoints,
		Speed:                 m.Speed,
		Str:                   models.NewStat(m.Str),
		Dex:                   models.NewStat(m.Dex),
		Con:                   models.NewStat(m.Con),
		Int:                   models.NewStat(m.Int),
		Wis:                   models.NewStat(m.Wis),
		Cha:                   models.NewStat(m.Cha),
		SavingThrows:          m.SavingThrows,
		Skills:                m.Skills,
		Senses:                m.Senses,
		Languages:             m.Languages,
		Challenge:             m.Challenge,
		ImageURL:              m.ImageURL,
		ImagePrompt:           m.ImagePrompt,
		ImagePosition:         m.ImagePosition,
		ImageScale:            m.ImageScale,
		DeeperDungeonsVersion: m.DeeperDungeonsVersion,
		Traits:                entriesToDTO(m.EntriesOf(models.EntryKindTrait)),
		Actions:               entriesToDTO(m.EntriesOf(models.EntryKindAction)),
		Reactions:             entriesToDTO(m.EntriesOf(models.EntryKindReaction)),
	}
}

// FromDTO converts a wire monster to its stored shape. Client-sent modifiers
// are dropped. Missing enums fall back to the template values, an unknown
// image position to "top" and a non-positive image scale to 1.
func FromDTO(dto models.MonsterDTO) models.Monster {
	m := models.Monster{
		Name:                  dto.Name,
		Size:                  dto.Size,
		Type:                  dto.Type,
		Alignment:             dto.Alignment,
		ArmorClassValue:       dto.ArmorClass.Value,
		ArmorClassDescription: dto.ArmorClass.Description,
		HitPoints:             dto.HitPoints,
		Speed:                 dto.Speed,
		Str:                   dto.Str.Value,
		Dex:                   dto.Dex.Value,
		Con:                   dto.Con.Value,
		Int:                   dto.Int.Value,
		Wis:                   dto.Wis.Value,
		Cha:                   dto.Cha.Value,
		SavingThrows:          dto.SavingThrows,
		Skills:                dto.Skills,
		Senses:                dto.Senses,
		Languages:             dto.Languages,
		Challenge:             dto.Challenge,
		ImageURL:              dto.ImageURL,
		ImagePrompt:           dto.ImagePrompt,
		ImagePosition:         dto.ImagePosition,
		ImageScale:            dto.ImageScale,
		DeeperDungeonsVersion: dto.DeeperDungeonsVersion,
	}
	if dto.ID != nil {
		m.ID = *dto.ID
	}

	if !m.Size.Valid() {
		m.Size = models.SizeMedium
	}
	if !m.Type.Valid() {
		m.Type = models.TypeHumanoid
	}
	if !m.Alignment.Valid() {
		m.Alignment = models.AlignmentUnaligned
	}
	if !models.ValidImagePosition(m.ImagePosition) {
		m.ImagePosition = models.ImagePositionTop
	}
	if m.ImageScale <= 0 {
		m.ImageScale = 1.0
	}

	m.Entries = append(m.Entries, entriesFromDTO(models.EntryKindTrait, dto.Traits)...)
	m.Entries = append(m.Entries, entriesFromDTO(models.EntryKindAction, dto.Actions)...)
	m.Entries = append(m.Entries, entriesFromDTO(models.EntryKindReaction, dto.Reactions)...)
	return m
}

func entriesToDTO(entries []models.MonsterEntry) []models.TraitDTO {
	out := make([]models.TraitDTO, len(entries))
	for i, e := range entries {
		out[i] = models.TraitDTO{Name: e.Name, Description: e.Description}
	}
	return out
}

func entriesFromDTO(kind string, traits []models.TraitDTO) []models.MonsterEntry {
	out := make([]models.MonsterEntry, len(traits))
	for i, t := range traits {
		out[i] = models.MonsterEntry{
			Kind:        kind,
			Position:    i,
			Name:        t.Name,
			Description: t.Description,
		}
	}
	return out
}
