// models/monster_dto.go
package models

import "encoding/json"

// DefaultAbilityScore fills ability scores and armor class missing from a
// decoded document.
const DefaultAbilityScore = 10

// MonsterDTO is the wire shape shared with the editor. Field names are the
// JSON contract; unknown keys are ignored on decode.
type MonsterDTO struct {
	ID                    *uint         `json:"id"`
	Name                  string        `json:"name"`
	Size                  MonsterSize   `json:"size"`
	Type                  MonsterType   `json:"type"`
	Alignment             Alignment     `json:"alignment"`
	ArmorClass            ArmorClassDTO `json:"armorClass"`
	HitPoints             string        `json:"hitPoints"`
	Speed                 string        `json:"speed"`
	Str                   StatDTO       `json:"str"`
	Dex                   StatDTO       `json:"dex"`
	Con                   StatDTO       `json:"con"`
	Int                   StatDTO       `json:"int"`
	Wis                   StatDTO       `json:"wis"`
	Cha                   StatDTO       `json:"cha"`
	SavingThrows          *string       `json:"savingThrows"`
	Skills                *string       `json:"skills"`
	Senses                string        `json:"senses"`
	Languages             string        `json:"languages"`
	Challenge             string        `json:"challenge"`
	ImageURL              *string       `json:"imageUrl"`
	ImagePrompt           *string       `json:"imagePrompt"`
	ImagePosition         string        `json:"imagePosition"`
	ImageScale            float64       `json:"imageScale"`
	DeeperDungeonsVersion string        `json:"deeperDungeonsVersion"`
	Traits                []TraitDTO    `json:"traits"`
	Actions               []TraitDTO    `json:"actions"`
	Reactions             []TraitDTO    `json:"reactions"`
}

type ArmorClassDTO struct {
	Value       int     `json:"value"`
	Description *string `json:"description"`
}

// StatDTO pairs a raw ability score with its modifier. The modifier is
// output-only; values sent by clients are recomputed.
type StatDTO struct {
	Value    int `json:"value"`
	Modifier int `json:"modifier"`
}

type TraitDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AbilityModifier is floor((score-10)/2), rounding toward negative infinity.
func AbilityModifier(score int) int {
	d := score - 10
	q := d / 2
	if d%2 != 0 && d < 0 {
		q--
	}
	return q
}

// NewStat builds the wire pair for a raw score.
func NewStat(score int) StatDTO {
	return StatDTO{Value: score, Modifier: AbilityModifier(score)}
}

// UnmarshalJSON decodes a monster document. Absent ability scores and armor
// class decode as DefaultAbilityScore; an explicit 0 is kept.
func (d *MonsterDTO) UnmarshalJSON(b []byte) error {
	type plain MonsterDTO
	p := plain{
		ArmorClass: ArmorClassDTO{Value: DefaultAbilityScore},
		Str:        NewStat(DefaultAbilityScore),
		Dex:        NewStat(DefaultAbilityScore),
		Con:        NewStat(DefaultAbilityScore),
		Int:        NewStat(DefaultAbilityScore),
		Wis:        NewStat(DefaultAbilityScore),
		Cha:        NewStat(DefaultAbilityScore),
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = MonsterDTO(p)
	return nil
}

// NewMonsterTemplate is the blank stat block the editor starts from.
func NewMonsterTemplate() MonsterDTO {
	return MonsterDTO{
		Name:          "New Monster",
		Size:          SizeMedium,
		Type:          TypeHumanoid,
		Alignment:     AlignmentUnaligned,
		ArmorClass:    ArmorClassDTO{Value: 10},
		HitPoints:     "10 (2d8 + 2)",
		Speed:         "30 ft.",
		Str:           NewStat(10),
		Dex:           NewStat(10),
		Con:           NewStat(10),
		Int:           NewStat(10),
		Wis:           NewStat(10),
		Cha:           NewStat(10),
		Senses:        "passive Perception 10",
		Languages:     "-",
		Challenge:     "0 (10 XP)",
		ImagePosition: ImagePositionTop,
		ImageScale:    1.0,
		Traits:        []TraitDTO{},
		Actions:       []TraitDTO{},
		Reactions:     []TraitDTO{},
	}
}
