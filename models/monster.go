// models/monster.go
package models

import (
	"sort"
	"time"
)

// Entry kinds stored in monster_entries.kind.
const (
	EntryKindTrait    = "trait"
	EntryKindAction   = "action"
	EntryKindReaction = "reaction"
)

// Monster is the persisted stat block. Ability modifiers are never stored;
// they are derived from the raw scores on every read.
type Monster struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	Name      string      `gorm:"not null;default:''"`
	Size      MonsterSize `gorm:"type:varchar(16);not null"`
	Type      MonsterType `gorm:"type:varchar(16);not null"`
	Alignment Alignment   `gorm:"type:varchar(24);not null"`

	ArmorClassValue       int `gorm:"not null"`
	ArmorClassDescription *string
	HitPoints             string
	Speed                 string

	Str int `gorm:"not null"`
	Dex int `gorm:"not null"`
	Con int `gorm:"not null"`
	Int int `gorm:"column:int_val;not null"` // "int" is reserved in most SQL dialects
	Wis int `gorm:"not null"`
	Cha int `gorm:"not null"`

	SavingThrows *string
	Skills       *string
	Senses       string
	Languages    string
	Challenge    string

	// 🖼️ Portrait
	ImageURL      *string // e.g., "/images/monster_7.png"
	ImagePrompt   *string `gorm:"type:text"`
	ImagePosition string  `gorm:"type:varchar(8);not null;default:'top'"`
	ImageScale    float64 `gorm:"not null"`

	DeeperDungeonsVersion string

	// Traits, actions and reactions share one table, ordered by Position within Kind.
	Entries []MonsterEntry `gorm:"foreignKey:MonsterID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonsterEntry is one trait, action or reaction line of a stat block.
type MonsterEntry struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	MonsterID   uint   `gorm:"index;not null"`
	Kind        string `gorm:"type:varchar(16);index;not null"`
	Position    int    `gorm:"not null"`
	Name        string
	Description string `gorm:"type:text"`
}

// EntriesOf returns the entries of the given kind in stored order.
func (m *Monster) EntriesOf(kind string) []MonsterEntry {
	out := make([]MonsterEntry, 0)
	for _, e := range m.Entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}
