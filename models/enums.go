// models/enums.go
package models

import (
	"fmt"
)

// MonsterSize is encoded on the wire by name. Declaration order is the ordinal
// used by size range filters.
type MonsterSize string

const (
	SizeTiny       MonsterSize = "Tiny"
	SizeSmall      MonsterSize = "Small"
	SizeMedium     MonsterSize = "Medium"
	SizeLarge      MonsterSize = "Large"
	SizeHuge       MonsterSize = "Huge"
	SizeGargantuan MonsterSize = "Gargantuan"
)

var monsterSizes = []MonsterSize{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}

// MonsterSizes returns every size, smallest first.
func MonsterSizes() []MonsterSize {
	return append([]MonsterSize(nil), monsterSizes...)
}

// Label is the display text. Sizes display as their name.
func (s MonsterSize) Label() string { return string(s) }

// Ordinal returns the position of s in MonsterSizes, or -1 for an unknown size.
func (s MonsterSize) Ordinal() int {
	for i, v := range monsterSizes {
		if v == s {
			return i
		}
	}
	return -1
}

func (s MonsterSize) Valid() bool { return s.Ordinal() >= 0 }

func (s MonsterSize) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown monster size %q", string(s))
	}
	return []byte(s), nil
}

func (s *MonsterSize) UnmarshalText(b []byte) error {
	v := MonsterSize(b)
	if !v.Valid() {
		return fmt.Errorf("unknown monster size %q", string(b))
	}
	*s = v
	return nil
}

// SizeByLabel looks a size up by its display label.
func SizeByLabel(label string) (MonsterSize, bool) {
	for _, v := range monsterSizes {
		if v.Label() == label {
			return v, true
		}
	}
	return "", false
}

// MonsterType is the creature type. Labels are the lowercase form used in stat
// blocks ("beast", "monstrosity").
type MonsterType string

const (
	TypeAberration  MonsterType = "Aberration"
	TypeBeast       MonsterType = "Beast"
	TypeCelestial   MonsterType = "Celestial"
	TypeConstruct   MonsterType = "Construct"
	TypeDragon      MonsterType = "Dragon"
	TypeElemental   MonsterType = "Elemental"
	TypeFey         MonsterType = "Fey"
	TypeFiend       MonsterType = "Fiend"
	TypeGiant       MonsterType = "Giant"
	TypeHumanoid    MonsterType = "Humanoid"
	TypeMonstrosity MonsterType = "Monstrosity"
	TypeOoze        MonsterType = "Ooze"
	TypePlant       MonsterType = "Plant"
	TypeUndead      MonsterType = "Undead"
)

var monsterTypeLabels = map[MonsterType]string{
	TypeAberration:  "aberration",
	TypeBeast:       "beast",
	TypeCelestial:   "celestial",
	TypeConstruct:   "construct",
	TypeDragon:      "dragon",
	TypeElemental:   "elemental",
	TypeFey:         "fey",
	TypeFiend:       "fiend",
	TypeGiant:       "giant",
	TypeHumanoid:    "humanoid",
	TypeMonstrosity: "monstrosity",
	TypeOoze:        "ooze",
	TypePlant:       "plant",
	TypeUndead:      "undead",
}

func (t MonsterType) Label() string { return monsterTypeLabels[t] }

func (t MonsterType) Valid() bool {
	_, ok := monsterTypeLabels[t]
	return ok
}

func (t MonsterType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown monster type %q", string(t))
	}
	return []byte(t), nil
}

func (t *MonsterType) UnmarshalText(b []byte) error {
	v := MonsterType(b)
	if !v.Valid() {
		return fmt.Errorf("unknown monster type %q", string(b))
	}
	*t = v
	return nil
}

// Alignment is one of the eleven stat block alignments.
type Alignment string

const (
	AlignmentLawfulGood     Alignment = "LawfulGood"
	AlignmentNeutralGood    Alignment = "NeutralGood"
	AlignmentChaoticGood    Alignment = "ChaoticGood"
	AlignmentLawfulNeutral  Alignment = "LawfulNeutral"
	AlignmentTrueNeutral    Alignment = "TrueNeutral"
	AlignmentChaoticNeutral Alignment = "ChaoticNeutral"
	AlignmentLawfulEvil     Alignment = "LawfulEvil"
	AlignmentNeutralEvil    Alignment = "NeutralEvil"
	AlignmentChaoticEvil    Alignment = "ChaoticEvil"
	AlignmentUnaligned      Alignment = "Unaligned"
	AlignmentAny            Alignment = "AnyAlignment"
)

var alignmentLabels = map[Alignment]string{
	AlignmentLawfulGood:     "lawful good",
	AlignmentNeutralGood:    "neutral good",
	AlignmentChaoticGood:    "chaotic good",
	AlignmentLawfulNeutral:  "lawful neutral",
	AlignmentTrueNeutral:    "neutral",
	AlignmentChaoticNeutral: "chaotic neutral",
	AlignmentLawfulEvil:     "lawful evil",
	AlignmentNeutralEvil:    "neutral evil",
	AlignmentChaoticEvil:    "chaotic evil",
	AlignmentUnaligned:      "unaligned",
	AlignmentAny:            "any alignment",
}

func (a Alignment) Label() string { return alignmentLabels[a] }

func (a Alignment) Valid() bool {
	_, ok := alignmentLabels[a]
	return ok
}

func (a Alignment) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("unknown alignment %q", string(a))
	}
	return []byte(a), nil
}

func (a *Alignment) UnmarshalText(b []byte) error {
	v := Alignment(b)
	if !v.Valid() {
		return fmt.Errorf("unknown alignment %q", string(b))
	}
	*a = v
	return nil
}

// Image anchor positions for the stat block portrait.
const (
	ImagePositionTop    = "top"
	ImagePositionLeft   = "left"
	ImagePositionRight  = "right"
	ImagePositionBottom = "bottom"
)

// ValidImagePosition reports whether p is one of the four anchors.
func ValidImagePosition(p string) bool {
	switch p {
	case ImagePositionTop, ImagePositionLeft, ImagePositionRight, ImagePositionBottom:
		return true
	}
	return false
}
