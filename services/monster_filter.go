// services/monster_filter.go
package services

import (
	"math"
	"strconv"
	"strings"

	"deeper-dungeons/models"

	"golang.org/x/text/cases"
)

// MonsterFilter mirrors the editor's list filter. Zero values match everything.
type MonsterFilter struct {
	Name    string
	Type    string
	MinSize string
	MaxSize string
	MinCR   string
	MaxCR   string
}

// pluralTypes maps the plural labels shown in the editor to stored labels.
var pluralTypes = map[string]string{
	"aberrations":   "aberration",
	"beasts":        "beast",
	"celestials":    "celestial",
	"constructs":    "construct",
	"dragons":       "dragon",
	"elementals":    "elemental",
	"fiends":        "fiend",
	"giants":        "giant",
	"humanoids":     "humanoid",
	"monstrosities": "monstrosity",
	"oozes":         "ooze",
	"plants":        "plant",
}

// containsFold is a Unicode case-insensitive substring test. Casers keep
// state, so each call gets its own.
func containsFold(s, sub string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(sub))
}

// IsZero reports whether f has no criteria set.
func (f MonsterFilter) IsZero() bool {
	return f == MonsterFilter{}
}

// Match reports whether the monster passes every criterion.
func (f MonsterFilter) Match(dto models.MonsterDTO) bool {
	if f.Name != "" && !containsFold(dto.Name, f.Name) {
		return false
	}

	if t := strings.TrimSpace(f.Type); t != "" {
		normalized := t
		if singular, ok := pluralTypes[strings.ToLower(t)]; ok {
			normalized = singular
		}
		if !containsFold(dto.Type.Label(), normalized) {
			return false
		}
	}

	minSize, maxSize := 0, len(models.MonsterSizes())-1
	if s, ok := models.SizeByLabel(f.MinSize); ok {
		minSize = s.Ordinal()
	}
	if s, ok := models.SizeByLabel(f.MaxSize); ok {
		maxSize = s.Ordinal()
	}
	if o := dto.Size.Ordinal(); o < minSize || o > maxSize {
		return false
	}

	minCR, maxCR := 0.0, math.Inf(1)
	if f.MinCR != "" {
		minCR = ParseChallengeRating(f.MinCR)
	}
	if f.MaxCR != "" {
		maxCR = ParseChallengeRating(f.MaxCR)
	}
	cr := ParseChallengeRating(dto.Challenge)
	return cr >= minCR && cr <= maxCR
}

// Apply returns the monsters that match, keeping their order.
func (f MonsterFilter) Apply(monsters []models.MonsterDTO) []models.MonsterDTO {
	if f.IsZero() {
		return monsters
	}
	out := make([]models.MonsterDTO, 0, len(monsters))
	for _, m := range monsters {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// ParseChallengeRating reads the numeric rating from the front of a challenge
// string such as "1/4 (50 XP)". Unparsable input is 0.
func ParseChallengeRating(cr string) float64 {
	fields := strings.Fields(cr)
	if len(fields) == 0 {
		return 0
	}
	switch fields[0] {
	case "1/8":
		return 0.125
	case "1/4":
		return 0.25
	case "1/2":
		return 0.5
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}
