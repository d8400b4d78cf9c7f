package stats

import (
	"sort"
	"strings"
)

// StatLine holds the per-match counters for one player. All fields are
// non-negative.
type StatLine struct {
	Goals         int `json:"goals"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	MinutesPlayed int `json:"minutesPlayed"`
}

// Add returns the element-wise sum of two stat lines.
func (s StatLine) Add(other StatLine) StatLine {
	return StatLine{
		Goals:         s.Goals + other.Goals,
		YellowCards:   s.YellowCards + other.YellowCards,
		RedCards:      s.RedCards + other.RedCards,
		MinutesPlayed: s.MinutesPlayed + other.MinutesPlayed,
	}
}

// IsZero reports whether every counter is zero.
func (s StatLine) IsZero() bool {
	return s == StatLine{}
}

// Field names accepted by stat upserts and sort keys.
const (
	FieldGoals         = "goals"
	FieldYellowCards   = "yellowCards"
	FieldRedCards      = "redCards"
	FieldMinutesPlayed = "minutesPlayed"
)

// ValidField reports whether name is one of the four counters.
func ValidField(name string) bool {
	switch name {
	case FieldGoals, FieldYellowCards, FieldRedCards, FieldMinutesPlayed:
		return true
	}
	return false
}

// PlayerTotals is a season aggregate row for one roster player.
type PlayerTotals struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	StatLine
}

// SortKey selects the active column for statistics tables.
type SortKey string

const (
	SortByName    SortKey = "name"
	SortByGoals   SortKey = FieldGoals
	SortByYellow  SortKey = FieldYellowCards
	SortByRed     SortKey = FieldRedCards
	SortByMinutes SortKey = FieldMinutesPlayed
)

// ParseSortKey matches a sort key, defaulting to name.
func ParseSortKey(value string) (SortKey, bool) {
	switch SortKey(value) {
	case SortByName, SortByGoals, SortByYellow, SortByRed, SortByMinutes:
		return SortKey(value), true
	}
	return SortByName, false
}

// SortState tracks the single active sort column and its direction.
type SortState struct {
	Key        SortKey `json:"key"`
	Descending bool    `json:"descending"`
}

// DefaultSortState sorts by name ascending.
func DefaultSortState() SortState {
	return SortState{Key: SortByName}
}

// Next returns the state after selecting key: re-selecting the active key
// flips the direction, a new key resets to its default direction (descending
// for numeric columns, ascending for name).
func (s SortState) Next(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Descending: !s.Descending}
	}
	return SortState{Key: key, Descending: key != SortByName}
}

// SortTotals orders rows in place according to the sort state. Ties on
// numeric columns fall back to name ascending so the order is stable.
func SortTotals(rows []PlayerTotals, state SortState) {
	value := func(r PlayerTotals) int {
		switch state.Key {
		case SortByGoals:
			return r.Goals
		case SortByYellow:
			return r.YellowCards
		case SortByRed:
			return r.RedCards
		case SortByMinutes:
			return r.MinutesPlayed
		}
		return 0
	}

	sort.Slice(rows, func(i, j int) bool {
		if state.Key == SortByName {
			less := strings.ToLower(rows[i].PlayerName) < strings.ToLower(rows[j].PlayerName)
			if state.Descending {
				return !less
			}
			return less
		}
		vi, vj := value(rows[i]), value(rows[j])
		if vi != vj {
			if state.Descending {
				return vi > vj
			}
			return vi < vj
		}
		return strings.ToLower(rows[i].PlayerName) < strings.ToLower(rows[j].PlayerName)
	})
}
