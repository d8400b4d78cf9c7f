package players

import (
	"sort"
	"strings"
)

// Role is one of the fixed positions a player can cover.
type Role string

const (
	RolePortiere       Role = "Portiere"
	RoleDifensore      Role = "Difensore"
	RoleCentrocampista Role = "Centrocampista"
	RoleAttaccante     Role = "Attaccante"
)

// rolePrecedence drives roster and squad ordering: goalkeepers first,
// forwards last.
var rolePrecedence = map[Role]int{
	RolePortiere:       0,
	RoleDifensore:      1,
	RoleCentrocampista: 2,
	RoleAttaccante:     3,
}

// Roles lists the valid roles in precedence order.
func Roles() []Role {
	return []Role{RolePortiere, RoleDifensore, RoleCentrocampista, RoleAttaccante}
}

// ParseRole matches a role name case-insensitively against the fixed set.
func ParseRole(value string) (Role, bool) {
	trimmed := strings.TrimSpace(value)
	for _, r := range Roles() {
		if strings.EqualFold(trimmed, string(r)) {
			return r, true
		}
	}
	return "", false
}

// Precedence returns the sort rank for a role. Unknown roles sort last.
func Precedence(r Role) int {
	if p, ok := rolePrecedence[r]; ok {
		return p
	}
	return len(rolePrecedence)
}

// Player is the canonical roster entry.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	BirthYear string `json:"birthYear"`
	Number    string `json:"number,omitempty"`
}

// SortByName orders players by name ascending (case-insensitive).
func SortByName(items []Player) {
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// SortByRoleThenName orders players by role precedence, then name ascending.
func SortByRoleThenName(items []Player) {
	sort.Slice(items, func(i, j int) bool {
		pi, pj := Precedence(items[i].Role), Precedence(items[j].Role)
		if pi != pj {
			return pi < pj
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}
