package players

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"Portiere", RolePortiere, true},
		{"attaccante", RoleAttaccante, true},
		{"  DIFENSORE  ", RoleDifensore, true},
		{"centrocampista", RoleCentrocampista, true},
		{"libero", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPrecedenceOrdersGoalkeepersFirst(t *testing.T) {
	if Precedence(RolePortiere) >= Precedence(RoleDifensore) {
		t.Fatalf("expected goalkeepers before defenders")
	}
	if Precedence(RoleCentrocampista) >= Precedence(RoleAttaccante) {
		t.Fatalf("expected midfielders before forwards")
	}
	if Precedence(Role("boh")) != len(Roles()) {
		t.Fatalf("expected unknown roles to sort last")
	}
}

func TestSortByRoleThenName(t *testing.T) {
	items := []Player{
		{ID: "1", Name: "Zeta Attack", Role: RoleAttaccante},
		{ID: "2", Name: "Beta Keeper", Role: RolePortiere},
		{ID: "3", Name: "Alfa Attack", Role: RoleAttaccante},
		{ID: "4", Name: "Gamma Mid", Role: RoleCentrocampista},
	}
	SortByRoleThenName(items)

	wantOrder := []string{"2", "4", "3", "1"}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, items[i].ID, want)
		}
	}
}

func TestSortByNameIsCaseInsensitive(t *testing.T) {
	items := []Player{
		{ID: "1", Name: "mario Rossi"},
		{ID: "2", Name: "Luca Bianchi"},
	}
	SortByName(items)
	if items[0].ID != "2" {
		t.Fatalf("expected Bianchi first, got %s", items[0].Name)
	}
}
