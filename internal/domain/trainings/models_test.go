package trainings

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  AttendanceStatus
		ok    bool
	}{
		{"present", StatusPresent, true},
		{"ABSENT", StatusAbsent, true},
		{" justified ", StatusJustified, true},
		{"late", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseStatus(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseStatus(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
