package conditional

import "testing"

func TestSelect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		condition  bool
		condition2 bool
		expected   int
	}{
		{"first condition wins", true, false, 5},
		{"first condition wins over second", true, true, 5},
		{"second condition", false, true, 7},
		{"fallback", false, false, 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Select(tt.condition, tt.condition2); got != tt.expected {
				t.Errorf("Select(%v, %v) = %d, want %d", tt.condition, tt.condition2, got, tt.expected)
			}
		})
	}
}

func TestLine(t *testing.T) {
	t.Parallel()
	if got := Line(Select(true, false)); got != "number is: 5" {
		t.Errorf("Line() = %q, want %q", got, "number is: 5")
	}
}
