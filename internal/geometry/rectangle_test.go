package geometry

import (
	"fmt"
	"math"
	"testing"
)

func TestRectangle_Area(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		rect     Rectangle
		expected uint32
	}{
		{"demo rectangle", Rectangle{Width: 10, Height: 5}, 50},
		{"zero width", Rectangle{Width: 0, Height: 7}, 0},
		{"zero height", Rectangle{Width: 7, Height: 0}, 0},
		{"unit square", Rectangle{Width: 1, Height: 1}, 1},
		{"max width times one", Rectangle{Width: math.MaxUint32, Height: 1}, math.MaxUint32},
		{"overflow wraps", Rectangle{Width: 1 << 16, Height: 1 << 16}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.rect.Area(); got != tt.expected {
				t.Errorf("%+v.Area() = %d, want %d", tt.rect, got, tt.expected)
			}
		})
	}
}

func ExampleRectangle_Area() {
	rect := Rectangle{Width: 10, Height: 5}
	fmt.Println(Line(rect.Area()))
	// Output: 50
}
