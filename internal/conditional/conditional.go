// Package conditional demonstrates first-true-wins selection between
// three fixed values.
package conditional

import "fmt"

// Values selected by Select.
const (
	FirstValue    = 5
	SecondValue   = 7
	FallbackValue = 6
)

// Select returns FirstValue when condition holds, otherwise SecondValue
// when condition2 holds, otherwise FallbackValue.
func Select(condition, condition2 bool) int {
	switch {
	case condition:
		return FirstValue
	case condition2:
		return SecondValue
	}
	return FallbackValue
}

// Line renders the demo output for a selected number.
func Line(number int) string {
	return fmt.Sprintf("number is: %d", number)
}
