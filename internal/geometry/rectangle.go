// Package geometry defines the Rectangle record used by the demo driver.
package geometry

import "strconv"

// Rectangle is an axis-aligned rectangle with unsigned dimensions.
// Any value, including zero, is accepted.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Area returns Width * Height. The product wraps around modulo 2^32 when it
// exceeds the uint32 range.
func (r Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// Line renders the demo output for an area.
func Line(area uint32) string {
	return strconv.FormatUint(uint64(area), 10)
}
