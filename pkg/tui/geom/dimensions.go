// ABOUTME: Dimensions is a non-negative width x height pair used for layout budgets
// ABOUTME: All arithmetic saturates at zero; Intersect/Union are component-wise min/max

package geom

import (
	"fmt"
	"math"
)

// Unbounded is the size used for an axis with no maximum.
const Unbounded = math.MaxInt

// Dimensions is a width x height in terminal cells. Both fields are
// non-negative; constructors and arithmetic clamp at zero.
type Dimensions struct {
	Width  int
	Height int
}

// New returns Dimensions with negative inputs clamped to zero.
func New(width, height int) Dimensions {
	return Dimensions{Width: clamp(width), Height: clamp(height)}
}

// IsUnbounded reports whether an axis of size n means "no maximum". Sizes
// derived from Unbounded by subtracting borders or padding still count.
func IsUnbounded(n int) bool {
	return n >= Unbounded/2
}

// UnboundedDimensions is the identity for Intersect.
func UnboundedDimensions() Dimensions {
	return Dimensions{Width: Unbounded, Height: Unbounded}
}

// Intersect returns the component-wise minimum of d and o.
func (d Dimensions) Intersect(o Dimensions) Dimensions {
	return Dimensions{Width: min(d.Width, o.Width), Height: min(d.Height, o.Height)}
}

// Union returns the component-wise maximum of d and o.
func (d Dimensions) Union(o Dimensions) Dimensions {
	return Dimensions{Width: max(d.Width, o.Width), Height: max(d.Height, o.Height)}
}

// Shrink subtracts width and height, saturating at zero.
func (d Dimensions) Shrink(width, height int) Dimensions {
	return Dimensions{Width: SaturatingSub(d.Width, width), Height: SaturatingSub(d.Height, height)}
}

// Sub subtracts o component-wise, saturating at zero.
func (d Dimensions) Sub(o Dimensions) Dimensions {
	return d.Shrink(o.Width, o.Height)
}

// Fits reports whether d is no larger than o on both axes.
func (d Dimensions) Fits(o Dimensions) bool {
	return d.Width <= o.Width && d.Height <= o.Height
}

// IsZero reports whether either axis is empty.
func (d Dimensions) IsZero() bool {
	return d.Width == 0 || d.Height == 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// SaturatingSub returns a-b, or 0 if that would be negative.
func SaturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
