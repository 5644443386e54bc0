// Package ratio implements exact width:height aspect ratios.
//
// Pixel counts coming off a sensor rarely produce a clean ratio, so ratios
// built from image dimensions are snapped to the closest fraction whose
// denominator does not exceed MaxDenominator. All comparisons are done on
// integers; nothing here goes through floating point.
package ratio

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/menta2k/aspect-normalizer/pkg/errors"
)

// MaxDenominator bounds the approximation applied by FromDimensions
const MaxDenominator = 100

// AspectRatio is a reduced, strictly positive fraction num/den
type AspectRatio struct {
	num int64
	den int64
}

// Common aspect ratios
var (
	Square    = AspectRatio{1, 1}
	Landscape = AspectRatio{4, 3}
	Portrait  = AspectRatio{3, 4}
)

// New creates a reduced ratio from a numerator and a denominator
func New(num, den int64) (AspectRatio, error) {
	if num <= 0 || den <= 0 {
		return AspectRatio{}, apperrors.NewDegenerateSizeError(int(num), int(den))
	}
	g := gcd(num, den)
	return AspectRatio{num / g, den / g}, nil
}

// MustNew is like New but panics on a non-positive term
func MustNew(num, den int64) AspectRatio {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromDimensions returns the ratio width/height rounded to the nearest
// fraction with a denominator of at most MaxDenominator.
//
// A ratio too small to round to anything but zero is clamped to
// 1/MaxDenominator so the result stays positive. FromDimensions(w, h) and
// FromDimensions(h, w) are reciprocals only where both roundings agree:
// 4000x2996 gives 131/98 while 2996x4000 gives 3/4.
func FromDimensions(width, height int) (AspectRatio, error) {
	if width <= 0 || height <= 0 {
		return AspectRatio{}, apperrors.NewDegenerateSizeError(width, height)
	}
	r := limitDenominator(int64(width), int64(height), MaxDenominator)
	if r.num == 0 {
		return AspectRatio{1, MaxDenominator}, nil
	}
	return r, nil
}

// Parse reads "4:3" or "4/3"
func Parse(s string) (AspectRatio, error) {
	sep := strings.IndexAny(s, ":/")
	if sep < 0 {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: expected W:H", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(s[:sep]), 10, 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(s[sep+1:]), 10, 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	r, err := New(num, den)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	return r, nil
}

// Num returns the reduced numerator
func (r AspectRatio) Num() int64 { return r.num }

// Den returns the reduced denominator
func (r AspectRatio) Den() int64 { return r.den }

// IsZero reports whether r is the zero value, which is not a valid ratio
func (r AspectRatio) IsZero() bool { return r.den == 0 }

// Reciprocal returns den/num
func (r AspectRatio) Reciprocal() AspectRatio {
	return AspectRatio{r.den, r.num}
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to or
// greater than o
func (r AspectRatio) Cmp(o AspectRatio) int {
	lhs, rhs := r.num*o.den, o.num*r.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both ratios are the same fraction
func (r AspectRatio) Equal(o AspectRatio) bool { return r.Cmp(o) == 0 }

// Less reports whether r < o
func (r AspectRatio) Less(o AspectRatio) bool { return r.Cmp(o) < 0 }

// Greater reports whether r > o
func (r AspectRatio) Greater(o AspectRatio) bool { return r.Cmp(o) > 0 }

// IsLandscape reports whether r > 1. A square ratio is not landscape.
func (r AspectRatio) IsLandscape() bool { return r.num > r.den }

// MulFloor returns floor(n * r)
func (r AspectRatio) MulFloor(n int) int {
	return int(int64(n) * r.num / r.den)
}

// DivFloor returns floor(n / r)
func (r AspectRatio) DivFloor(n int) int {
	return int(int64(n) * r.den / r.num)
}

// Float64 returns the nearest float, for display only
func (r AspectRatio) Float64() float64 {
	if r.den == 0 {
		return 0
	}
	return float64(r.num) / float64(r.den)
}

// String formats the ratio as "num/den"
func (r AspectRatio) String() string {
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// limitDenominator finds the closest fraction to n/d with a denominator of
// at most max, walking the continued fraction expansion of n/d.
func limitDenominator(n, d, max int64) AspectRatio {
	g := gcd(n, d)
	n, d = n/g, d/g
	if d <= max {
		return AspectRatio{n, d}
	}

	p0, q0, p1, q1 := int64(0), int64(1), int64(1), int64(0)
	nn, dd := n, d
	for {
		a := nn / dd
		q2 := q0 + a*q1
		if q2 > max {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q2
		nn, dd = dd, nn-a*dd
	}

	k := (max - q0) / q1
	lowP, lowQ := p0+k*p1, q0+k*q1

	// |p/q - n/d| compared across both candidates with the common d cancelled
	errConvergent := abs(p1*d-n*q1) * lowQ
	errSemi := abs(lowP*d-n*lowQ) * q1
	if errConvergent <= errSemi {
		return AspectRatio{p1, q1}
	}
	g = gcd(lowP, lowQ)
	return AspectRatio{lowP / g, lowQ / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
