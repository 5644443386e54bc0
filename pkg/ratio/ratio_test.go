package ratio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/menta2k/aspect-normalizer/pkg/errors"
)

func TestFromDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		num, den      int64
	}{
		{"exact 4:3", 4000, 3000, 4, 3},
		{"exact 3:4", 3000, 4000, 3, 4},
		{"two to one", 6000, 3000, 2, 1},
		{"half", 3000, 6000, 1, 2},
		{"square", 1000, 1000, 1, 1},
		{"full hd", 1920, 1080, 16, 9},
		{"sensor noise snaps to 4:3", 4001, 3000, 4, 3},
		{"padded odd width", 1921, 1440, 4, 3},
		{"portrait sensor noise", 2999, 4000, 3, 4},
		{"bounded approximation", 314159, 100000, 311, 99},
		{"small denominator kept exact", 10000, 3, 10000, 3},
		{"tiny ratio clamped positive", 3, 10000, 1, 100},
		{"denominator bounded below one", 100000, 314159, 7, 22},
		{"portrait near 3:4 snaps", 2996, 4000, 3, 4},
		{"landscape near 4:3 kept apart", 4000, 2996, 131, 98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromDimensions(tt.width, tt.height)
			require.NoError(t, err)
			assert.Equal(t, tt.num, r.Num())
			assert.Equal(t, tt.den, r.Den())
		})
	}
}

func TestFromDimensionsDegenerate(t *testing.T) {
	sizes := [][2]int{{100, 0}, {0, 100}, {0, 0}, {-4, 3}, {4, -3}}
	for _, sz := range sizes {
		_, err := FromDimensions(sz[0], sz[1])
		require.Error(t, err, "size %v", sz)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDegenerateSize))
	}
}

func TestReciprocalMatchesSwappedDimensions(t *testing.T) {
	sizes := [][2]int{
		{1, 1}, {4000, 3000}, {6000, 3000}, {1920, 1080}, {4001, 2999},
		{7, 5}, {1250, 1000}, {5472, 3648}, {12345, 6789}, {4000, 2999},
	}
	for _, sz := range sizes {
		r, err := FromDimensions(sz[0], sz[1])
		require.NoError(t, err)
		swapped, err := FromDimensions(sz[1], sz[0])
		require.NoError(t, err)
		assert.True(t, r.Reciprocal().Equal(swapped), "%v: %s vs %s", sz, r.Reciprocal(), swapped)
	}
}

func TestSwappedDimensionsRoundIndependently(t *testing.T) {
	tests := []struct {
		width, height int
		ratio, swapped string
	}{
		{4000, 2996, "131/98", "3/4"},
		{199, 100, "199/100", "1/2"},
		{101, 100, "101/100", "99/100"},
	}
	for _, tt := range tests {
		r, err := FromDimensions(tt.width, tt.height)
		require.NoError(t, err)
		swapped, err := FromDimensions(tt.height, tt.width)
		require.NoError(t, err)
		assert.Equal(t, tt.ratio, r.String())
		assert.Equal(t, tt.swapped, swapped.String())
		assert.False(t, r.Reciprocal().Equal(swapped))
	}
}

func TestFromDimensionsAlwaysPositive(t *testing.T) {
	for w := 1; w <= 300; w += 7 {
		for h := 1; h <= 300; h += 11 {
			r, err := FromDimensions(w, h)
			require.NoError(t, err)
			assert.Positive(t, r.Num())
			assert.Positive(t, r.Den())
			assert.LessOrEqual(t, r.Den(), int64(MaxDenominator))
		}
	}
}

func TestCompare(t *testing.T) {
	assert.True(t, Landscape.Greater(Square))
	assert.True(t, Portrait.Less(Square))
	assert.True(t, Landscape.Reciprocal().Equal(Portrait))
	assert.Equal(t, 0, MustNew(8, 6).Cmp(Landscape))
	assert.Equal(t, 1, MustNew(2, 1).Cmp(Landscape))
	assert.Equal(t, -1, MustNew(5, 4).Cmp(Landscape))
	assert.False(t, MustNew(133, 100).Equal(Landscape))
}

func TestParse(t *testing.T) {
	r, err := Parse("4:3")
	require.NoError(t, err)
	assert.True(t, r.Equal(Landscape))

	r, err = Parse(" 16 / 9 ")
	require.NoError(t, err)
	assert.Equal(t, "16/9", r.String())

	for _, bad := range []string{"", "4", "a:3", "4:0", "-4:3"} {
		_, err := Parse(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFloorArithmetic(t *testing.T) {
	assert.Equal(t, 4500, Landscape.DivFloor(6000))
	assert.Equal(t, 4000, Landscape.MulFloor(3000))
	assert.Equal(t, 1333, Portrait.DivFloor(1000))
	assert.Equal(t, 750, Portrait.MulFloor(1000))
	assert.Equal(t, 937, Landscape.DivFloor(1250))
	assert.Equal(t, 1333, Landscape.MulFloor(1000))
}

func TestString(t *testing.T) {
	assert.Equal(t, "4/3", Landscape.String())
	assert.Equal(t, "2", MustNew(6000, 3000).String())
	assert.InDelta(t, 1.3333, Landscape.Float64(), 0.0001)
	assert.True(t, AspectRatio{}.IsZero())
	assert.True(t, MustNew(5, 4).IsLandscape())
	assert.False(t, Square.IsLandscape())
}

func BenchmarkFromDimensions(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FromDimensions(5472, 3648)
	}
}
