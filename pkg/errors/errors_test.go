package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsType(t *testing.T) {
	err := fmt.Errorf("failed to load image: %w", NewUnsupportedFormatError("cannot decode a.cr2", nil))
	assert.True(t, IsType(err, ErrorTypeUnsupportedFormat))
	assert.False(t, IsType(err, ErrorTypeDegenerateSize))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeUnsupportedFormat))
	assert.False(t, IsType(nil, ErrorTypeConfig))
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewOutputExistsError("Output - run", fs.ErrExist)
	assert.ErrorIs(t, err, fs.ErrExist)
	assert.Contains(t, err.Error(), "output_exists")
	assert.Contains(t, err.Error(), "caused by")

	warning := NewInvalidAnchorWarning("middle", []string{"left", "center"})
	assert.Nil(t, warning.Unwrap())
	assert.Equal(t, `invalid_anchor: "middle" is not a valid position [left center]`, warning.Error())
}
