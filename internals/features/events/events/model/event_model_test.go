package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusUpcoming))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.True(t, IsValidStatus(StatusCanceled))
	assert.False(t, IsValidStatus("ditunda"))
	assert.False(t, IsValidStatus(""))
}
