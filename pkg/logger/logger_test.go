package logger_test

import (
	"testing"

	"rusty/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := logger.New("rusty", "debug")
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.NotNil(t, logger.Gorm(l))

	_, err = logger.New("rusty", "loud")
	assert.Error(t, err)
}
