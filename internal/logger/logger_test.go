package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	log := New("production", "warn")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewFallsBackToInfo(t *testing.T) {
	log := New("development", "loud")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
