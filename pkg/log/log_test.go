package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestToLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ToLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ToLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, ToLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ToLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ToLevel("bogus"))
}

func TestNopIsDisabled(t *testing.T) {
	logger := Nop()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
