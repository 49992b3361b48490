package output

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggingVerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestSetupLoggingDefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}

func TestBoolPtr(t *testing.T) {
	p := BoolPtr(true)
	assert.NotNil(t, p)
	assert.True(t, *p)

	p = BoolPtr(false)
	assert.False(t, *p)
}
