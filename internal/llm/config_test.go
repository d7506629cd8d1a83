package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 8000, cfg.TimeoutMs)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("PTEMASTER_LLM_ENABLED", "true")
	t.Setenv("PTEMASTER_LLM_ENDPOINT", "http://remote:9999")
	t.Setenv("PTEMASTER_LLM_MODEL", "mistral")
	t.Setenv("PTEMASTER_LLM_TIMEOUT_MS", "3000")
	t.Setenv("PTEMASTER_LLM_MAX_RETRIES", "0")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://remote:9999", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 3000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("PTEMASTER_LLM_TIMEOUT_MS", "-5")
	t.Setenv("PTEMASTER_LLM_MAX_RETRIES", "banana")
	t.Setenv("PTEMASTER_LLM_TEMPERATURE", "99")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultConfig().Temperature, cfg.Temperature)
}
