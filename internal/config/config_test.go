package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, Load(viper.New()))

	c := Get()
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "mistral", c.LLM.Model)
	assert.Equal(t, "http://localhost:11434", c.LLM.ServerURL)
	assert.Equal(t, 60*time.Second, c.LLM.Timeout)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Empty(t, c.Logging.File)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "/var/lib/rxassist")
	v.Set("llm.model", "llama3")
	v.Set("llm.timeout", "5s")
	v.Set("logging.level", "debug")

	require.NoError(t, Load(v))

	c := Get()
	assert.Equal(t, "/var/lib/rxassist", c.DataDir)
	assert.Equal(t, "llama3", c.LLM.Model)
	assert.Equal(t, 5*time.Second, c.LLM.Timeout)
	assert.Equal(t, "debug", c.Logging.Level)
}
