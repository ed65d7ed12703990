package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, 800, cfg.Ingestion.ChunkSize)
	assert.Equal(t, 100, cfg.Ingestion.ChunkOverlap)
	assert.Equal(t, 3, cfg.Quiz.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "unknown provider", mutate: func(c *Config) { c.LLM.Provider = "palm" }, wantErr: "unsupported llm provider"},
		{name: "unknown embedding", mutate: func(c *Config) { c.Embedding.Source = "bert" }, wantErr: "unsupported embedding source"},
		{name: "zero attempts", mutate: func(c *Config) { c.Quiz.MaxAttempts = 0 }, wantErr: "max_attempts"},
		{name: "overlap too large", mutate: func(c *Config) { c.Ingestion.ChunkOverlap = 900 }, wantErr: "chunk_overlap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			cfg := fromViper(v)
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 2*time.Hour, cfg.ParseTTLStringOrDefault("2h", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("soon", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("-5m", time.Minute))
}
