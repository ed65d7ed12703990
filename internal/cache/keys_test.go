package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "embedding",
			objectType:  "ollama",
			identifier:  "abc",
			expectedKey: "studyassistant:embedding:ollama:abc",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "embedding",
			objectType:  "ollama",
			identifier:  "abc",
			paramsKey:   []string{},
			expectedKey: "studyassistant:embedding:ollama:abc",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "embedding",
			objectType:  "openai",
			identifier:  "abc",
			paramsKey:   []string{"text-embedding-3-small", "v2"},
			expectedKey: "studyassistant:embedding:openai:abc:text-embedding-3-small_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestHashText(t *testing.T) {
	assert.Equal(t, HashText("tcp"), HashText("tcp"))
	assert.NotEqual(t, HashText("tcp"), HashText("udp"))
	assert.Len(t, HashText(""), 64)
}
