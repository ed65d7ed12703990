package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	DB        DBConfig
	Redis     RedisConfig
	LLM       LLMConfig
	Embedding EmbeddingConfig
	CacheTTLs CacheTTLConfig
	Ingestion IngestionConfig
	Quiz      QuizConfig
	Study     StudyConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Env   string
	Level string
}

type DBConfig struct {
	Driver string
	DSN    string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig selects the generation backend. Provider is one of ollama, openai, gemini.
type LLMConfig struct {
	Provider    string
	Timeout     time.Duration
	Temperature float64
	Ollama      OllamaConfig
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// EmbeddingConfig selects the embedding source. Source is one of ollama, openai.
type EmbeddingConfig struct {
	Source string
	Ollama OllamaConfig
	OpenAI OpenAIConfig
}

type CacheTTLConfig struct {
	Embedding string
}

type IngestionConfig struct {
	ChunkSize        int
	ChunkOverlap     int
	MaxParallelFiles int
	UploadDir        string
}

type QuizConfig struct {
	MaxAttempts         int
	DefaultContextDepth int
	MaxQuestions        int
}

type StudyConfig struct {
	ExplanationDepth int
	SummaryDepth     int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 120)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.body_limit_mb", 50)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "./data/study.db")

	v.SetDefault("llm.provider", "ollama")
	v.SetDefault("llm.timeout", 60)
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.ollama.server_url", "http://localhost:11434")
	v.SetDefault("llm.ollama.model", "llama3.2:3b")
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.gemini.model", "gemini-1.5-flash")

	v.SetDefault("embedding.source", "ollama")
	v.SetDefault("embedding.ollama.server_url", "http://localhost:11434")
	v.SetDefault("embedding.ollama.model", "all-minilm")
	v.SetDefault("embedding.openai.model", "text-embedding-3-small")

	v.SetDefault("cache_ttls.embedding", "168h")

	v.SetDefault("ingestion.chunk_size", 800)
	v.SetDefault("ingestion.chunk_overlap", 100)
	v.SetDefault("ingestion.max_parallel_files", 4)
	v.SetDefault("ingestion.upload_dir", "./data/uploads")

	v.SetDefault("quiz.max_attempts", 3)
	v.SetDefault("quiz.default_context_depth", 3)
	v.SetDefault("quiz.max_questions", 20)

	v.SetDefault("study.explanation_depth", 3)
	v.SetDefault("study.summary_depth", 8)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Defaults plus environment are enough to run locally.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		v.Set("server.port", port)
		cfg.Server.Port = v.GetInt("server.port")
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		cfg.LLM.OpenAI.APIKey = openAIKey
		cfg.Embedding.OpenAI.APIKey = openAIKey
	}
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		cfg.LLM.Gemini.APIKey = geminiKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		DB: DBConfig{
			Driver: v.GetString("db.driver"),
			DSN:    v.GetString("db.dsn"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Provider:    v.GetString("llm.provider"),
			Timeout:     v.GetDuration("llm.timeout") * time.Second,
			Temperature: v.GetFloat64("llm.temperature"),
			Ollama: OllamaConfig{
				ServerURL: v.GetString("llm.ollama.server_url"),
				Model:     v.GetString("llm.ollama.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey: v.GetString("llm.openai.api_key"),
				Model:  v.GetString("llm.openai.model"),
			},
			Gemini: GeminiConfig{
				APIKey: v.GetString("llm.gemini.api_key"),
				Model:  v.GetString("llm.gemini.model"),
			},
		},
		Embedding: EmbeddingConfig{
			Source: v.GetString("embedding.source"),
			Ollama: OllamaConfig{
				ServerURL: v.GetString("embedding.ollama.server_url"),
				Model:     v.GetString("embedding.ollama.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey: v.GetString("embedding.openai.api_key"),
				Model:  v.GetString("embedding.openai.model"),
			},
		},
		CacheTTLs: CacheTTLConfig{
			Embedding: v.GetString("cache_ttls.embedding"),
		},
		Ingestion: IngestionConfig{
			ChunkSize:        v.GetInt("ingestion.chunk_size"),
			ChunkOverlap:     v.GetInt("ingestion.chunk_overlap"),
			MaxParallelFiles: v.GetInt("ingestion.max_parallel_files"),
			UploadDir:        v.GetString("ingestion.upload_dir"),
		},
		Quiz: QuizConfig{
			MaxAttempts:         v.GetInt("quiz.max_attempts"),
			DefaultContextDepth: v.GetInt("quiz.default_context_depth"),
			MaxQuestions:        v.GetInt("quiz.max_questions"),
		},
		Study: StudyConfig{
			ExplanationDepth: v.GetInt("study.explanation_depth"),
			SummaryDepth:     v.GetInt("study.summary_depth"),
		},
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "ollama", "openai", "gemini":
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	switch c.Embedding.Source {
	case "ollama", "openai":
	default:
		return fmt.Errorf("unsupported embedding source: %q", c.Embedding.Source)
	}
	if c.Quiz.MaxAttempts < 1 {
		return fmt.Errorf("quiz.max_attempts must be at least 1, got %d", c.Quiz.MaxAttempts)
	}
	if c.Ingestion.ChunkOverlap >= c.Ingestion.ChunkSize {
		return fmt.Errorf("ingestion.chunk_overlap (%d) must be smaller than chunk_size (%d)",
			c.Ingestion.ChunkOverlap, c.Ingestion.ChunkSize)
	}
	return nil
}

// ParseTTLStringOrDefault parses a duration string such as "24h", falling back on error or empty input.
func (c *Config) ParseTTLStringOrDefault(ttlString string, defaultTTL time.Duration) time.Duration {
	if ttlString == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}
