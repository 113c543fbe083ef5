package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     Log     `yaml:"log"`
	Server  Server  `yaml:"server"`
	LLM     LLM     `yaml:"llm"`
	Catalog Catalog `yaml:"catalog"`
	Debug   Debug   `yaml:"debug"`
}

type LLM struct {
	// Model used for conversational query rewriting
	Rewrite ModelConfig `yaml:"rewrite" validate:"required"`
	// Model used for social and grounded replies
	Reply ModelConfig `yaml:"reply" validate:"required"`
	// Embedding model used for catalog similarity search
	Embedding ModelConfig `yaml:"embedding" validate:"required"`
}

type ModelConfig struct {
	// OpenAI-compatible base url (Groq, OpenRouter, OpenAI all work)
	BaseURL string `yaml:"base_url" example:"https://api.groq.com/openai/v1" validate:"required"`
	// API token
	Token string `yaml:"token" example:"gsk_abc123456789DEF789ghi012JKL345mno678PQR" validate:"required"`
	// Model name
	Model string `yaml:"model" example:"llama-3.3-70b-versatile" validate:"required"`
}

type Server struct {
	// Listen address of the HTTP API
	Addr string `yaml:"addr" example:":8080"`
}

type Catalog struct {
	// Path to the JSONL product catalog
	Path string `yaml:"path" example:"data/catalog.jsonl"`
	// Retrieval mode, "vector" or the historical "keyword" configuration
	Mode string `yaml:"mode" example:"vector" validate:"oneof=vector keyword"`
	// Minimum cosine similarity for a vector-search candidate
	SimilarityThreshold float32 `yaml:"similarity_threshold" example:"0.25"`
	// Result cap of the keyword fallback search
	KeywordLimit int `yaml:"keyword_limit" example:"15"`
}

type Debug struct {
	// Expose per-turn pipeline diagnostics on /api/debug
	Enabled bool `yaml:"enabled" example:"false"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8080"
	}
	if result.Catalog.Path == "" {
		result.Catalog.Path = "data/catalog.jsonl"
	}
	if result.Catalog.Mode == "" {
		result.Catalog.Mode = "vector"
	}
	if result.Catalog.SimilarityThreshold == 0 {
		result.Catalog.SimilarityThreshold = 0.25
	}
	if result.Catalog.KeywordLimit == 0 {
		result.Catalog.KeywordLimit = 15
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
