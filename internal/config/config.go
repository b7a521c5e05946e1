package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Siddhartha1011/AI-Astrologer/internal/logging"
)

// Config is loaded once at startup and passed by value afterwards.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8000"`
	LogLevelName    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel   string `env:"GROQ_MODEL" envDefault:"llama3-8b-8192"`
	// LLMTimeout of zero leaves the LLM call bounded only by the request context.
	LLMTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"0s"`

	TavilyAPIKey   string        `env:"TAVILY_API_KEY"`
	TavilyEndpoint string        `env:"TAVILY_ENDPOINT" envDefault:"https://api.tavily.com/search"`
	SearchTimeout  time.Duration `env:"SEARCH_TIMEOUT" envDefault:"30s"`

	LogLevel zapcore.Level
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	level, err := logging.ParseLevel(c.LogLevelName)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.SearchTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid SEARCH_TIMEOUT %s: must be positive", c.SearchTimeout)
	}
	if c.LLMTimeout < 0 {
		return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %s: must not be negative", c.LLMTimeout)
	}

	return c, nil
}

// GroqConfigured reports whether an LLM API key was supplied.
func (c Config) GroqConfigured() bool { return c.GroqAPIKey != "" }

// TavilyConfigured reports whether a search API key was supplied.
func (c Config) TavilyConfigured() bool { return c.TavilyAPIKey != "" }
