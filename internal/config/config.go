// Package config loads the service's global configuration and implements
// the request-scoped policy-override mechanism (§4.2 step 3, §6), using
// a nested-struct-with-yaml-tags style validated with validator/v10.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MatchStrategyConfig controls the Mapper's cutoff strategy (§4.5, §6).
type MatchStrategyConfig struct {
	Strategy     string  `yaml:"strategy" validate:"oneof=quantile static"`
	TopK         int     `yaml:"topk" validate:"min=1"`
	ResumeQ      float64 `yaml:"resume_q" validate:"min=0,max=1"`
	JDQ          float64 `yaml:"jd_q" validate:"min=0,max=1"`
	TaskQ        float64 `yaml:"task_q" validate:"min=0,max=1"`
	ResumeFloor  float64 `yaml:"resume_floor" validate:"min=0,max=1"`
	JDFloor      float64 `yaml:"jd_floor" validate:"min=0,max=1"`
	TaskFloor    float64 `yaml:"task_floor" validate:"min=0,max=1"`
	LexicalGuard bool    `yaml:"lexical_guard"`
}

// CRAGConfig controls the adaptive confidence gate's bounded retry loop
// (§4.5).
type CRAGConfig struct {
	MinHits           int     `yaml:"min_hits" validate:"min=0"`
	MinMargin         float64 `yaml:"min_margin" validate:"min=0"`
	MaxRetries        int     `yaml:"max_retries" validate:"min=0"`
	MaxTopK           int     `yaml:"max_topk" validate:"min=1"`
	BumpTopKBy        int     `yaml:"bump_topk_by" validate:"min=0"`
	AllowRecipeSwitch bool    `yaml:"allow_recipe_switch"`
}

// ScoreWeightsConfig controls the Analyzer's status classification (§4.6).
type ScoreWeightsConfig struct {
	LevelGrace float64 `yaml:"level_grace" validate:"min=0"`
}

// ExtractionConfig controls the Extractor's mode and caching keys (§4.3,
// §4.4).
type ExtractionConfig struct {
	Mode             string `yaml:"mode" validate:"oneof=all_in_one current"`
	ExtractorModel   string `yaml:"extractor_model"`
	CapNiceToHave    bool   `yaml:"cap_nice_to_have"`
	ExtractorVersion string `yaml:"extractor_version"`
	PromptVersion    string `yaml:"prompt_version"`
	EmbeddingModel   string `yaml:"embedding_model"`
}

// ServerConfig controls the demo HTTP surface.
type ServerConfig struct {
	Addr            string `yaml:"addr" default:"0.0.0.0:8080"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_seconds" default:"10"`
}

// LLMConfig controls the language-model client (external collaborator d,
// §6).
type LLMConfig struct {
	Provider    string `yaml:"provider" default:"anthropic"`
	APIKeyEnv   string `yaml:"api_key_env" default:"ANTHROPIC_API_KEY"`
	Model       string `yaml:"model" default:"claude-sonnet-4-5"`
	TimeoutSecs int    `yaml:"timeout_seconds" default:"60"`
	TestMode    bool   `yaml:"test_mode"`
	RateLimitRPS float64 `yaml:"rate_limit_rps" default:"5"`
}

// DatabaseConfig controls the persistence collaborator (e, §6).
type DatabaseConfig struct {
	DSNEnv          string `yaml:"dsn_env" default:"DATABASE_URL"`
	CacheJoinWindowSeconds int `yaml:"cache_join_window_seconds" default:"3"`
}

// LoggingConfig controls internal/obslog.
type LoggingConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"json"`
}

// Config is the immutable global configuration record. It carries no
// pointers or maps, so copying it by value is a full deep copy — the
// property WithOverrides relies on to guarantee override isolation (§8 P5).
type Config struct {
	MatchStrategy MatchStrategyConfig `yaml:"match_strategy"`
	CRAG          CRAGConfig          `yaml:"crag"`
	ScoreWeights  ScoreWeightsConfig  `yaml:"score_weights"`
	Extraction    ExtractionConfig    `yaml:"extraction"`
	Server        ServerConfig        `yaml:"server"`
	LLM           LLMConfig           `yaml:"llm"`
	Database      DatabaseConfig      `yaml:"database"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// Default returns the recommended defaults from §4.5 and §4.6.
func Default() Config {
	return Config{
		MatchStrategy: MatchStrategyConfig{
			Strategy:    "quantile",
			TopK:        10,
			ResumeQ:     0.85,
			JDQ:         0.85,
			TaskQ:       0.85,
			ResumeFloor: 0.30,
			JDFloor:     0.40,
			TaskFloor:   0.40,
			LexicalGuard: true,
		},
		CRAG: CRAGConfig{
			MinHits:           2,
			MinMargin:         0.08,
			MaxRetries:        3,
			MaxTopK:           20,
			BumpTopKBy:        4,
			AllowRecipeSwitch: true,
		},
		ScoreWeights: ScoreWeightsConfig{LevelGrace: 0.25},
		Extraction: ExtractionConfig{
			Mode:             "all_in_one",
			ExtractorModel:   "claude-sonnet-4-5",
			CapNiceToHave:    true,
			ExtractorVersion: "1",
			PromptVersion:    "1",
			EmbeddingModel:   "text-embedding-3-small",
		},
		Server:   ServerConfig{Addr: "0.0.0.0:8080", ShutdownTimeout: 10},
		LLM:      LLMConfig{Provider: "anthropic", APIKeyEnv: "ANTHROPIC_API_KEY", Model: "claude-sonnet-4-5", TimeoutSecs: 60, RateLimitRPS: 5},
		Database: DatabaseConfig{DSNEnv: "DATABASE_URL", CacheJoinWindowSeconds: 3},
		Logging:  LoggingConfig{Level: "info", Format: "json"},
	}
}

var validate = validator.New()

// Load reads a YAML configuration file layered on top of Default, with a
// .env file (if present) loaded into the process environment first via
// godotenv.
func Load(path string) (Config, error) {
	_ = godotenv.Load() // optional; absence is not an error

	cfg := Default()
	if path == "" {
		return cfg, validate.Struct(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, validate.Struct(cfg)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
