package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ProviderDictionary = "dictionary"
	ProviderGenerative = "generative"

	CategorySourceStatic     = "static"
	CategorySourceGenerative = "generative"

	DictionaryBackendFreeDictionary = "free_dictionary"
	DictionaryBackendWordsAPI       = "words_api"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Vocabulary   VocabularyConfig   `mapstructure:"vocabulary"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Images       ImagesConfig       `mapstructure:"images"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port    int           `mapstructure:"port" validate:"min=1,max=65535"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Session SessionConfig `mapstructure:"session"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type SessionConfig struct {
	Secret          string `mapstructure:"secret" validate:"omitempty,secret"`
	LifetimeMinutes int    `mapstructure:"lifetime_minutes" validate:"min=1"`
}

type VocabularyConfig struct {
	Provider           string `mapstructure:"provider" validate:"oneof=dictionary generative"`
	CategorySource     string `mapstructure:"category_source" validate:"oneof=static generative"`
	CacheFile          string `mapstructure:"cache_file" validate:"required"`
	DefaultWordCount   int    `mapstructure:"default_word_count" validate:"min=1"`
	APIWordCount       int    `mapstructure:"api_word_count" validate:"min=1"`
	CategoryWordLimit  int    `mapstructure:"category_word_limit" validate:"min=1"`
	MaxWordCount       int    `mapstructure:"max_word_count" validate:"min=1"`
	HTTPTimeoutSeconds int    `mapstructure:"http_timeout_seconds" validate:"min=1"`
	ShuffleSeed        int64  `mapstructure:"shuffle_seed"`
	TargetLanguage     string `mapstructure:"target_language"`
}

type DictionariesConfig struct {
	Backend        string               `mapstructure:"backend" validate:"oneof=free_dictionary words_api"`
	FreeDictionary FreeDictionaryConfig `mapstructure:"free_dictionary"`
	RapidAPI       RapidAPIConfig       `mapstructure:"rapidapi"`
}

type FreeDictionaryConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"url"`
}

type RapidAPIConfig struct {
	Host string `mapstructure:"host"`
	Key  string `mapstructure:"key"`
}

type ImagesConfig struct {
	Pexels PexelsConfig `mapstructure:"pexels"`
}

type PexelsConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"url"`
	APIKey  string `mapstructure:"api_key"`
}

type OpenAIConfig struct {
	APIKey           string `mapstructure:"api_key"`
	BaseURL          string `mapstructure:"base_url" validate:"url"`
	Model            string `mapstructure:"model" validate:"required"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// Enabled reports whether a database has been configured at all.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type TemplatesConfig struct {
	StudySessionTemplate string `mapstructure:"study_session_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	StudyDirectory string `mapstructure:"study_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocabstudy")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.session.lifetime_minutes", 24*60)
	v.SetDefault("vocabulary.provider", ProviderDictionary)
	v.SetDefault("vocabulary.category_source", CategorySourceStatic)
	v.SetDefault("vocabulary.cache_file", filepath.Join("data", "word_cache.json"))
	v.SetDefault("vocabulary.default_word_count", 5)
	v.SetDefault("vocabulary.api_word_count", 10)
	v.SetDefault("vocabulary.category_word_limit", 10)
	v.SetDefault("vocabulary.max_word_count", 50)
	v.SetDefault("vocabulary.http_timeout_seconds", 15)
	v.SetDefault("vocabulary.target_language", "Japanese")
	v.SetDefault("dictionaries.backend", DictionaryBackendFreeDictionary)
	v.SetDefault("dictionaries.free_dictionary.base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("images.pexels.base_url", "https://api.pexels.com/v1")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_retry_attempts", 3)
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "vocabstudy")
	v.SetDefault("database.username", "user")
	v.SetDefault("templates.study_session_template", "")
	v.SetDefault("outputs.study_directory", filepath.Join("outputs", "study"))

	// Credentials and endpoints may also be set in the config file; these variables take precedence
	envBindings := []struct {
		key string
		env string
	}{
		{"dictionaries.free_dictionary.base_url", "DICTIONARY_API_URL"},
		{"dictionaries.rapidapi.host", "RAPID_API_HOST"},
		{"dictionaries.rapidapi.key", "RAPID_API_KEY"},
		{"images.pexels.api_key", "PEXELS_API_KEY"},
		{"images.pexels.base_url", "PEXELS_API_URL"},
		{"openai.api_key", "OPENAI_API_KEY"},
		{"openai.base_url", "OPENAI_BASE_URL"},
		{"openai.model", "OPENAI_MODEL"},
		{"database.password", "DB_PASSWORD"},
		{"server.session.secret", "SESSION_SECRET"},
	}
	for _, binding := range envBindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", binding.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
