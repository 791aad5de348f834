package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/vocabstudy/internal/config"
	"github.com/at-ishikawa/vocabstudy/internal/database"
	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/at-ishikawa/vocabstudy/internal/dictionary/freedictionary"
	"github.com/at-ishikawa/vocabstudy/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/vocabstudy/internal/imagesearch/pexels"
	"github.com/at-ishikawa/vocabstudy/internal/inference/openai"
	"github.com/at-ishikawa/vocabstudy/internal/server"
	"github.com/at-ishikawa/vocabstudy/internal/user"
	"github.com/at-ishikawa/vocabstudy/internal/vocabulary"
	"github.com/at-ishikawa/vocabstudy/schemas"
)

var (
	ErrMissingOpenAIKey   = errors.New("OPENAI_API_KEY environment variable is required for the generative tier")
	ErrMissingRapidAPI    = errors.New("RAPID_API_HOST and RAPID_API_KEY environment variables are required for words_api")
	ErrMissingSessionKey  = errors.New("SESSION_SECRET environment variable is required when a database is configured")
	ErrUnknownProvider    = errors.New("unknown provider")
	ErrUnknownDictionary  = errors.New("unknown dictionary backend")
	ErrUnknownWordsSource = errors.New("unknown category source")
)

// Vocabulary is the vocabulary service with the cache it reads through.
type Vocabulary struct {
	Service *vocabulary.Service
	Cache   *dictionary.FileCache

	openai *openai.Client
}

// Close releases the HTTP clients held by the generative tier.
func (v *Vocabulary) Close() error {
	if v.openai == nil {
		return nil
	}
	return v.openai.Close()
}

// NewVocabulary builds the cache, the lookup provider and the category source selected by cfg.
func NewVocabulary(cfg *config.Config) (*Vocabulary, error) {
	timeout := time.Duration(cfg.Vocabulary.HTTPTimeoutSeconds) * time.Second
	result := &Vocabulary{
		Cache: dictionary.NewFileCache(cfg.Vocabulary.CacheFile),
	}

	needsOpenAI := cfg.Vocabulary.Provider == config.ProviderGenerative ||
		cfg.Vocabulary.CategorySource == config.CategorySourceGenerative
	if needsOpenAI {
		if cfg.OpenAI.APIKey == "" {
			return nil, ErrMissingOpenAIKey
		}
		result.openai = openai.NewClient(openai.Config{
			APIKey:           cfg.OpenAI.APIKey,
			BaseURL:          cfg.OpenAI.BaseURL,
			Model:            cfg.OpenAI.Model,
			MaxRetryAttempts: cfg.OpenAI.MaxRetryAttempts,
			Timeout:          timeout,
		})
	}

	var provider dictionary.Provider
	switch cfg.Vocabulary.Provider {
	case config.ProviderDictionary:
		p, err := newDictionaryProvider(cfg, timeout)
		if err != nil {
			return nil, fmt.Errorf("newDictionaryProvider() > %w", err)
		}
		provider = p
	case config.ProviderGenerative:
		provider = vocabulary.NewGenerativeProvider(result.openai, cfg.Vocabulary.TargetLanguage)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Vocabulary.Provider)
	}

	var opts []vocabulary.Option
	switch cfg.Vocabulary.CategorySource {
	case config.CategorySourceStatic:
	case config.CategorySourceGenerative:
		opts = append(opts, vocabulary.WithCategorySource(vocabulary.NewGenerativeCategorySource(result.openai)))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownWordsSource, cfg.Vocabulary.CategorySource)
	}
	if cfg.Vocabulary.ShuffleSeed != 0 {
		opts = append(opts, vocabulary.WithRand(rand.New(rand.NewSource(cfg.Vocabulary.ShuffleSeed))))
	}

	result.Service = vocabulary.NewService(result.Cache, provider, opts...)
	slog.Default().Debug("vocabulary service is ready",
		slog.String("provider", cfg.Vocabulary.Provider),
		slog.String("categorySource", cfg.Vocabulary.CategorySource),
		slog.String("cacheFile", cfg.Vocabulary.CacheFile),
		slog.Int("cachedWords", result.Cache.Len()),
	)
	return result, nil
}

func newDictionaryProvider(cfg *config.Config, timeout time.Duration) (*dictionary.DictionaryProvider, error) {
	var definitions dictionary.DefinitionSource
	switch cfg.Dictionaries.Backend {
	case config.DictionaryBackendFreeDictionary:
		definitions = freedictionary.NewClient(cfg.Dictionaries.FreeDictionary.BaseURL, timeout)
	case config.DictionaryBackendWordsAPI:
		if cfg.Dictionaries.RapidAPI.Host == "" || cfg.Dictionaries.RapidAPI.Key == "" {
			return nil, ErrMissingRapidAPI
		}
		definitions = rapidapi.NewClient(rapidapi.Config{
			Host: cfg.Dictionaries.RapidAPI.Host,
			Key:  cfg.Dictionaries.RapidAPI.Key,
		}, timeout)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDictionary, cfg.Dictionaries.Backend)
	}

	// Images are optional; a nil searcher skips enrichment
	var images dictionary.ImageSearcher
	if cfg.Images.Pexels.APIKey != "" {
		images = pexels.NewClient(cfg.Images.Pexels.BaseURL, cfg.Images.Pexels.APIKey, timeout)
	}
	return dictionary.NewDictionaryProvider(definitions, images), nil
}

// Users is the user service with the session manager that signs its cookies.
type Users struct {
	Service  *user.Service
	Sessions *server.SessionManager

	db *sqlx.DB
}

func (u *Users) Close() error {
	return u.db.Close()
}

// NewUsers opens the database, applies the embedded migrations and builds the user service.
// It returns nil without an error when no database is configured.
func NewUsers(ctx context.Context, cfg *config.Config) (*Users, error) {
	if !cfg.Database.Enabled() {
		return nil, nil
	}
	if cfg.Server.Session.Secret == "" {
		return nil, ErrMissingSessionKey
	}
	sessions, err := server.NewSessionManager(
		cfg.Server.Session.Secret,
		time.Duration(cfg.Server.Session.LifetimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("server.NewSessionManager() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(ctx, db, schemas.Migrations, schemas.MigrationsDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}

	return &Users{
		Service:  user.NewService(user.NewDBRepository(db)),
		Sessions: sessions,
		db:       db,
	}, nil
}
