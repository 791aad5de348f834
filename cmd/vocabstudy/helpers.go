package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/vocabstudy/internal/config"
)

const configEnv = "VOCABSTUDY_CONFIG"

type Provider string

const (
	ProviderDictionary Provider = config.ProviderDictionary
	ProviderGenerative Provider = config.ProviderGenerative
)

var (
	_            pflag.Value = (*Provider)(nil)
	allProviders             = []Provider{ProviderDictionary, ProviderGenerative}
)

func (p *Provider) Set(val string) error {
	for _, provider := range allProviders {
		if val == string(provider) {
			*p = provider
			return nil
		}
	}
	return fmt.Errorf("invalid provider: %s", val)
}

func (p *Provider) String() string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func (p *Provider) Type() string {
	return "Provider"
}

// loadConfig reads --config, falling back to $VOCABSTUDY_CONFIG, and applies --provider.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv(configEnv)
	}
	loader, err := config.NewConfigLoader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if providerOverride != "" {
		cfg.Vocabulary.Provider = string(providerOverride)
	}
	return cfg, nil
}
