package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantDebug: true,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaultLogger := slog.Default()
			t.Cleanup(func() { slog.SetDefault(defaultLogger) })

			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.Equal(t, tt.wantDebug, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "vocabstudy", cmd.Use)
	for _, name := range []string{"config", "debug", "provider"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s should be registered", name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "lookup", "categories", "study", "cache"}, names)
}

func TestNewRootCommand_ProviderFlag(t *testing.T) {
	setProviderOverride(t, "")

	cmd := newRootCommand()
	err := cmd.PersistentFlags().Set("provider", "generative")
	assert.NoError(t, err)
	assert.Equal(t, ProviderGenerative, providerOverride)

	err = cmd.PersistentFlags().Set("provider", "thesaurus")
	assert.Error(t, err)
}
