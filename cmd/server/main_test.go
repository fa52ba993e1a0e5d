package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInitializeApp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SOLITAIRE_SERVER_PORT", "9191")
	t.Setenv("SOLITAIRE_SERVER_LOG_LEVEL", "error")
	t.Setenv("SOLITAIRE_DECK_RIFFLES", "3")

	cfg, l, err := initializeApp()
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3, cfg.Deck.Riffles)
}

func TestInitializeAppRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SOLITAIRE_SERVER_LOG_LEVEL", "verbose")

	_, _, err := initializeApp()
	assert.ErrorContains(t, err, "failed to load configuration")
}
