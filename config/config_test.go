package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestDefaultTuning(t *testing.T) {
	tuning := DefaultTuning()
	require.Equal(t, 20, tuning.MaxOpenConns)
	require.Equal(t, 20, tuning.MaxIdleConns)
	require.Equal(t, rate.Limit(5), tuning.SessionRate())
	require.Equal(t, 10, tuning.SessionBurst)
}

func TestTuningFromEnv(t *testing.T) {
	t.Setenv("MAX_OPEN_CONNS", "3")
	t.Setenv("SESSION_RPS", "40")
	tuning := DefaultTuning()
	require.Equal(t, 3, tuning.MaxOpenConns)
	require.Equal(t, rate.Limit(40), tuning.SessionRate())
}

func TestTuningInvalidFallsBack(t *testing.T) {
	t.Setenv("MAX_OPEN_CONNS", "many")
	require.Equal(t, 20, DefaultTuning().MaxOpenConns)
}

func TestLoadSessionRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := LoadSession()
	require.Equal(t, ErrMissingAPIKey, err)
}

func TestLoadSession(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8080")
	s, err := LoadSession()
	require.NoError(t, err)
	require.Equal(t, "sk-test", s.APIKey)
	require.Equal(t, "8080", s.Port)
	require.Equal(t, "gpt-4o-realtime-preview-2024-10-01", s.Model)
	require.Equal(t, "verse", s.Voice)
	require.Equal(t, "public", s.PublicDir)
}

func TestLoadSessionInvalidURL(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_REALTIME_URL", "api.openai.com/v1/realtime/sessions")
	_, err := LoadSession()
	require.Error(t, err)
	require.Contains(t, err.Error(), "OPENAI_REALTIME_URL")
}

func TestIsValidURL(t *testing.T) {
	require.True(t, isValidURL("https://api.openai.com/v1/realtime/sessions"))
	require.True(t, isValidURL("http://127.0.0.1:8080"))
	require.False(t, isValidURL(""))
	require.False(t, isValidURL("/v1/realtime/sessions"))
	require.False(t, isValidURL("://nope"))
}
