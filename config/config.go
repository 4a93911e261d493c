package config

import (
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Tuning variables. These aren't user facing but useful for tuning the
// details of store and endpoint performance.
type Tuning struct {
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS" envDefault:"20"`
	SessionRPS   int `env:"SESSION_RPS" envDefault:"5"`
	SessionBurst int `env:"SESSION_BURST" envDefault:"10"`
}

// SessionRate is the sustained /session request rate.
func (t Tuning) SessionRate() rate.Limit {
	return rate.Limit(t.SessionRPS)
}

// DefaultTuning reads the tuning variables from the environment. Values that
// do not parse fall back to the defaults.
func DefaultTuning() Tuning {
	t, err := env.ParseAs[Tuning]()
	if err != nil {
		log.WithError(err).Warn("invalid tuning variables, using defaults")
		t = Tuning{
			MaxOpenConns: 20,
			MaxIdleConns: 20,
			SessionRPS:   5,
			SessionBurst: 10,
		}
	}
	return t
}

// Session configures the session exchange endpoint.
type Session struct {
	Port         string `env:"PORT" envDefault:"3000"`
	APIKey       string `env:"OPENAI_API_KEY"`
	Model        string `env:"OPENAI_REALTIME_MODEL" envDefault:"gpt-4o-realtime-preview-2024-10-01"`
	SessionsURL  string `env:"OPENAI_REALTIME_URL" envDefault:"https://api.openai.com/v1/realtime/sessions"`
	Voice        string `env:"REALTIME_VOICE" envDefault:"verse"`
	Instructions string `env:"REALTIME_INSTRUCTIONS" envDefault:"You are Eva, a warm, concise receptionist. Greet callers, ask how you can help, and speak clearly with a pleasant, natural tone. If interrupted, gracefully stop and listen."`
	PublicDir    string `env:"PUBLIC_DIR" envDefault:"public"`
}

// ErrMissingAPIKey is returned when the server credential is not configured.
var ErrMissingAPIKey = errors.New("config: missing OPENAI_API_KEY")

// LoadSession reads the session endpoint configuration from the environment.
func LoadSession() (Session, error) {
	s, err := env.ParseAs[Session]()
	if err != nil {
		return Session{}, errors.Wrap(err, "config: unable to parse environment")
	}
	if s.APIKey == "" {
		return s, ErrMissingAPIKey
	}
	if !isValidURL(s.SessionsURL) {
		return s, errors.Errorf("config: invalid OPENAI_REALTIME_URL %q", s.SessionsURL)
	}
	return s, nil
}

func isValidURL(raw string) bool {
	if len(raw) == 0 {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return len(parsed.Scheme) != 0 && len(parsed.Host) != 0
}
