package cmd

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"missionctl/internal/adapters/out/emailjs"
	"missionctl/internal/adapters/out/monitorapi"
	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/adapters/out/towerapi"
	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/pkg/errs"
)

const (
	DefaultHTTPPort           = "8080"
	DefaultSessionIdleTimeout = 30 * time.Minute
)

type Config struct {
	HTTPPort string

	TowerAPIURL       string
	MonitorAPIURL     string
	HTTPClientTimeout time.Duration

	StatusPollInterval    time.Duration
	TelemetryPollInterval time.Duration
	SessionIdleTimeout    time.Duration
	SessionLimit          int
	ViewLimit             int

	EmailJSURL        string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	LogLevel string
	LogFile  string
}

// LoadConfig reads the configuration through lookup, usually os.Getenv.
// Unset keys take their defaults; malformed values are all reported at once.
func LoadConfig(lookup func(key string) string) (Config, error) {
	get := func(key string, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}

	var problems []error
	duration := func(key string, fallback time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		if d <= 0 {
			problems = append(problems, errs.NewValueIsInvalidError(key))
			return fallback
		}
		return d
	}
	integer := func(key string, fallback int) int {
		raw := get(key, "")
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		if n <= 0 {
			problems = append(problems, errs.NewValueIsInvalidError(key))
			return fallback
		}
		return n
	}

	config := Config{
		HTTPPort: get("HTTP_PORT", DefaultHTTPPort),

		TowerAPIURL:       get("TOWER_API_URL", towerapi.DefaultBaseURL),
		MonitorAPIURL:     get("MONITOR_API_URL", monitorapi.DefaultBaseURL),
		HTTPClientTimeout: duration("HTTP_CLIENT_TIMEOUT", restclient.DefaultTimeout),

		StatusPollInterval:    duration("STATUS_POLL_INTERVAL", missioncontrol.DefaultPollInterval),
		TelemetryPollInterval: duration("TELEMETRY_POLL_INTERVAL", monitoring.DefaultPollInterval),
		SessionIdleTimeout:    duration("SESSION_IDLE_TIMEOUT", DefaultSessionIdleTimeout),
		SessionLimit:          integer("SESSION_LIMIT", missioncontrol.DefaultSessionLimit),
		ViewLimit:             integer("VIEW_LIMIT", monitoring.DefaultViewLimit),

		EmailJSURL:        get("EMAILJS_URL", emailjs.DefaultBaseURL),
		EmailJSServiceID:  get("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID: get("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:  get("EMAILJS_PUBLIC_KEY", ""),

		LogLevel: get("LOG_LEVEL", "info"),
		LogFile:  get("LOG_FILE", ""),
	}
	return config, errors.Join(problems...)
}

func (c Config) EmailJS() emailjs.Config {
	return emailjs.Config{
		ServiceID:  c.EmailJSServiceID,
		TemplateID: c.EmailJSTemplateID,
		PublicKey:  c.EmailJSPublicKey,
	}
}
