package config

import (
	"os"
	"strings"
)

// Loader reads configuration from environment variables. Tests override
// Lookup to inject deterministic maps.
type Loader struct {
	Lookup func(string) (string, bool)
}

func (l Loader) Load() (Config, error) {
	if l.Lookup == nil {
		l.Lookup = os.LookupEnv
	}

	var cfg Config
	overrideString(l.Lookup, "STT_MODEL", &cfg.Model)
	overrideString(l.Lookup, "STT_MODEL_DIR", &cfg.ModelDir)
	overrideString(l.Lookup, "STT_BACKEND", &cfg.Backend)
	overrideString(l.Lookup, "STT_REMOTE_URL", &cfg.RemoteURL)
	overrideString(l.Lookup, "PORT", &cfg.Port)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overrideString(lookup func(string) (string, bool), key string, target *string) {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		*target = strings.TrimSpace(value)
	}
}
