package config

import "fmt"

const (
	DefaultModel    = "small"
	DefaultModelDir = "models"
	DefaultPort     = "8080"

	BackendWhisper = "whisper" // in-process whisper.cpp
	BackendRemote  = "remote"  // faster-whisper ASR webservice
)

type Config struct {
	Model     string // model size id: tiny/base/small/medium/large/turbo
	ModelDir  string
	Backend   string
	RemoteURL string // required for the remote backend
	Port      string
}

// Validate applies defaults and rejects inconsistent settings.
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.ModelDir == "" {
		c.ModelDir = DefaultModelDir
	}
	if c.Backend == "" {
		c.Backend = BackendWhisper
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}

	switch c.Backend {
	case BackendWhisper:
	case BackendRemote:
		if c.RemoteURL == "" {
			return fmt.Errorf("config: STT_REMOTE_URL is required for the remote backend")
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	return nil
}
