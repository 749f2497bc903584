package infra

import (
	"fmt"

	"github.com/Vovarama1992/happy-stt/internal/config"
	"github.com/Vovarama1992/happy-stt/internal/ports"
)

// NewEngine picks the transcription backend from configuration.
func NewEngine(cfg config.Config) (ports.STTEngine, error) {
	switch cfg.Backend {
	case config.BackendRemote:
		return NewRemoteEngine(cfg.RemoteURL), nil
	case config.BackendWhisper:
		path, err := ModelPath(cfg.ModelDir, cfg.Model)
		if err != nil {
			return nil, err
		}
		return NewWhisperEngine(path), nil
	default:
		return nil, fmt.Errorf("unknown stt backend %q", cfg.Backend)
	}
}
