package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/happy-stt/internal/models"
	"github.com/Vovarama1992/happy-stt/internal/ports"
	"github.com/google/uuid"
)

const beamSize = 5

type TranscribeService struct {
	engine ports.STTEngine
	tmpDir string
}

// NewTranscribeService wires the delegated engine. tmpDir = "" means the
// system temp directory.
func NewTranscribeService(engine ports.STTEngine, tmpDir string) *TranscribeService {
	return &TranscribeService{
		engine: engine,
		tmpDir: tmpDir,
	}
}

// Transcribe writes the upload to a scoped temp file, runs the engine with a
// normalized language hint, and post-filters known hallucinations. The temp
// file is removed on every exit path; removal failure is never surfaced.
func (s *TranscribeService) Transcribe(ctx context.Context, audio []byte, filename, locale string) (*models.Transcription, error) {
	path, err := s.writeTemp(audio, filename)
	if err != nil {
		return nil, fmt.Errorf("persist upload: %w", err)
	}
	defer func() {
		_ = os.Remove(path)
	}()

	lang, prompt := NormalizeLocale(locale)

	rec, err := s.engine.Transcribe(ctx, path, ports.TranscribeOptions{
		Language:      lang,
		BeamSize:      beamSize,
		VADFilter:     true,
		InitialPrompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	// Empty segment list means silence — a valid result, not an error.
	var b strings.Builder
	for _, seg := range rec.Segments {
		b.WriteString(seg.Text)
	}
	text := FilterHallucinations(strings.TrimSpace(b.String()))

	return &models.Transcription{
		Text:     text,
		Language: rec.Language,
	}, nil
}

func (s *TranscribeService) writeTemp(audio []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".wav"
	}

	dir := s.tmpDir
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, "upload_"+uuid.NewString()+ext)
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
