package ports

import (
	"context"

	"github.com/Vovarama1992/happy-stt/internal/models"
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, filename, locale string) (*models.Transcription, error)
}
