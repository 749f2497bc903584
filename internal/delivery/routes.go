package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hHealth *HealthHandler, hTranscribe *TranscribeHandler) {

	// readiness probe
	r.Get("/healthz", hHealth.Healthz)

	// transcription
	r.Post("/transcribe", hTranscribe.Transcribe)
}
