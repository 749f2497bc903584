package delivery

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/happy-stt/internal/ports"
)

type TranscribeHandler struct {
	stt ports.TranscriptionService
	log *logger.ZapLogger
}

func NewTranscribeHandler(stt ports.TranscriptionService, log *logger.ZapLogger) *TranscribeHandler {
	return &TranscribeHandler{
		stt: stt,
		log: log,
	}
}

// POST /transcribe (multipart: file, language?)
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(audio) == 0 {
		http.Error(w, "empty file", http.StatusBadRequest)
		return
	}

	locale := r.FormValue("language")

	result, err := h.stt.Transcribe(r.Context(), audio, header.Filename, locale)
	if err != nil {
		http.Error(w, "transcribe failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "transcribed",
		Fields: map[string]any{
			"bytes":    len(audio),
			"locale":   locale,
			"language": result.Language,
			"length":   len(result.Text),
		},
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
