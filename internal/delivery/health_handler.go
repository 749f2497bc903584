package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/happy-stt/internal/ports"
)

type HealthHandler struct {
	model  string
	engine ports.STTEngine
}

func NewHealthHandler(model string, engine ports.STTEngine) *HealthHandler {
	return &HealthHandler{
		model:  model,
		engine: engine,
	}
}

// GET /healthz — readiness indicator, always 200.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":     true,
		"model":  h.model,
		"loaded": h.engine.Loaded(),
	})
}
