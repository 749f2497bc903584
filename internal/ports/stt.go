package ports

import (
	"context"
	"time"
)

type TranscribeOptions struct {
	Language      string // ISO 639-1 code; empty means auto-detect
	BeamSize      int
	VADFilter     bool   // drop silent audio before decoding
	InitialPrompt string // biases the decoder toward a script/style
}

type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

type Recognition struct {
	Segments []Segment
	Language string // detected (or confirmed) language code
}

// STTEngine is the delegated transcription capability. Implementations own
// the heavyweight model; Load must be safe to call more than once and must
// construct the model at most once per process.
type STTEngine interface {
	Load(ctx context.Context) error
	Loaded() bool
	Transcribe(ctx context.Context, audioPath string, opts TranscribeOptions) (Recognition, error)
}
