package infra

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/Vovarama1992/happy-stt/internal/ports"
)

// Audio quieter than this across the whole clip is treated as silence and
// never reaches the decoder, which likes to hallucinate on it.
const silenceRMS = 0.005

// WhisperEngine runs whisper.cpp in-process. The model is constructed at most
// once; inference is serialized because whisper contexts are not safe to run
// concurrently against the same backend state.
type WhisperEngine struct {
	modelPath string

	once    sync.Once
	model   whisper.Model
	loadErr error
	loaded  atomic.Bool

	mu sync.Mutex
}

func NewWhisperEngine(modelPath string) *WhisperEngine {
	return &WhisperEngine{modelPath: modelPath}
}

func (e *WhisperEngine) Load(ctx context.Context) error {
	e.once.Do(func() {
		model, err := whisper.New(e.modelPath)
		if err != nil {
			e.loadErr = fmt.Errorf("load model %s: %w", e.modelPath, err)
			return
		}
		e.model = model
		e.loaded.Store(true)
	})
	return e.loadErr
}

func (e *WhisperEngine) Loaded() bool {
	return e.loaded.Load()
}

func (e *WhisperEngine) Transcribe(ctx context.Context, audioPath string, opts ports.TranscribeOptions) (ports.Recognition, error) {
	if err := e.Load(ctx); err != nil {
		return ports.Recognition{}, err
	}

	samples, err := DecodeAudioFile(audioPath)
	if err != nil {
		return ports.Recognition{}, err
	}

	if opts.VADFilter && isSilence(samples) {
		// Nothing to decode, and nothing to detect a language from.
		lang := opts.Language
		if lang == "" {
			lang = "en"
		}
		return ports.Recognition{Language: lang}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	wctx, err := e.model.NewContext()
	if err != nil {
		return ports.Recognition{}, fmt.Errorf("whisper context: %w", err)
	}

	lang := opts.Language
	if lang == "" {
		lang = "auto"
	}
	if err := wctx.SetLanguage(lang); err != nil {
		return ports.Recognition{}, fmt.Errorf("set language %q: %w", lang, err)
	}
	wctx.SetTranslate(false)
	if opts.BeamSize > 0 {
		wctx.SetBeamSize(opts.BeamSize)
	}
	if opts.InitialPrompt != "" {
		wctx.SetInitialPrompt(opts.InitialPrompt)
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return ports.Recognition{}, fmt.Errorf("whisper process: %w", err)
	}

	var segments []ports.Segment
	for {
		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ports.Recognition{}, fmt.Errorf("read segment: %w", err)
		}
		segments = append(segments, ports.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	detected := opts.Language
	if detected == "" {
		detected = wctx.DetectedLanguage()
	}

	return ports.Recognition{
		Segments: segments,
		Language: detected,
	}, nil
}

func (e *WhisperEngine) Close() error {
	if e.model != nil {
		return e.model.Close()
	}
	return nil
}

func isSilence(samples []float32) bool {
	if len(samples) == 0 {
		return true
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum/float64(len(samples))) < silenceRMS
}
