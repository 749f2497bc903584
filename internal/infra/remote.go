package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Vovarama1992/happy-stt/internal/ports"
)

// RemoteEngine talks to a faster-whisper ASR webservice instead of hosting
// the model in-process. Same contract, the weights just live elsewhere.
type RemoteEngine struct {
	baseURL string
	client  *http.Client
	loaded  atomic.Bool
}

func NewRemoteEngine(baseURL string) *RemoteEngine {
	return &RemoteEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
}

func (e *RemoteEngine) Load(ctx context.Context) error {
	e.loaded.Store(true)
	return nil
}

func (e *RemoteEngine) Loaded() bool {
	return e.loaded.Load()
}

type asrSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type asrResponse struct {
	Text     string       `json:"text"`
	Language string       `json:"language"`
	Segments []asrSegment `json:"segments"`
}

func (e *RemoteEngine) Transcribe(ctx context.Context, audioPath string, opts ports.TranscribeOptions) (ports.Recognition, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return ports.Recognition{}, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("audio_file", filepath.Base(audioPath))
	if err != nil {
		return ports.Recognition{}, err
	}
	if _, err := part.Write(audio); err != nil {
		return ports.Recognition{}, err
	}
	if err := mw.Close(); err != nil {
		return ports.Recognition{}, err
	}

	q := url.Values{}
	q.Set("task", "transcribe")
	q.Set("output", "json")
	if opts.VADFilter {
		q.Set("vad_filter", "true")
	}
	if opts.Language != "" {
		q.Set("language", opts.Language)
	}
	if opts.InitialPrompt != "" {
		q.Set("initial_prompt", opts.InitialPrompt)
	}
	// Beam width is fixed server-side; the webservice does not expose it.

	req, err := http.NewRequestWithContext(ctx, "POST", e.baseURL+"/asr?"+q.Encode(), &body)
	if err != nil {
		return ports.Recognition{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return ports.Recognition{}, fmt.Errorf("asr request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != 200 {
		return ports.Recognition{}, fmt.Errorf("asr webservice http %d", resp.StatusCode)
	}

	var parsed asrResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ports.Recognition{}, fmt.Errorf("asr response: %w", err)
	}

	rec := ports.Recognition{Language: parsed.Language}
	for _, seg := range parsed.Segments {
		rec.Segments = append(rec.Segments, ports.Segment{
			Start: time.Duration(seg.Start * float64(time.Second)),
			End:   time.Duration(seg.End * float64(time.Second)),
			Text:  seg.Text,
		})
	}
	if len(rec.Segments) == 0 && parsed.Text != "" {
		rec.Segments = []ports.Segment{{Text: parsed.Text}}
	}
	return rec, nil
}
