package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/happy-stt/internal/models"
	"github.com/Vovarama1992/happy-stt/internal/ports"
)

type fakeService struct {
	result *models.Transcription
	err    error
	calls  int
}

func (f *fakeService) Transcribe(ctx context.Context, audio []byte, filename, locale string) (*models.Transcription, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeEngine struct{ loaded bool }

func (f *fakeEngine) Load(ctx context.Context) error { return nil }
func (f *fakeEngine) Loaded() bool                   { return f.loaded }
func (f *fakeEngine) Transcribe(ctx context.Context, path string, opts ports.TranscribeOptions) (ports.Recognition, error) {
	return ports.Recognition{}, nil
}

func newRouter(svc ports.TranscriptionService, engine ports.STTEngine) chi.Router {
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	r := chi.NewRouter()
	RegisterRoutes(r, NewHealthHandler("small", engine), NewTranscribeHandler(svc, zl))
	return r
}

func multipartBody(t *testing.T, filename string, audio []byte, language string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(audio)
	require.NoError(t, err)
	if language != "" {
		require.NoError(t, mw.WriteField("language", language))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestTranscribe_OK(t *testing.T) {
	svc := &fakeService{result: &models.Transcription{Text: "hello", Language: "en"}}
	r := newRouter(svc, &fakeEngine{loaded: true})

	body, ct := multipartBody(t, "clip.wav", []byte("audio-bytes"), "en-US")
	req := httptest.NewRequest("POST", "/transcribe", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.Transcription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "en", got.Language)
}

func TestTranscribe_EmptyFile(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(svc, &fakeEngine{})

	body, ct := multipartBody(t, "clip.wav", nil, "")
	req := httptest.NewRequest("POST", "/transcribe", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty file")
	assert.Zero(t, svc.calls, "no inference on empty upload")
}

func TestTranscribe_MissingFileField(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(svc, &fakeEngine{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("language", "en"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestTranscribe_EngineFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("decode failed")}
	r := newRouter(svc, &fakeEngine{})

	body, ct := multipartBody(t, "clip.wav", []byte("audio"), "")
	req := httptest.NewRequest("POST", "/transcribe", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "transcribe failed: decode failed")
}

func TestHealthz(t *testing.T) {
	r := newRouter(&fakeService{}, &fakeEngine{loaded: true})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, "small", got["model"])
	assert.Equal(t, true, got["loaded"])
}

func TestHealthz_NotLoaded(t *testing.T) {
	r := newRouter(&fakeService{}, &fakeEngine{loaded: false})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, false, got["loaded"])
}
