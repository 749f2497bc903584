package infra

import (
	"fmt"
	"path/filepath"
)

// Size id → ggml weight file as published on huggingface ggerganov/whisper.cpp.
var modelFiles = map[string]string{
	"tiny":   "ggml-tiny.bin",
	"base":   "ggml-base.bin",
	"small":  "ggml-small.bin",
	"medium": "ggml-medium.bin",
	"large":  "ggml-large-v3.bin",
	"turbo":  "ggml-large-v3-turbo.bin",
}

func ModelPath(dir, size string) (string, error) {
	file, ok := modelFiles[size]
	if !ok {
		return "", fmt.Errorf("unknown model size %q", size)
	}
	return filepath.Join(dir, file), nil
}
