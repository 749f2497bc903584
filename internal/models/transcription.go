package models

type Transcription struct {
	Text     string `json:"text"`
	Language string `json:"language"` // ISO 639-1 code reported by the model
}
