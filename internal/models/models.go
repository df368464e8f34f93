// Package models holds the request, response, and record types shared
// between the generation pipeline and the HTTP layer. Everything is
// request-scoped; nothing here is ever persisted.
package models

// RecordKind identifies the shape of a generated study item.
type RecordKind string

const (
	KindFlashcard      RecordKind = "flashcard"
	KindMultipleChoice RecordKind = "multiple_choice"
	KindTrueFalse      RecordKind = "true_false"
	KindShortAnswer    RecordKind = "short_answer"
)

// GenerationRecord is one validated study item produced from a model reply.
// Which fields are populated depends on Kind: flashcards and short-answer
// items carry Question/Answer, multiple-choice items additionally carry
// Options and CorrectAnswer, true/false items carry Statement/Answer.
type GenerationRecord struct {
	Kind          RecordKind `json:"kind"`
	Question      string     `json:"question,omitempty"`
	Answer        string     `json:"answer,omitempty"`
	Statement     string     `json:"statement,omitempty"`
	Options       []string   `json:"options,omitempty"`
	CorrectAnswer string     `json:"correct_answer,omitempty"`
	Explanation   string     `json:"explanation,omitempty"`
}

// FileInfo describes an uploaded file after processing.
type FileInfo struct {
	Filename       string `json:"filename"`
	SizeBytes      int64  `json:"size_bytes"`
	ExtractedChars int    `json:"extracted_chars"`
	Processed      bool   `json:"processed"`
}

// UploadResponse is the payload for the upload endpoint.
type UploadResponse struct {
	ExtractedText string    `json:"extracted_text"`
	Chunks        []string  `json:"chunks"`
	FileInfo      *FileInfo `json:"file_info,omitempty"`
}

// GenerateRequest is the body of the generate endpoint. NumCards is a
// pointer so an absent field can default without conflating with zero.
type GenerateRequest struct {
	Text     string `json:"text"`
	Mode     string `json:"mode"`
	NumCards *int   `json:"num_cards,omitempty"`
}

// GenerateResponse is the payload for the generate endpoint.
type GenerateResponse struct {
	Records []GenerationRecord `json:"records"`
	Summary string             `json:"summary"`
}

// HealthResponse reports API status and provider configuration state.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	LLMConfigured bool   `json:"llm_configured"`
}
