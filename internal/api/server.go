package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"cardsmith/internal/config"
	"cardsmith/internal/generate"
	"cardsmith/internal/llm"
	"cardsmith/internal/models"
	"cardsmith/internal/textutil"
)

// Version reported by the health endpoint.
const Version = "0.1.0"

const maxMultipartMemory = 8 << 20 // 8 MB

// TextExtractor turns an uploaded document payload into cleaned text.
type TextExtractor interface {
	Text(data []byte) (string, error)
}

type Server struct {
	mux       *http.ServeMux
	extractor TextExtractor
	generator *generate.Service
	cfg       config.Config
	log       *log.Logger
}

func NewServer(extractor TextExtractor, generator *generate.Service, cfg config.Config, logger *log.Logger) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		extractor: extractor,
		generator: generator,
		cfg:       cfg,
		log:       logger,
	}
	s.routes()
	return s
}

// Handler wraps the mux with per-request logging. Each request gets a fresh
// ID bound to a request-scoped logger, carried in the request context, so
// every log line from one request shares the same request_id.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLog := s.log.With("request_id", uuid.NewString())
		r = r.WithContext(log.WithContext(r.Context(), reqLog))
		s.mux.ServeHTTP(w, r)
		reqLog.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// logger returns the request-scoped logger installed by Handler, falling
// back to the server logger when the mux is exercised directly.
func (s *Server) logger(r *http.Request) *log.Logger {
	if l := log.FromContext(r.Context()); l != log.Default() {
		return l
	}
	return s.log
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/upload", s.handleUpload)
	s.mux.HandleFunc("/api/generate", s.handleGenerate)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:        "healthy",
		Version:       Version,
		LLMConfigured: s.generator.Configured(),
	})
}

// handleUpload accepts a PDF file or a direct text field, extracts and
// cleans the text, and returns it split into bounded chunks.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	reqLog := s.logger(r)

	var fileHeader *multipart.FileHeader
	var text string
	if err := r.ParseMultipartForm(maxMultipartMemory); err == nil {
		if headers := r.MultipartForm.File["file"]; len(headers) > 0 {
			fileHeader = headers[0]
		}
		text = r.FormValue("text")
	} else if errors.Is(err, http.ErrNotMultipart) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form data")
			return
		}
		text = r.FormValue("text")
	} else {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	if fileHeader == nil && strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "please provide either a PDF file or text input")
		return
	}

	var extracted string
	var fileInfo *models.FileInfo

	if fileHeader != nil {
		extractedText, info, ok := s.processUploadedFile(w, fileHeader, reqLog)
		if !ok {
			return
		}
		extracted = extractedText
		fileInfo = info
	} else {
		extracted = strings.TrimSpace(text)
		if len(extracted) > s.cfg.MaxTextLength {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("text exceeds %d character limit", s.cfg.MaxTextLength))
			return
		}
	}

	chunks := textutil.Chunk(extracted, s.cfg.ChunkSize)
	if chunks == nil {
		chunks = []string{}
	}
	reqLog.Info("upload processed", "chars", len(extracted), "chunks", len(chunks))

	writeJSON(w, http.StatusOK, models.UploadResponse{
		ExtractedText: extracted,
		Chunks:        chunks,
		FileInfo:      fileInfo,
	})
}

// processUploadedFile validates the upload and runs extraction. On failure
// it writes the error response and returns ok=false.
func (s *Server) processUploadedFile(w http.ResponseWriter, fileHeader *multipart.FileHeader, reqLog *log.Logger) (string, *models.FileInfo, bool) {
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "only PDF files are supported. Please upload a .pdf file.")
		return "", nil, false
	}
	if fileHeader.Size == 0 {
		writeError(w, http.StatusBadRequest, "uploaded file is empty")
		return "", nil, false
	}
	if fileHeader.Size > s.cfg.MaxFileSizeBytes() {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file size exceeds %dMB limit", s.cfg.MaxFileSizeMB))
		return "", nil, false
	}

	src, err := fileHeader.Open()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read uploaded file. Please try again.")
		return "", nil, false
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read uploaded file. Please try again.")
		return "", nil, false
	}

	extracted, err := s.extractor.Text(content)
	if err != nil {
		reqLog.Warn("pdf extraction failed", "filename", fileHeader.Filename, "err", err)
		writeError(w, http.StatusUnprocessableEntity,
			"unable to process PDF. Please ensure it's a valid, text-based PDF (not scanned images).")
		return "", nil, false
	}
	if strings.TrimSpace(extracted) == "" {
		// The decoder succeeded but produced nothing usable; the cause is
		// content, not format.
		writeError(w, http.StatusUnprocessableEntity,
			"no text could be extracted from the PDF. The file might be image-based or corrupted.")
		return "", nil, false
	}

	reqLog.Info("pdf extracted", "filename", fileHeader.Filename, "chars", len(extracted))
	return extracted, &models.FileInfo{
		Filename:       fileHeader.Filename,
		SizeBytes:      fileHeader.Size,
		ExtractedChars: len(extracted),
		Processed:      true,
	}, true
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "text cannot be empty")
		return
	}
	if len(text) > s.cfg.MaxTextLength {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds %d character limit", s.cfg.MaxTextLength))
		return
	}

	mode, err := generate.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count := s.cfg.DefaultCardCount
	if req.NumCards != nil {
		count = *req.NumCards
		if count < s.cfg.MinCardCount || count > s.cfg.MaxCardCount {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("number of cards must be between %d and %d", s.cfg.MinCardCount, s.cfg.MaxCardCount))
			return
		}
	}

	records, err := s.generator.Generate(r.Context(), text, mode, count)
	if err != nil {
		s.writeGenerationError(w, s.logger(r), err)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		Records: records,
		Summary: fmt.Sprintf("Generated %d %s from %d characters of text",
			len(records), summaryNoun(mode), len(text)),
	})
}

func summaryNoun(mode generate.Mode) string {
	switch mode {
	case generate.ModeQuiz:
		return "quiz questions"
	case generate.ModeTest:
		return "test questions"
	default:
		return "flashcards"
	}
}

// writeGenerationError maps pipeline failures to HTTP statuses. A
// communication failure is distinct from a received-but-unusable reply.
func (s *Server) writeGenerationError(w http.ResponseWriter, reqLog *log.Logger, err error) {
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "AI generation is not configured on this server")
	case errors.Is(err, llm.ErrCommunication):
		reqLog.Error("llm communication failed", "err", err)
		writeError(w, http.StatusBadGateway, "failed to communicate with the AI service. Please try again.")
	case errors.Is(err, generate.ErrUnparsableResponse),
		errors.Is(err, generate.ErrUnexpectedStructure),
		errors.Is(err, generate.ErrEmptyResult):
		writeError(w, http.StatusUnprocessableEntity, "failed to generate study items: "+err.Error())
	default:
		reqLog.Error("generation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "an error occurred while generating. Please try again.")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
