package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
)

// ErrUnsupportedFormat is returned for anything other than PDF, DOCX or
// plain text uploads.
var ErrUnsupportedFormat = errors.New("invalid file format, only PDF and DOCX allowed")

// ResumeService extracts text from uploaded resume files, runs structured
// parsing through the generation adapter and stores section embeddings for
// later retrieval by the interview pipeline.
type ResumeService interface {
	ExtractText(filename string, data []byte) (string, error)
	ParseAndStore(ctx context.Context, userID uint, text string) (*dto.ParsedResumeResponse, error)
}

type resumeService struct {
	geminiSvc    GeminiService
	embeddingSvc EmbeddingService
}

func NewResumeService(geminiSvc GeminiService, embeddingSvc EmbeddingService) ResumeService {
	return &resumeService{geminiSvc: geminiSvc, embeddingSvc: embeddingSvc}
}

func (s *resumeService) ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func (s *resumeService) ParseAndStore(ctx context.Context, userID uint, text string) (*dto.ParsedResumeResponse, error) {
	parsed := s.geminiSvc.ParseResume(ctx, text)
	storeResult := s.embeddingSvc.StoreResume(ctx, fmt.Sprintf("%d", userID), text, parsed)

	var resp dto.ParsedResumeResponse
	if err := copier.Copy(&resp, &parsed); err != nil {
		log.Error().Err(err).Msg("Failed to map parsed resume to response")
		return nil, fmt.Errorf("error preparing parsed resume response: %w", err)
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	resp.EmbeddingResult = dto.EmbeddingResultResponse{
		Success:       storeResult.Success,
		Mock:          storeResult.Mock,
		VectorsStored: storeResult.VectorsStored,
		Error:         storeResult.Error,
	}
	return &resp, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return strings.TrimSpace(string(text)), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDocxText pulls the main document part out of the DOCX zip container
// and strips the WordprocessingML markup. Paragraph closes become newlines so
// section structure survives.
func extractDocxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX container: %w", err)
	}

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open DOCX document part: %w", err)
		}
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX document part: %w", err)
		}

		text := strings.ReplaceAll(string(raw), "</w:p>", "\n")
		text = xmlTagPattern.ReplaceAllString(text, "")
		return strings.TrimSpace(html.UnescapeString(text)), nil
	}
	return "", fmt.Errorf("DOCX container has no word/document.xml")
}
