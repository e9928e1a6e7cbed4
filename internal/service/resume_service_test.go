package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skillforge-dev/skillforge/config"
)

func newTestResumeService(t *testing.T) ResumeService {
	t.Helper()

	gemini, err := NewGeminiService(&config.Config{})
	if err != nil {
		t.Fatalf("NewGeminiService returned error: %v", err)
	}
	embedding, err := NewEmbeddingService(&config.Config{})
	if err != nil {
		t.Fatalf("NewEmbeddingService returned error: %v", err)
	}
	return NewResumeService(gemini, embedding)
}

// buildDocx assembles a minimal DOCX container with the given paragraphs.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	part, err := writer.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := part.Write([]byte(body.String())); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextPlainText(t *testing.T) {
	svc := newTestResumeService(t)

	text, err := svc.ExtractText("resume.txt", []byte("  Senior Go Developer\n"))
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if text != "Senior Go Developer" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextDocx(t *testing.T) {
	svc := newTestResumeService(t)
	data := buildDocx(t, "Jane Doe", "Experience: 5 years of Node.js &amp; Go")

	text, err := svc.ExtractText("resume.docx", data)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(lines), text)
	}
	if lines[0] != "Jane Doe" {
		t.Fatalf("unexpected first paragraph %q", lines[0])
	}
	if lines[1] != "Experience: 5 years of Node.js & Go" {
		t.Fatalf("expected XML entities unescaped, got %q", lines[1])
	}
}

func TestExtractTextDocxWithoutDocumentPart(t *testing.T) {
	svc := newTestResumeService(t)

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	if _, err := writer.Create("word/styles.xml"); err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	if _, err := svc.ExtractText("resume.docx", buf.Bytes()); err == nil {
		t.Fatal("expected an error for DOCX without document part")
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	svc := newTestResumeService(t)

	_, err := svc.ExtractText("resume.odt", []byte("whatever"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseAndStoreMockMode(t *testing.T) {
	svc := newTestResumeService(t)

	resp, err := svc.ParseAndStore(context.Background(), 1, "Senior Go Developer with Docker and Kubernetes experience")
	if err != nil {
		t.Fatalf("ParseAndStore returned error: %v", err)
	}
	if resp.Skills == nil {
		t.Fatal("expected skills slice, not nil")
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected fallback suggestions in mock mode")
	}
	if !resp.EmbeddingResult.Success || !resp.EmbeddingResult.Mock {
		t.Fatalf("expected successful mock embedding result, got %+v", resp.EmbeddingResult)
	}
}
