package service

import (
	"context"
	"strings"
	"testing"

	"github.com/skillforge-dev/skillforge/config"
)

// newMockGemini builds the adapter without an API key, i.e. in mock mode.
func newMockGemini(t *testing.T) GeminiService {
	t.Helper()
	svc, err := NewGeminiService(&config.Config{})
	if err != nil {
		t.Fatalf("NewGeminiService returned error: %v", err)
	}
	return svc
}

func TestGenerateQuestionsMockMode(t *testing.T) {
	svc := newMockGemini(t)

	questions := svc.GenerateQuestions(context.Background(), "Node.js Developer with MongoDB experience", "", nil)
	if len(questions) < 5 {
		t.Fatalf("expected at least 5 questions, got %d", len(questions))
	}
	if len(questions) > maxQuestions {
		t.Fatalf("expected at most %d questions, got %d", maxQuestions, len(questions))
	}

	var foundEventLoop, foundNoSQL bool
	for _, q := range questions {
		if strings.Contains(q, "event loop") {
			foundEventLoop = true
		}
		if strings.Contains(q, "NoSQL") {
			foundNoSQL = true
		}
	}
	if !foundEventLoop {
		t.Fatal("expected Node.js resume to trigger the event loop question")
	}
	if !foundNoSQL {
		t.Fatal("expected MongoDB resume to trigger the NoSQL question")
	}
}

func TestGenerateQuestionsMockModeWithoutKeywords(t *testing.T) {
	svc := newMockGemini(t)

	questions := svc.GenerateQuestions(context.Background(), "Embedded C engineer", "", nil)
	if len(questions) != 5 {
		t.Fatalf("expected the 5 base questions, got %d", len(questions))
	}
}

func TestEvaluateAnswerMockMode(t *testing.T) {
	svc := newMockGemini(t)

	eval := svc.EvaluateAnswer(context.Background(), "Explain the event loop in Node.js", "I used event-driven I/O")
	if eval.Score != defaultScore {
		t.Fatalf("expected default score %d, got %d", defaultScore, eval.Score)
	}
	if eval.Feedback == "" {
		t.Fatal("expected non-empty feedback")
	}
}

func TestGenerateFollowUpMockMode(t *testing.T) {
	svc := newMockGemini(t)

	followUp := svc.GenerateFollowUp(context.Background(), "q", "a")
	if followUp == "" {
		t.Fatal("expected non-empty follow-up question")
	}
}

func TestParseResumeMockMode(t *testing.T) {
	svc := newMockGemini(t)

	parsed := svc.ParseResume(context.Background(), "some resume text")
	if len(parsed.Suggestions) == 0 {
		t.Fatal("expected fallback suggestions in mock mode")
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{84.4, 84},
		{84.5, 85},
		{100, 100},
		{150, 100},
	}
	for _, tc := range cases {
		if got := clampScore(tc.in); got != tc.want {
			t.Errorf("clampScore(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
