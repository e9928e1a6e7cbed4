package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/config"
	"google.golang.org/api/option"
)

// maxResumeExcerpt bounds how much resume text is embedded in prompts.
const maxResumeExcerpt = 1000

// maxQuestions caps the initial question set returned by GenerateQuestions.
const maxQuestions = 10

// Evaluation is the structured result of scoring one answer.
type Evaluation struct {
	Score    int    `json:"score"` // 0-100
	Feedback string `json:"feedback"`
}

// ParsedResume is the structured output of resume parsing.
type ParsedResume struct {
	Skills      []string          `json:"skills"`
	Experience  []ExperienceEntry `json:"experience"`
	Education   []EducationEntry  `json:"education"`
	Projects    []ResumeProject   `json:"projects"`
	Suggestions []string          `json:"suggestions"`
}

type ExperienceEntry struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

type ResumeProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
}

// GeminiService wraps the hosted generation model for question generation,
// answer evaluation, follow-up generation and resume parsing. Provider
// failures never propagate: every method degrades to a canned result so the
// interview can continue (see EvaluateAnswer's default score).
type GeminiService interface {
	GenerateQuestions(ctx context.Context, resumeText, jobDescription string, retrieved []string) []string
	EvaluateAnswer(ctx context.Context, question, answer string) Evaluation
	GenerateFollowUp(ctx context.Context, question, answer string) string
	ParseResume(ctx context.Context, text string) ParsedResume
}

type geminiService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

// NewGeminiService builds the generation adapter. Without an API key the
// adapter runs in mock mode (nil model) and serves canned content.
func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will run in mock mode.")
		return &geminiService{cfg: cfg, model: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiService{model: client.GenerativeModel(cfg.Gemini.Model), cfg: cfg}, nil
}

var fallbackQuestions = []string{
	"Tell me about your background and experience.",
	"Describe a challenging technical problem you solved.",
	"How do you stay current with new technologies?",
	"Explain your approach to code quality and testing.",
	"Describe your experience with teamwork and collaboration.",
}

const fallbackFollowUp = "Could you provide more details?"

const mockFeedback = "Good answer, but you could elaborate more on specific examples."

// defaultScore is returned when evaluation cannot reach the provider. Mid
// range on purpose: a dead provider must not tank or inflate the average.
const defaultScore = 75

func (s *geminiService) GenerateQuestions(ctx context.Context, resumeText, jobDescription string, retrieved []string) []string {
	if s.model == nil {
		return mockQuestions(resumeText)
	}

	excerpt := resumeText
	if len(excerpt) > maxResumeExcerpt {
		excerpt = excerpt[:maxResumeExcerpt]
	}
	if jobDescription == "" {
		jobDescription = "General Software Engineer"
	}

	var b strings.Builder
	b.WriteString("You are an expert technical interviewer. Based on the following resume and context, generate 10 relevant interview questions.\n\n")
	b.WriteString("Resume Context:\n")
	b.WriteString(excerpt)
	b.WriteString("\n\nJob Description: ")
	b.WriteString(jobDescription)
	b.WriteString("\n\nRetrieved Context:\n")
	if len(retrieved) > 0 {
		for _, snippet := range retrieved {
			b.WriteString("- ")
			b.WriteString(snippet)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("(none)\n")
	}
	b.WriteString("\nGenerate 10 technical interview questions that are:\n")
	b.WriteString("1. Specific to the candidate's experience\n")
	b.WriteString("2. Progressive in difficulty\n")
	b.WriteString("3. Cover technical, behavioral, and problem-solving aspects\n\n")
	b.WriteString("Return ONLY a JSON array of question strings, no other text.")

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Msg("Gemini question generation failed, using fallback questions")
		return fallbackQuestions
	}

	questions, err := decodeStringArray(raw)
	if err != nil || len(questions) == 0 {
		log.Warn().Err(err).Str("raw", raw).Msg("Could not parse question list from Gemini response, using fallback questions")
		return fallbackQuestions
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func (s *geminiService) EvaluateAnswer(ctx context.Context, question, answer string) Evaluation {
	if s.model == nil {
		return Evaluation{Score: defaultScore, Feedback: mockFeedback}
	}

	var b strings.Builder
	b.WriteString("You are an expert technical interviewer evaluating candidate answers.\n\n")
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\nCandidate Answer: ")
	b.WriteString(answer)
	b.WriteString("\n\nEvaluate this answer on a scale of 0-100 and provide constructive feedback. Consider:\n")
	b.WriteString("1. Accuracy and technical correctness\n")
	b.WriteString("2. Depth of explanation\n")
	b.WriteString("3. Real-world applicability\n")
	b.WriteString("4. Communication clarity\n\n")
	b.WriteString("Return a JSON object with:\n")
	b.WriteString(`{"score": <number 0-100>, "feedback": "<detailed constructive feedback>"}`)

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Msg("Gemini evaluation failed, using default evaluation")
		return Evaluation{
			Score:    defaultScore,
			Feedback: fmt.Sprintf("Unable to evaluate at this time (%s). Please try again.", err.Error()),
		}
	}

	var parsed struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := decodeObject(raw, &parsed); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Could not parse evaluation from Gemini response, using default evaluation")
		return Evaluation{
			Score:    defaultScore,
			Feedback: fmt.Sprintf("Unable to evaluate at this time (%s). Please try again.", err.Error()),
		}
	}

	return Evaluation{Score: clampScore(parsed.Score), Feedback: nonEmpty(parsed.Feedback, mockFeedback)}
}

func (s *geminiService) GenerateFollowUp(ctx context.Context, question, answer string) string {
	if s.model == nil {
		return fallbackFollowUp
	}

	var b strings.Builder
	b.WriteString("You are an expert technical interviewer conducting a mock interview.\n\n")
	b.WriteString("Previous Question: ")
	b.WriteString(question)
	b.WriteString("\nCandidate Answer: ")
	b.WriteString(answer)
	b.WriteString("\n\nAsk ONE natural follow-up question that digs deeper into the candidate's answer ")
	b.WriteString("or moves the interview forward. Return ONLY the question text, no other text.")

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Msg("Gemini follow-up generation failed, using fallback follow-up")
		return fallbackFollowUp
	}

	followUp := strings.TrimSpace(stripCodeFences(raw))
	followUp = strings.Trim(followUp, "\"")
	if followUp == "" {
		return fallbackFollowUp
	}
	return followUp
}

func (s *geminiService) ParseResume(ctx context.Context, text string) ParsedResume {
	if s.model == nil {
		log.Warn().Msg("Gemini mock mode: returning empty parsed resume structure")
		return ParsedResume{Suggestions: []string{"Could not analyze suggestions."}}
	}

	excerpt := text
	if len(excerpt) > 8000 {
		excerpt = excerpt[:8000]
	}

	var b strings.Builder
	b.WriteString("You are an expert Resume Parser. Extract information from the text below into strict JSON.\n\n")
	b.WriteString("CRITICAL INSTRUCTIONS:\n")
	b.WriteString("1. Fix any OCR issues (e.g., merged words should be separated into distinct skills).\n")
	b.WriteString("2. Analyze the resume and provide 3-5 specific suggestions for improvement.\n\n")
	b.WriteString("Resume Text: \"")
	b.WriteString(excerpt)
	b.WriteString("\"\n\nOutput Format (JSON):\n")
	b.WriteString(`{
  "skills": ["Skill1", "Skill2"],
  "experience": [{"role": "Job Title", "company": "Company Name", "duration": "Dates"}],
  "education": [{"degree": "Degree Name", "school": "School Name", "year": "Year"}],
  "projects": [{"name": "Project Name", "description": "Brief description", "tech_stack": "Tools used"}],
  "suggestions": ["Suggestion 1", "Suggestion 2", "Suggestion 3"]
}`)
	b.WriteString("\n\nReturn ONLY the JSON string.")

	raw, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Msg("Gemini resume parsing failed, returning empty structure")
		return ParsedResume{Suggestions: []string{"Could not analyze suggestions."}}
	}

	var parsed ParsedResume
	if err := decodeObject(raw, &parsed); err != nil {
		log.Warn().Err(err).Msg("Could not parse resume structure from Gemini response")
		return ParsedResume{Suggestions: []string{"Could not analyze suggestions."}}
	}
	if len(parsed.Suggestions) == 0 {
		parsed.Suggestions = []string{"Could not analyze suggestions."}
	}
	return parsed
}

// generate sends one prompt and concatenates the text parts of the first
// candidate.
func (s *geminiService) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text.String(), nil
}

// mockQuestions mirrors the keyword matching used when no provider is
// configured: a canned base list plus extras driven by resume content.
func mockQuestions(resumeText string) []string {
	questions := []string{
		"Tell me about yourself and your experience with the technologies listed in your resume.",
		"I see you have experience with React. Can you explain the Virtual DOM and how it works?",
		"Describe a challenging project you worked on and how you overcame the obstacles.",
		"How do you handle state management in large applications?",
		"What is your approach to testing and ensuring code quality?",
	}

	lowered := strings.ToLower(resumeText)
	if strings.Contains(lowered, "node.js") {
		questions = append(questions, "Can you explain the event loop in Node.js?")
	}
	if strings.Contains(lowered, "mongodb") {
		questions = append(questions, "What are the advantages of using a NoSQL database like MongoDB over a SQL database?")
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score + 0.5)
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
