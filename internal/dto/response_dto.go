package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Auth / Profile ---

type UserResponse struct {
	ID      uint            `json:"id"`
	Email   string          `json:"email"`
	Profile ProfileResponse `json:"profile"`
}

type ProfileResponse struct {
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Headline  string            `json:"headline"`
	Bio       string            `json:"bio"`
	Skills    []string          `json:"skills"`
	Socials   map[string]string `json:"socials"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Projects ---

type ProjectResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	ProjectURL   *string   `json:"projectUrl,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// --- Interview ---

type StartInterviewResponse struct {
	SessionID string   `json:"sessionId"`
	Questions []string `json:"questions"`
}

type SubmitAnswerResponse struct {
	Score        int    `json:"score"`
	Feedback     string `json:"feedback"`
	NextQuestion string `json:"nextQuestion"`
}

type TranscriptEntryResponse struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ScoreEntryResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// SessionResponse is the full session document returned by end and get.
type SessionResponse struct {
	ID             string                    `json:"id"`
	UserID         uint                      `json:"userId"`
	ResumeText     string                    `json:"resumeText,omitempty"`
	JobDescription string                    `json:"jobDescription,omitempty"`
	Transcript     []TranscriptEntryResponse `json:"transcript"`
	Scores         []ScoreEntryResponse      `json:"scores"`
	AverageScore   int                       `json:"averageScore"`
	Status         string                    `json:"status"`
	StartTime      time.Time                 `json:"startTime"`
	EndTime        *time.Time                `json:"endTime,omitempty"`
}

// SessionSummaryResponse lists a user's past attempts without the transcript.
type SessionSummaryResponse struct {
	ID            string     `json:"id"`
	AverageScore  int        `json:"averageScore"`
	Status        string     `json:"status"`
	QuestionCount int        `json:"questionCount"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
}

// --- Resume ---

type ExperienceResponse struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

type EducationResponse struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

type ResumeProjectResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
}

type EmbeddingResultResponse struct {
	Success       bool   `json:"success"`
	Mock          bool   `json:"mock,omitempty"`
	VectorsStored int    `json:"vectorsStored,omitempty"`
	Error         string `json:"error,omitempty"`
}

type ParsedResumeResponse struct {
	Skills          []string                `json:"skills"`
	Experience      []ExperienceResponse    `json:"experience"`
	Education       []EducationResponse     `json:"education"`
	Projects        []ResumeProjectResponse `json:"projects"`
	Suggestions     []string                `json:"suggestions"`
	EmbeddingResult EmbeddingResultResponse `json:"embeddingResult"`
}

type ExtractTextResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

// --- Learning ---

type ResourceResponse struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}

type RecommendationResponse struct {
	Reason    string             `json:"reason"`
	Resources []ResourceResponse `json:"resources"`
	NextSteps []string           `json:"nextSteps"`
}
