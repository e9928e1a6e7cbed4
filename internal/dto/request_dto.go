package dto

// --- Auth ---

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --- Profile ---

type UpdateProfileRequest struct {
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Headline  string            `json:"headline"`
	Bio       string            `json:"bio"`
	Skills    []string          `json:"skills"`
	Socials   map[string]string `json:"socials"`
}

// --- Projects ---

type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Technologies []string `json:"technologies"`
	ImageURL     *string  `json:"imageUrl"`
	ProjectURL   *string  `json:"projectUrl"`
	GithubURL    *string  `json:"githubUrl"`
}

// --- Resume ---

type ParseResumeRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Interview ---

// StartInterviewRequest carries the free-form context captured at session
// start. Both fields may be empty; the adapters degrade rather than reject.
type StartInterviewRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

type SubmitAnswerRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

type EndInterviewRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
