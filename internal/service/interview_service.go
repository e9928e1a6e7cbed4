package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrSessionForbidden = errors.New("interview session belongs to another user")
	ErrSessionCompleted = errors.New("interview session is already completed")
)

// retrievedContextK is how many vector matches enrich the question prompt.
const retrievedContextK = 3

// InterviewService sequences the session lifecycle: start issues the initial
// question set, answer scores one question and produces the next, end flips
// the session to completed. Provider problems degrade inside the adapters;
// only persistence failures surface as errors here.
type InterviewService interface {
	StartInterview(ctx context.Context, userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, userID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	EndInterview(ctx context.Context, userID uint, sessionID string) (*dto.SessionResponse, error)
	GetSession(userID uint, sessionID string) (*dto.SessionResponse, error)
	ListSessions(userID uint) ([]dto.SessionSummaryResponse, error)
}

type interviewService struct {
	sessionRepo  repository.SessionRepository
	geminiSvc    GeminiService
	embeddingSvc EmbeddingService
}

func NewInterviewService(sessionRepo repository.SessionRepository, geminiSvc GeminiService, embeddingSvc EmbeddingService) InterviewService {
	return &interviewService{
		sessionRepo:  sessionRepo,
		geminiSvc:    geminiSvc,
		embeddingSvc: embeddingSvc,
	}
}

func (s *interviewService) StartInterview(ctx context.Context, userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	role := req.JobDescription
	if role == "" {
		role = "software engineer"
	}
	matches := s.embeddingSvc.Search(ctx, "Generate interview questions for: "+role, retrievedContextK)
	retrieved := make([]string, 0, len(matches))
	for _, match := range matches {
		retrieved = append(retrieved, fmt.Sprintf("%v", match.Metadata))
	}

	questions := s.geminiSvc.GenerateQuestions(ctx, req.ResumeText, req.JobDescription, retrieved)

	session := &model.InterviewSession{
		ID:             uuid.NewString(),
		UserID:         userID,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Transcript:     []model.TranscriptEntry{},
		Scores:         []model.ScoreEntry{},
		Status:         model.SessionStatusActive,
		StartTime:      time.Now(),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create interview session")
		return nil, fmt.Errorf("failed to create interview session: %w", err)
	}

	log.Info().Str("sessionID", session.ID).Uint("userID", userID).Int("questions", len(questions)).Msg("Interview session started")
	return &dto.StartInterviewResponse{SessionID: session.ID, Questions: questions}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, userID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.loadOwnedSession(userID, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionStatusCompleted {
		return nil, ErrSessionCompleted
	}

	// Evaluation and follow-up are independent: each degrades to its own
	// fallback inside the adapter, a failure in one never blocks the other.
	evaluation := s.geminiSvc.EvaluateAnswer(ctx, req.Question, req.Answer)
	nextQuestion := s.geminiSvc.GenerateFollowUp(ctx, req.Question, req.Answer)

	now := time.Now()
	session.Transcript = append(session.Transcript,
		model.TranscriptEntry{Sender: model.SenderAI, Message: req.Question, Timestamp: now},
		model.TranscriptEntry{Sender: model.SenderUser, Message: req.Answer, Timestamp: now},
		model.TranscriptEntry{
			Sender:    model.SenderSystem,
			Message:   fmt.Sprintf("Feedback: %s (Score: %d)", evaluation.Feedback, evaluation.Score),
			Timestamp: now,
		},
	)
	session.Scores = append(session.Scores, model.ScoreEntry{
		Question: req.Question,
		Answer:   req.Answer,
		Score:    evaluation.Score,
		Feedback: evaluation.Feedback,
	})
	session.AverageScore = averageScore(session.Scores)

	if err := s.sessionRepo.SaveWithVersion(session); err != nil {
		log.Error().Err(err).Str("sessionID", session.ID).Msg("Failed to persist answered question")
		return nil, err
	}

	return &dto.SubmitAnswerResponse{
		Score:        evaluation.Score,
		Feedback:     evaluation.Feedback,
		NextQuestion: nextQuestion,
	}, nil
}

func (s *interviewService) EndInterview(ctx context.Context, userID uint, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.loadOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	// Ending twice is idempotent: status stays completed and the original
	// EndTime is preserved.
	if session.Status != model.SessionStatusCompleted {
		now := time.Now()
		session.Status = model.SessionStatusCompleted
		session.EndTime = &now
		if err := s.sessionRepo.SaveWithVersion(session); err != nil {
			log.Error().Err(err).Str("sessionID", session.ID).Msg("Failed to complete interview session")
			return nil, err
		}
		log.Info().Str("sessionID", session.ID).Int("averageScore", session.AverageScore).Msg("Interview session completed")
	}

	return toSessionResponse(session)
}

func (s *interviewService) GetSession(userID uint, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.loadOwnedSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session)
}

func (s *interviewService) ListSessions(userID uint) ([]dto.SessionSummaryResponse, error) {
	sessions, err := s.sessionRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list interview sessions")
		return nil, fmt.Errorf("failed to list interview sessions: %w", err)
	}

	summaries := make([]dto.SessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, dto.SessionSummaryResponse{
			ID:            session.ID,
			AverageScore:  session.AverageScore,
			Status:        session.Status,
			QuestionCount: len(session.Scores),
			StartTime:     session.StartTime,
			EndTime:       session.EndTime,
		})
	}
	return summaries, nil
}

func (s *interviewService) loadOwnedSession(userID uint, sessionID string) (*model.InterviewSession, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to load interview session")
		return nil, fmt.Errorf("failed to load interview session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrSessionForbidden
	}
	return session, nil
}

// averageScore is round-half-up of the mean, matching what the client
// displays. Scores are never negative so Round's away-from-zero tie break is
// half-up here.
func averageScore(scores []model.ScoreEntry) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range scores {
		sum += entry.Score
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func toSessionResponse(session *model.InterviewSession) (*dto.SessionResponse, error) {
	var resp dto.SessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		log.Error().Err(err).Str("sessionID", session.ID).Msg("Failed to map session to response")
		return nil, fmt.Errorf("error preparing session response: %w", err)
	}
	if resp.Transcript == nil {
		resp.Transcript = []dto.TranscriptEntryResponse{}
	}
	if resp.Scores == nil {
		resp.Scores = []dto.ScoreEntryResponse{}
	}
	return &resp, nil
}
