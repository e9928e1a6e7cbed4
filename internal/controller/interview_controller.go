package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/middleware"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"github.com/skillforge-dev/skillforge/internal/service"
)

type InterviewController struct {
	interviewSvc service.InterviewService
}

func NewInterviewController(interviewSvc service.InterviewService) *InterviewController {
	return &InterviewController{interviewSvc: interviewSvc}
}

// StartInterview godoc
// @Summary Start a mock interview session
// @Description Creates a new interview session and returns the initial question set, grounded in stored resume material when the vector index is configured.
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.StartInterviewRequest true "Resume text and optional job description"
// @Success 200 {object} dto.StartInterviewResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Failed to create session"
// @Security BearerAuth
// @Router /interview/start [post]
func (ctrl *InterviewController) StartInterview(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartInterviewRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.interviewSvc.StartInterview(c.Request.Context(), userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to start interview")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error starting interview"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer for the current question
// @Description Scores the answer, appends it to the session transcript, recomputes the running average and returns the follow-up question.
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Session ID, question and answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already completed, or concurrent update"
// @Security BearerAuth
// @Router /interview/answer [post]
func (ctrl *InterviewController) SubmitAnswer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.interviewSvc.SubmitAnswer(c.Request.Context(), userID, req)
	if err != nil {
		respondSessionError(c, err, "Server error evaluating answer")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EndInterview godoc
// @Summary End a mock interview session
// @Description Marks the session completed and returns the full session record. Ending an already-completed session is idempotent.
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.EndInterviewRequest true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /interview/end [post]
func (ctrl *InterviewController) EndInterview(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.EndInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind EndInterviewRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.interviewSvc.EndInterview(c.Request.Context(), userID, req.SessionID)
	if err != nil {
		respondSessionError(c, err, "Server error ending interview")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSessions godoc
// @Summary List the caller's interview sessions
// @Tags interview
// @Produce json
// @Success 200 {array} dto.SessionSummaryResponse
// @Security BearerAuth
// @Router /interview/sessions [get]
func (ctrl *InterviewController) ListSessions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sessions, err := ctrl.interviewSvc.ListSessions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get one interview session
// @Tags interview
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /interview/sessions/{session_id} [get]
func (ctrl *InterviewController) GetSession(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := ctrl.interviewSvc.GetSession(userID, c.Param("session_id"))
	if err != nil {
		respondSessionError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondSessionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, service.ErrSessionForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Session belongs to another user"})
	case errors.Is(err, service.ErrSessionCompleted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Session is already completed"})
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Session was modified by another request, please retry"})
	default:
		log.Error().Err(err).Msg(fallback)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}
