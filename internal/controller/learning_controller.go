package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/middleware"
	"github.com/skillforge-dev/skillforge/internal/service"
)

type LearningController struct {
	learningSvc service.LearningService
}

func NewLearningController(learningSvc service.LearningService) *LearningController {
	return &LearningController{learningSvc: learningSvc}
}

// GetRecommendations godoc
// @Summary Get learning recommendations based on the caller's profile skills
// @Tags learning
// @Produce json
// @Success 200 {array} dto.RecommendationResponse
// @Security BearerAuth
// @Router /learning/recommendations [get]
func (ctrl *LearningController) GetRecommendations(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	recommendations, err := ctrl.learningSvc.GetRecommendations(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to build recommendations")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error fetching recommendations"})
		return
	}
	c.JSON(http.StatusOK, recommendations)
}
