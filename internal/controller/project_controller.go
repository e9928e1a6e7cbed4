package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/middleware"
	"github.com/skillforge-dev/skillforge/internal/service"
)

type ProjectController struct {
	projectSvc service.ProjectService
}

func NewProjectController(projectSvc service.ProjectService) *ProjectController {
	return &ProjectController{projectSvc: projectSvc}
}

// CreateProject godoc
// @Summary Add a portfolio project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.ProjectRequest true "Project data"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /projects [post]
func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.projectSvc.CreateProject(userID, req)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListProjects godoc
// @Summary List the caller's portfolio projects
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (ctrl *ProjectController) ListProjects(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := ctrl.projectSvc.ListProjects(userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProject godoc
// @Summary Update a portfolio project
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body dto.ProjectRequest true "Project data"
// @Success 200 {object} dto.ProjectResponse
// @Failure 403 {object} dto.ErrorResponse "Project belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id} [put]
func (ctrl *ProjectController) UpdateProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.projectSvc.UpdateProject(userID, uint(projectID), req)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteProject godoc
// @Summary Delete a portfolio project
// @Tags projects
// @Param project_id path int true "Project ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (ctrl *ProjectController) DeleteProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	if err := ctrl.projectSvc.DeleteProject(userID, uint(projectID)); err != nil {
		respondProjectError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Project not found"})
	case errors.Is(err, service.ErrProjectForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Project belongs to another user"})
	default:
		log.Error().Err(err).Msg("Project operation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
	}
}
