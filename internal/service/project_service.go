package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectForbidden = errors.New("project belongs to another user")
)

type ProjectService interface {
	CreateProject(userID uint, req dto.ProjectRequest) (*dto.ProjectResponse, error)
	ListProjects(userID uint) ([]dto.ProjectResponse, error)
	UpdateProject(userID uint, projectID uint, req dto.ProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(userID uint, projectID uint) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) CreateProject(userID uint, req dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project := &model.Project{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
	}
	if err := s.projectRepo.Create(project); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create project")
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return toProjectResponse(project)
}

func (s *projectService) ListProjects(userID uint) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp, err := toProjectResponse(&projects[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *projectService) UpdateProject(userID uint, projectID uint, req dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.loadOwnedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Technologies = req.Technologies
	project.ImageURL = req.ImageURL
	project.ProjectURL = req.ProjectURL
	project.GithubURL = req.GithubURL

	if err := s.projectRepo.Update(project); err != nil {
		log.Error().Err(err).Uint("projectID", projectID).Msg("Failed to update project")
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return toProjectResponse(project)
}

func (s *projectService) DeleteProject(userID uint, projectID uint) error {
	if _, err := s.loadOwnedProject(userID, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(projectID); err != nil {
		log.Error().Err(err).Uint("projectID", projectID).Msg("Failed to delete project")
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *projectService) loadOwnedProject(userID uint, projectID uint) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		log.Error().Err(err).Uint("projectID", projectID).Msg("Failed to load project")
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.UserID != userID {
		return nil, ErrProjectForbidden
	}
	return project, nil
}

func toProjectResponse(project *model.Project) (*dto.ProjectResponse, error) {
	var resp dto.ProjectResponse
	if err := copier.Copy(&resp, project); err != nil {
		log.Error().Err(err).Uint("projectID", project.ID).Msg("Failed to map project to response")
		return nil, fmt.Errorf("error preparing project response: %w", err)
	}
	return &resp, nil
}
