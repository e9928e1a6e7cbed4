package service

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
)

// LearningService recommends curated learning paths from the user's profile
// skills. Matching is by skill name; next steps are the path's related skills
// the user does not already have.
type LearningService interface {
	GetRecommendations(userID uint) ([]dto.RecommendationResponse, error)
	Seed() error
}

type learningService struct {
	pathRepo repository.LearningPathRepository
	userRepo repository.UserRepository
}

func NewLearningService(pathRepo repository.LearningPathRepository, userRepo repository.UserRepository) LearningService {
	return &learningService{pathRepo: pathRepo, userRepo: userRepo}
}

func (s *learningService) GetRecommendations(userID uint) ([]dto.RecommendationResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to load user for recommendations")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	userSkills := user.Profile.Skills

	paths, err := s.pathRepo.FindBySkills(userSkills)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to match learning paths")
		return nil, fmt.Errorf("failed to match learning paths: %w", err)
	}

	known := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		known[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	recommendations := make([]dto.RecommendationResponse, 0, len(paths))
	for _, path := range paths {
		var resources []dto.ResourceResponse
		if err := copier.Copy(&resources, path.Resources); err != nil {
			log.Error().Err(err).Str("skill", path.Skill).Msg("Failed to map learning resources")
			continue
		}

		nextSteps := make([]string, 0, len(path.RelatedSkills))
		for _, related := range path.RelatedSkills {
			if !known[strings.ToLower(related)] {
				nextSteps = append(nextSteps, related)
			}
		}

		recommendations = append(recommendations, dto.RecommendationResponse{
			Reason:    fmt.Sprintf("Because you know %s", path.Skill),
			Resources: resources,
			NextSteps: nextSteps,
		})
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, defaultRecommendation())
	}
	return recommendations, nil
}

func defaultRecommendation() dto.RecommendationResponse {
	return dto.RecommendationResponse{
		Reason: "Recommended for Full Stack Developers",
		Resources: []dto.ResourceResponse{
			{Title: "Full Stack Open 2024", Type: "course", URL: "https://fullstackopen.com/", Difficulty: "beginner"},
		},
		NextSteps: []string{"React", "Node.js", "SQL"},
	}
}

// Seed upserts the canned learning paths so recommendations work on a fresh
// database.
func (s *learningService) Seed() error {
	paths := []model.LearningPath{
		{
			Skill:       "React",
			Description: "Deepen component architecture and state management skills.",
			Resources: []model.Resource{
				{Title: "Advanced React Patterns", Type: "article", URL: "https://reactjs.org/docs/advanced-performance.html", Difficulty: "advanced"},
				{Title: "Redux Toolkit Fundamentals", Type: "video", URL: "https://redux-toolkit.js.org/", Difficulty: "intermediate"},
			},
			RelatedSkills: []string{"Redux", "TypeScript", "Next.js"},
		},
		{
			Skill:       "Node.js",
			Description: "Server-side patterns and service architecture.",
			Resources: []model.Resource{
				{Title: "Node.js Design Patterns", Type: "book", URL: "#", Difficulty: "advanced"},
				{Title: "Microservices with Node.js", Type: "course", URL: "#", Difficulty: "intermediate"},
			},
			RelatedSkills: []string{"MongoDB", "Docker", "Kubernetes"},
		},
		{
			Skill:       "Go",
			Description: "Concurrency, services and tooling in Go.",
			Resources: []model.Resource{
				{Title: "Practical Go Lessons", Type: "article", URL: "https://www.practical-go-lessons.com/", Difficulty: "intermediate"},
			},
			RelatedSkills: []string{"Docker", "gRPC", "PostgreSQL"},
		},
	}

	for i := range paths {
		if err := s.pathRepo.Upsert(&paths[i]); err != nil {
			return fmt.Errorf("failed to seed learning path %q: %w", paths[i].Skill, err)
		}
	}
	log.Info().Int("paths", len(paths)).Msg("Learning paths seeded")
	return nil
}
