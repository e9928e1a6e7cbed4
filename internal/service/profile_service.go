package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/model"
	"github.com/skillforge-dev/skillforge/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileService interface {
	GetProfile(userID uint) (*dto.UserResponse, error)
	UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(userID uint) (*dto.UserResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *profileService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	user.Profile = model.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Headline:  req.Headline,
		Bio:       req.Bio,
		Skills:    normalizeSkills(req.Skills),
		Socials:   req.Socials,
	}
	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *profileService) loadUser(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to load user")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
