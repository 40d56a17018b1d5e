package service

import (
	"context"

	"pykids-service/internal/models"
	"pykids-service/internal/repository"
)

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.Repo.FindByID(ctx, userID)
}
