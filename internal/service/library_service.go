package service

import (
	"context"

	"pykids-service/internal/models"
	"pykids-service/internal/repository"
)

type LibraryService struct {
	Repo *repository.LibraryRepository
}

func NewLibraryService(repo *repository.LibraryRepository) *LibraryService {
	return &LibraryService{Repo: repo}
}

func (s *LibraryService) ListItems(ctx context.Context) ([]models.LibraryItem, error) {
	return s.Repo.FindAllItems(ctx)
}

// OpenItem marks an item as accessed by the user, upserting the progress
// row keyed by (user, item).
func (s *LibraryService) OpenItem(ctx context.Context, userID, itemID string, percentage int) error {
	if _, err := s.Repo.FindItemByID(ctx, itemID); err != nil {
		return err
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	return s.Repo.UpsertProgress(ctx, userID, itemID, percentage, percentage >= 100)
}

func (s *LibraryService) GetProgress(ctx context.Context, userID string) ([]models.LibraryProgress, error) {
	return s.Repo.FindProgressByUser(ctx, userID)
}
