package service

import (
	"context"
	"log"

	"github.com/openreel/openreel-go/internal/model"
	"github.com/openreel/openreel-go/internal/repository"
)

// History page size bounds. Requests outside the range are clamped, not
// rejected.
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

// NormalizePage clamps page/limit to valid bounds.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return page, limit
}

// TotalPages is ceil(totalItems / limit).
func TotalPages(totalItems, limit int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}

type HistoryService struct {
	history *repository.HistoryRepo
}

func NewHistoryService(history *repository.HistoryRepo) *HistoryService {
	return &HistoryService{history: history}
}

// Page serves one page of the user's watch history, newest watch first.
// Entries whose video has since been deleted are pruned before counting so
// totalItems, totalPages and the page contents agree.
func (s *HistoryService) Page(ctx context.Context, userID string, page, limit int) (*model.HistoryPage, error) {
	page, limit = NormalizePage(page, limit)

	if err := s.history.PruneDangling(ctx, userID); err != nil {
		// Pruning is repair, not a precondition; the joined page query
		// excludes dangling rows either way.
		log.Printf("history: prune failed for user: %v", err)
	}

	total, err := s.history.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.Page(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &model.HistoryPage{
		History:     entries,
		TotalItems:  total,
		TotalPages:  TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// Clear irreversibly wipes the user's history log.
func (s *HistoryService) Clear(ctx context.Context, userID string) error {
	return s.history.Clear(ctx, userID)
}
