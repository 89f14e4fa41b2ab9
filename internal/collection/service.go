package collection

import (
	"context"
)

// Service provides collection business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID, limit, offset int) ([]Item, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *Service) Add(ctx context.Context, item *Item) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return s.repo.Add(ctx, item)
}

func (s *Service) Update(ctx context.Context, item *Item) error {
	return s.repo.Update(ctx, item)
}

func (s *Service) Remove(ctx context.Context, userID, id int) error {
	return s.repo.Remove(ctx, userID, id)
}
