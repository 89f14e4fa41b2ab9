package marketplace

import (
	"context"
)

// Service provides marketplace business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, q Query) ([]Listing, int, error) {
	return s.repo.Search(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id int) (Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, l *Listing) error {
	l.Status = StatusActive
	if l.Currency == "" {
		l.Currency = "ZAR"
	}
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	return s.repo.Create(ctx, l)
}

func (s *Service) UpdateStatus(ctx context.Context, id, sellerID int, status string) error {
	return s.repo.UpdateStatus(ctx, id, sellerID, status)
}
