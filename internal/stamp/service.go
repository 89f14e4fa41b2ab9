package stamp

import (
	"context"
)

// Service provides stamp catalog business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q Query) ([]Stamp, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id int) (Stamp, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, st *Stamp) error {
	return s.repo.Create(ctx, st)
}

func (s *Service) Update(ctx context.Context, st *Stamp) error {
	return s.repo.Update(ctx, st)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}
