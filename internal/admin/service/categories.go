package service

import (
	"context"
	"strings"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/idx"
)

// CategoryService manages the demo category entity.
type CategoryService struct {
	Store store.Store
}

func (s *CategoryService) Get(ctx context.Context, id string) (domain.Category, error) {
	return s.Store.Categories().GetCategoryByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, filters []domain.Filter, page domain.Paging) ([]domain.Category, error) {
	return s.Store.Categories().ListCategories(ctx, filters, page)
}

func (s *CategoryService) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.Category{}, ErrInvalidInput
	}

	c.ID = idx.New().String()
	if err := s.Store.Categories().CreateCategory(ctx, c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, c domain.Category) error {
	if c.ID == "" || strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	return s.Store.Categories().UpdateCategory(ctx, c)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.Store.Categories().DeleteCategory(ctx, id)
}
