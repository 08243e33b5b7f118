package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shop-interests/internal/domain"
	"shop-interests/internal/repository"
)

const (
	defaultPageSize = 6
	maxPageSize     = 100
	countCacheKey   = "categories"
	countCacheTTL   = 30 * time.Second
)

// CategoryService arma la página de intereses del usuario autenticado.
type CategoryService struct {
	logger     *zap.Logger
	categories repository.CategoryRepository
	counts     CountCache
}

func NewCategoryService(logger *zap.Logger, categories repository.CategoryRepository, counts CountCache) *CategoryService {
	if counts == nil {
		counts = NewMemoryCountCache()
	}
	return &CategoryService{
		logger:     logger,
		categories: categories,
		counts:     counts,
	}
}

// Page devuelve una página de categorías con el flag de interés del usuario.
// page arranca en 1; pageSize se acota a [1,100] con default 6.
func (s *CategoryService) Page(ctx context.Context, userID string, page, pageSize int) (domain.CategoryPage, error) {
	if s.categories == nil {
		return domain.CategoryPage{}, errors.New("category service not configured")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total, ok := s.counts.Get(countCacheKey)
	if !ok {
		var err error
		total, err = s.categories.Count(ctx)
		if err != nil {
			return domain.CategoryPage{}, err
		}
		s.counts.Set(countCacheKey, total, countCacheTTL)
	}

	items, err := s.categories.ListWithInterest(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return domain.CategoryPage{}, err
	}

	return domain.CategoryPage{
		Categories: items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// SetInterest registra o elimina el interés del usuario en una categoría.
func (s *CategoryService) SetInterest(ctx context.Context, userID, categoryID string, interested bool) error {
	if s.categories == nil {
		return errors.New("category service not configured")
	}
	if interested {
		return s.categories.AddInterest(ctx, userID, categoryID)
	}
	return s.categories.RemoveInterest(ctx, userID, categoryID)
}
